package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"agent-segmenter/config"
	"agent-segmenter/logger"
	"agent-segmenter/server"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Print version information
	fmt.Println(GetBuildInfo())
	fmt.Println()

	// Load configuration with .env support
	cfg, err := config.LoadConfigWithEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obsLogger, err := logger.NewObservabilityLogger(cfg.LogDir, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer obsLogger.Close()

	obsLogger.Info(logger.ComponentConfig, logger.CategoryRequest, "", "Segmenter configuration loaded", map[string]interface{}{
		"port":         cfg.Port,
		"log_level":    cfg.LogLevel,
		"hidden_kinds": len(cfg.HiddenKinds),
		"version":      GetVersionInfo(),
		"git_commit":   GetGitCommit(),
	})

	// Create segmentation handler
	handler := server.NewHandler(cfg, obsLogger)

	// Setup HTTP routes
	http.HandleFunc("/", handleRoot)
	http.HandleFunc("/health", handleHealth)
	http.HandleFunc("/v1/segment", handler.HandleSegment)
	http.Handle("/metrics", promhttp.Handler())

	// Setup HTTP server with reasonable timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	obsLogger.Info(logger.ComponentServer, logger.CategoryRequest, "", "Segmenter started", map[string]interface{}{
		"address":  fmt.Sprintf("http://localhost:%s", cfg.Port),
		"endpoint": fmt.Sprintf("http://localhost:%s/v1/segment", cfg.Port),
	})

	// Start server
	if err := srv.ListenAndServe(); err != nil {
		obsLogger.Error(logger.ComponentServer, logger.CategoryError, "", "Server failed to start", map[string]interface{}{"error": err.Error()})
		log.Fatalf("Server failed to start: %v", err)
	}
}

// handleRoot provides basic information about the service
func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{
	"service": "Agent Segmenter",
	"version": "%s",
	"status": "running",
	"endpoints": [
		"GET /health - Health check",
		"POST /v1/segment - Segment one raw agent message"
	]
}`, Version)
}

// handleHealth provides a simple health check endpoint
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{
	"status": "ok",
	"timestamp": "%s"
}`, time.Now().UTC().Format(time.RFC3339))
}
