// Package config loads the segmentation service configuration from .env and
// process environment, with display toggles from an optional YAML overrides
// file. The engine itself takes no configuration; everything here belongs to
// the service edge.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DisplayOverridesFile is the optional YAML file carrying front-end display
// toggles, looked up in the working directory.
const DisplayOverridesFile = "display_overrides.yaml"

// Config represents the service configuration - all settings from .env
type Config struct {
	Port     string `json:"port"`
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`

	// Segment kinds the front-end has toggled off; filtered at the HTTP edge,
	// never inside the engine (loaded from display_overrides.yaml)
	HiddenKinds []string `json:"hidden_kinds"`
}

// GetDefaultConfig returns a default configuration for testing
func GetDefaultConfig() *Config {
	return &Config{
		Port:        "3457",
		LogDir:      "logs",
		LogLevel:    "INFO",
		HiddenKinds: []string{},
	}
}

// LoadConfigWithEnv loads configuration from a .env file (if present) and the
// process environment, then applies display overrides from
// display_overrides.yaml when that file exists.
func LoadConfigWithEnv() (*Config, error) {
	envVars := loadEnvFile(".env")

	cfg := GetDefaultConfig()

	if port := lookupVar(envVars, "PORT"); port != "" {
		cfg.Port = port
	}
	if logDir := lookupVar(envVars, "LOG_DIR"); logDir != "" {
		cfg.LogDir = logDir
	}
	if logLevel := lookupVar(envVars, "LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.LoadDisplayOverrides(DisplayOverridesFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

// displayOverrides mirrors the display_overrides.yaml schema
type displayOverrides struct {
	HiddenKinds []string `yaml:"hidden_kinds"`
}

// LoadDisplayOverrides reads hidden segment kinds from a YAML file. A missing
// file is not an error; a malformed one is.
func (c *Config) LoadDisplayOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overrides displayOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.HiddenKinds = overrides.HiddenKinds
	return nil
}

// lookupVar prefers the process environment over the .env file
func lookupVar(envVars map[string]string, key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return envVars[key]
}

// loadEnvFile loads KEY=VALUE pairs from a .env-style file. A missing or
// unreadable file yields an empty map; the service runs fine on defaults.
func loadEnvFile(path string) map[string]string {
	envVars := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		return envVars
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if key != "" {
			envVars[key] = value
		}
	}

	return envVars
}
