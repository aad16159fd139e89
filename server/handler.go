// Package server exposes the segmentation engine over HTTP to the chat
// front-end. The service is stateless: one request in, one ordered segment
// list out.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"agent-segmenter/config"
	"agent-segmenter/internal"
	"agent-segmenter/logger"
	"agent-segmenter/segment"
)

// SegmentRequest is the wire form of one segmentation call. TypeHint is
// optional and only selects the fallback segment's kind.
type SegmentRequest struct {
	Text     string `json:"text"`
	TypeHint string `json:"type_hint,omitempty"`
}

// SegmentResponse carries the ordered segments back to the front-end
type SegmentResponse struct {
	Segments []segment.Segment `json:"segments"`
}

// Handler handles HTTP segmentation requests
type Handler struct {
	config *config.Config
	log    logger.Logger
	hidden map[segment.TypeTag]bool
}

// NewHandler creates a new segmentation handler. log may be nil.
func NewHandler(cfg *config.Config, log logger.Logger) *Handler {
	hidden := make(map[segment.TypeTag]bool, len(cfg.HiddenKinds))
	for _, kind := range cfg.HiddenKinds {
		hidden[segment.ParseTypeTag(kind)] = true
	}
	return &Handler{
		config: cfg,
		log:    log,
		hidden: hidden,
	}
}

// HandleSegment handles POST /v1/segment
func (h *Handler) HandleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req SegmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		if h.log != nil {
			h.log.Warn(logger.ComponentServer, logger.CategoryError, "", "Invalid JSON in request", map[string]interface{}{
				"error": err.Error(),
			})
		}
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	ctx := internal.WithRequestID(r.Context(), internal.GenerateRequestID())
	requestID := internal.GetRequestID(ctx)

	msg := segment.RawMessage{Text: req.Text}
	if req.TypeHint != "" {
		msg.TypeHint = segment.ParseTypeTag(req.TypeHint)
		msg.HasTypeHint = true
	}

	start := time.Now()
	segments, usedFallback := segment.SegmentMessageWithFallback(msg)

	requestsTotal.Inc()
	for _, s := range segments {
		segmentsTotal.WithLabelValues(s.Kind.String()).Inc()
	}
	if usedFallback {
		fallbacksTotal.Inc()
	}

	visible := h.filterHidden(segments)

	if h.log != nil {
		h.log.Info(logger.ComponentServer, logger.CategorySegmentation, requestID, "Message segmented", map[string]interface{}{
			"input_bytes": len(req.Text),
			"segments":    len(segments),
			"hidden":      len(segments) - len(visible),
			"fallback":    usedFallback,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SegmentResponse{Segments: visible}); err != nil && h.log != nil {
		h.log.Error(logger.ComponentServer, logger.CategoryError, requestID, "Failed to write response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// filterHidden drops kinds the front-end has toggled off. It never filters
// down to zero: when every segment is hidden the full set goes out, keeping
// the non-empty guarantee at the wire.
func (h *Handler) filterHidden(segments []segment.Segment) []segment.Segment {
	if len(h.hidden) == 0 {
		return segments
	}
	visible := make([]segment.Segment, 0, len(segments))
	for _, s := range segments {
		if !h.hidden[s.Kind] {
			visible = append(visible, s)
		}
	}
	if len(visible) == 0 {
		return segments
	}
	return visible
}
