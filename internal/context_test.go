package internal

import (
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "seg_42")
	if got := GetRequestID(ctx); got != "seg_42" {
		t.Errorf("GetRequestID = %q, want %q", got, "seg_42")
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "unknown" {
		t.Errorf("GetRequestID on empty context = %q, want %q", got, "unknown")
	}
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if !strings.HasPrefix(id, "seg_") {
		t.Errorf("GenerateRequestID = %q, want seg_ prefix", id)
	}
	// Full nanosecond timestamps, not a small modulus: IDs stay long enough
	// to be distinct across concurrent requests.
	if len(id) < len("seg_")+15 {
		t.Errorf("GenerateRequestID = %q, ID space looks truncated", id)
	}
}
