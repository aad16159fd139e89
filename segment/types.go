// Package segment implements the agent-output segmentation and classification
// engine. It takes a single raw string emitted by an automation backend (which
// may interleave free text, tool-invocation records, nested JSON payloads, and
// bracket-delimited tagged blocks) and deterministically decomposes it into an
// ordered sequence of typed, renderable segments.
package segment

import (
	"encoding/json"
	"strings"
)

// TypeTag classifies a segment for the renderer. The enumeration is closed;
// unknown strings fall back to TagRegular.
type TypeTag int

const (
	TagThought TypeTag = iota
	TagPlanning
	TagUtility
	TagDebug
	TagJSON
	TagToolOutput
	TagResponse
	TagSource
	TagResearchSummary
	TagRegular
)

// String returns the string representation of the TypeTag
func (t TypeTag) String() string {
	switch t {
	case TagThought:
		return "thought"
	case TagPlanning:
		return "planning"
	case TagUtility:
		return "utility"
	case TagDebug:
		return "debug"
	case TagJSON:
		return "json"
	case TagToolOutput:
		return "tool_output"
	case TagResponse:
		return "response"
	case TagSource:
		return "source"
	case TagResearchSummary:
		return "research_summary"
	case TagRegular:
		return "regular"
	default:
		return "regular"
	}
}

// ParseTypeTag converts a string to TypeTag with fallback to regular
func ParseTypeTag(tag string) TypeTag {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "thought":
		return TagThought
	case "planning":
		return TagPlanning
	case "utility":
		return TagUtility
	case "debug":
		return TagDebug
	case "json":
		return TagJSON
	case "tool_output":
		return TagToolOutput
	case "response":
		return TagResponse
	case "source":
		return TagSource
	case "research_summary":
		return TagResearchSummary
	default:
		return TagRegular
	}
}

// MarshalJSON encodes the tag as its string name rather than the enum ordinal
func (t TypeTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a string tag name, falling back to regular
func (t *TypeTag) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*t = ParseTypeTag(name)
	return nil
}

// Segment is one classified, orderable unit of output text. Content is plain
// text or pretty-printed JSON with angle brackets already entity-escaped;
// Order is a sort key, not a contiguous index.
type Segment struct {
	Kind    TypeTag `json:"kind"`
	Content string  `json:"content"`
	Order   int     `json:"order"`
}

// RawMessage is the immutable input to the engine. TypeHint only selects the
// kind of the fallback segment when segmentation finds no structure.
type RawMessage struct {
	Text        string
	TypeHint    TypeTag
	HasTypeHint bool
}
