package segment

import (
	"sort"
	"strings"
)

// SegmentMessage decomposes one raw backend message into typed, renderable
// segments. Tool records are pulled first, in a single pass over the original
// unmodified text; tag blocks are pulled from what remains; the merged set is
// stable-sorted by order. When nothing structured is found the whole message
// becomes a single fallback segment, so the result is never empty.
//
// The engine is a pure function of its input: no retained state, no I/O, safe
// for concurrent calls.
func SegmentMessage(msg RawMessage) []Segment {
	segments, _ := SegmentMessageWithFallback(msg)
	return segments
}

// SegmentMessageWithFallback is SegmentMessage plus a flag reporting whether
// no structure was found and the whole message became the fallback segment.
func SegmentMessageWithFallback(msg RawMessage) ([]Segment, bool) {
	toolSegments, remainder := ExtractToolRecords(msg.Text)
	tagSegments := ExtractTagBlocks(remainder)
	if len(toolSegments)+len(tagSegments) == 0 {
		return []Segment{fallbackSegment(msg)}, true
	}
	return merge(toolSegments, tagSegments, msg), false
}

// SegmentText segments a message with no caller-supplied type hint.
func SegmentText(text string) []Segment {
	return SegmentMessage(RawMessage{Text: text})
}

// merge concatenates tool segments before tag segments and stable-sorts by
// order, so ties keep tool-derived segments first.
func merge(toolSegments, tagSegments []Segment, msg RawMessage) []Segment {
	merged := make([]Segment, 0, len(toolSegments)+len(tagSegments))
	merged = append(merged, toolSegments...)
	merged = append(merged, tagSegments...)
	if len(merged) == 0 {
		return []Segment{fallbackSegment(msg)}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})
	return merged
}

// fallbackSegment wraps the whole message in a single segment whose kind is
// the caller's hint, or the classifier's guess when there is none. Only the
// fallback goes through the preprocessor: extraction sees the original text,
// display gets the normalized one.
func fallbackSegment(msg RawMessage) Segment {
	kind := TagResponse
	if msg.HasTypeHint {
		kind = msg.TypeHint
	} else {
		// A structured signal here means an unterminated tag produced no
		// segments; re-running the pipeline would not terminate, so the guess
		// stays response.
		guess, structured := ClassifyType(msg.Text)
		if !structured {
			kind = guess
		}
	}
	return Segment{Kind: kind, Content: escapeAngles(Normalize(msg.Text)), Order: 0}
}

// escapeAngles is the only sanitization the engine performs, applied exactly
// once per segment at emission time. The renderer owns all further markup.
func escapeAngles(content string) string {
	content = strings.ReplaceAll(content, "<", "&lt;")
	return strings.ReplaceAll(content, ">", "&gt;")
}
