package segment

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// toolHeaderPattern matches the "Tool Used: <name-line> Output:" head of a
	// tool-invocation record. Case-insensitive; the name stays on one line,
	// any whitespace may separate it from Output:.
	toolHeaderPattern = regexp.MustCompile(`(?i)Tool Used:[ \t]*([^\n]*?)\s*Output:[ \t]*`)

	// toolMarkerPattern finds every "Tool Used:" occurrence; any of them
	// terminates the preceding record's output, whether or not a full header
	// follows.
	toolMarkerPattern = regexp.MustCompile(`(?i)Tool Used:`)

	// timestampPattern matches an HH:MM:SS stamp at line start, the other
	// output terminator the backend emits.
	timestampPattern = regexp.MustCompile(`(?m)^\d{2}:\d{2}:\d{2}`)
)

// ExtractToolRecords finds every Tool Used:/Output: record in a single global
// pass over text and emits its segments in order of appearance. The second
// return value is the remainder: text minus all matched record spans, trimmed,
// which feeds the tag-block extractor.
//
// Each record's output runs until the next line-start HH:MM:SS stamp, the next
// "Tool Used:", or end of string. Go's regexp has no lookahead, so terminator
// offsets are located separately and the output end is the nearest one past
// the header.
func ExtractToolRecords(text string) ([]Segment, string) {
	headers := toolHeaderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return nil, strings.TrimSpace(text)
	}

	markers := toolMarkerPattern.FindAllStringIndex(text, -1)
	stamps := timestampPattern.FindAllStringIndex(text, -1)

	var segments []Segment
	spans := make([][2]int, 0, len(headers))
	for _, header := range headers {
		start, end := header[0], header[1]
		name := strings.TrimSpace(text[header[2]:header[3]])

		contentEnd := len(text)
		for _, m := range markers {
			if m[0] >= end {
				contentEnd = m[0]
				break
			}
		}
		for _, s := range stamps {
			if s[0] >= end && s[0] < contentEnd {
				contentEnd = s[0]
				break
			}
		}

		content := strings.TrimSpace(text[end:contentEnd])
		spans = append(spans, [2]int{start, contentEnd})

		segments = append(segments, Segment{
			Kind:    TagToolOutput,
			Content: escapeAngles("**" + name + "**"),
			Order:   start,
		})
		segments = append(segments, classifyToolOutput(content, start)...)
	}

	return segments, removeSpans(text, spans)
}

// classifyToolOutput turns one record's output content into segments: parsed
// JSON becomes a pretty-printed json segment (plus a response segment when the
// payload embeds one), anything else becomes a utility segment.
func classifyToolOutput(content string, offset int) []Segment {
	if strings.HasPrefix(content, "{") {
		candidate := content
		if strings.HasPrefix(content, "{'") {
			// Single-quoted pseudo-JSON from the backend. The replacement is
			// deliberately naive: no quote-escaping awareness.
			candidate = strings.ReplaceAll(content, "'", `"`)
		}
		var value interface{}
		if err := json.Unmarshal([]byte(candidate), &value); err == nil {
			segments := []Segment{{
				Kind:    TagJSON,
				Content: escapeAngles(prettyJSON(value)),
				Order:   offset + 1,
			}}
			if response, ok := ResolveResponse(value); ok {
				segments = append(segments, Segment{
					Kind:    TagResponse,
					Content: escapeAngles(response),
					Order:   offset + 2,
				})
			}
			return segments
		}
	}
	return []Segment{{
		Kind:    TagUtility,
		Content: escapeAngles(content),
		Order:   offset + 1,
	}}
}

// removeSpans returns text minus the given non-overlapping, ascending spans,
// trimmed.
func removeSpans(text string, spans [][2]int) string {
	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span[0] > last {
			b.WriteString(text[last:span[0]])
		}
		if span[1] > last {
			last = span[1]
		}
	}
	if last < len(text) {
		b.WriteString(text[last:])
	}
	return strings.TrimSpace(b.String())
}
