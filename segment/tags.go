package segment

import (
	"regexp"
	"strings"
)

// tagGrammar binds one bracket tag to its segment kind and compiled block
// pattern.
type tagGrammar struct {
	kind    TypeTag
	pattern *regexp.Regexp
}

// tagGrammars drives the scanner. Order is fixed: THOUGHT, PLANNING, UTILITY,
// DEBUG, JSON. Matches of an earlier tag never suppress matches of a later one.
var tagGrammars = []tagGrammar{
	{TagThought, tagPattern("THOUGHT")},
	{TagPlanning, tagPattern("PLANNING")},
	{TagUtility, tagPattern("UTILITY")},
	{TagDebug, tagPattern("DEBUG")},
	{TagJSON, tagPattern("JSON")},
}

// tagPattern compiles the [TAG]...[/TAG] grammar: case-insensitive,
// dot matches newline, non-greedy. An unterminated tag simply never matches.
func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)\[` + tag + `\](.*?)\[/` + tag + `\]`)
}

// tagOrderBias sorts tag-derived segments after tool-derived segments for
// typical short messages. Once either offset range exceeds 1000 characters the
// two ranges can interleave; kept as-is for compatibility with the renderer's
// expected ordering.
const tagOrderBias = 1000

// ExtractTagBlocks scans the text left after tool-record removal for bracket
// tag blocks and emits one segment per match, ordered by match offset within
// the remainder plus the fixed bias.
func ExtractTagBlocks(remainder string) []Segment {
	var segments []Segment
	for _, grammar := range tagGrammars {
		for _, match := range grammar.pattern.FindAllStringSubmatchIndex(remainder, -1) {
			segments = append(segments, Segment{
				Kind:    grammar.kind,
				Content: escapeAngles(strings.TrimSpace(remainder[match[2]:match[3]])),
				Order:   match[0] + tagOrderBias,
			})
		}
	}
	return segments
}
