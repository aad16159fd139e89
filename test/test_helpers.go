package test

import "agent-segmenter/segment"

// kindsOf flattens a segment list to its kind names, shared across test files
func kindsOf(segments []segment.Segment) []string {
	kinds := make([]string, len(segments))
	for i, s := range segments {
		kinds[i] = s.Kind.String()
	}
	return kinds
}

// countKind counts segments of one kind
func countKind(segments []segment.Segment, kind segment.TypeTag) int {
	n := 0
	for _, s := range segments {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
