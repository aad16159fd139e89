package segment

import "strings"

// structuredMarkers are the tag openers whose presence means the message
// should go through full segmentation rather than a single-type fallback.
var structuredMarkers = []string{"[THOUGHT]", "[PLANNING]", "[UTILITY]", "[DEBUG]"}

// ClassifyType guesses a type for a whole message when the caller supplied no
// hint. The guess only selects the fallback segment's kind. The boolean
// reports the structured signal: tag markers are present and segmentation
// should be run instead of falling back.
func ClassifyType(text string) (TypeTag, bool) {
	if strings.Contains(text, "response_text") ||
		(strings.HasPrefix(text, "{") && strings.Contains(text, `"status"`)) {
		return TagJSON, false
	}
	if strings.Contains(text, "Tool Used:") && strings.Contains(text, "Output:") {
		return TagToolOutput, false
	}
	for _, marker := range structuredMarkers {
		if strings.Contains(text, marker) {
			return TagResponse, true
		}
	}
	return TagResponse, false
}
