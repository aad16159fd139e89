package segment

import "strings"

// Normalize unwinds one layer of JSON-stringification from a raw backend
// message for display: literal escape sequences become their characters, then
// a single wrapping brace, bracket or quote pair is stripped from the whole
// string. Replacement order matters: \" before \\ is what takes exactly one
// escaping layer off, leaving any inner \" intact.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, `\"`, `"`)
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\r`, "\r")
	text = strings.ReplaceAll(text, `\t`, "\t")
	text = strings.ReplaceAll(text, `\\`, `\`)

	// Anchored: strips at most one leading/trailing wrapper, never interior ones.
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return text
}
