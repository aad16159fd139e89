package segment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// payloadKind tags the outcome of attempting to parse a candidate string as JSON
type payloadKind int

const (
	payloadObject payloadKind = iota
	payloadString
	payloadUnparseable
)

// parsedPayload is the tagged result of parsePayload. Exactly one of object or
// str is meaningful, selected by kind, so callers switch on the tag instead of
// duck-typing the decoded value.
type parsedPayload struct {
	kind   payloadKind
	object map[string]interface{}
	str    string
}

// parsePayload attempts to parse candidate as JSON and tags the outcome.
// Decoded values that are neither objects nor strings (arrays, numbers) carry
// nothing the resolver can use and are treated as unparseable.
func parsePayload(candidate string) parsedPayload {
	var value interface{}
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return parsedPayload{kind: payloadUnparseable}
	}
	switch v := value.(type) {
	case map[string]interface{}:
		return parsedPayload{kind: payloadObject, object: v}
	case string:
		return parsedPayload{kind: payloadString, str: v}
	default:
		return parsedPayload{kind: payloadUnparseable}
	}
}

// ResolveResponse recovers an embedded conversational response from a parsed
// tool payload. The backend double-encodes it: the payload's response_text
// field holds a JSON string whose response field carries the text, either
// directly or as an object with greeting/message fields. Returns false when
// the payload has no response_text field; every parse failure degrades to
// showing the inner string as-is.
func ResolveResponse(value interface{}) (string, bool) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return "", false
	}
	raw, ok := obj["response_text"]
	if !ok {
		return "", false
	}
	inner, ok := raw.(string)
	if !ok {
		// Not double-encoded after all; show the field as compact JSON.
		return compactJSON(raw), true
	}
	if !strings.HasPrefix(inner, "{") {
		return inner, true
	}

	payload := parsePayload(inner)
	switch payload.kind {
	case payloadObject:
		if resp, ok := payload.object["response"]; ok {
			return flattenResponse(resp), true
		}
		return inner, true
	case payloadString:
		return payload.str, true
	default:
		return inner, true
	}
}

// flattenResponse picks the display string out of a response value: plain
// strings pass through, objects prefer greeting, then message, then the
// stringified object.
func flattenResponse(resp interface{}) string {
	switch v := resp.(type) {
	case string:
		return v
	case map[string]interface{}:
		if greeting, ok := v["greeting"].(string); ok {
			return greeting
		}
		if message, ok := v["message"].(string); ok {
			return message
		}
		return compactJSON(v)
	default:
		return compactJSON(v)
	}
}

// prettyJSON renders a decoded value with two-space indentation. Map keys are
// emitted in sorted order, so output is deterministic for a given input.
func prettyJSON(value interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// compactJSON renders a decoded value on one line
func compactJSON(value interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
