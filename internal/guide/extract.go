package guide

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedResponse is returned when the collaborator's completion cannot
// be parsed into the expected shape.
var ErrMalformedResponse = errors.New("malformed guide response")

// extractJSONArray locates the outermost bracketed JSON array in a
// completion. Models often wrap the array in prose or a markdown fence; the
// array itself is taken from the first '[' to the last ']'.
func extractJSONArray(s string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start < 0 || end <= start {
		return nil, ErrMalformedResponse
	}
	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, ErrMalformedResponse
	}
	return json.RawMessage(candidate), nil
}
