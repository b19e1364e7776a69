// Package normalize turns raw model output into fully-populated domain
// records. Raw text is untrusted: it may be empty, fenced in markdown, or
// malformed JSON. Malformed individual fields degrade to documented defaults;
// only unparseable or wrongly-shaped payloads fail, with a distinct error
// kind per condition so handlers can pick the right user-facing message.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyResponse means the model returned nothing after trimming.
	// Callers should suggest broadening the query.
	ErrEmptyResponse = errors.New("normalize: empty model response")

	// ErrMalformedResponse means the payload was not JSON after fence
	// stripping. The offending text travels on MalformedError for logs.
	ErrMalformedResponse = errors.New("normalize: model response is not valid JSON")

	// ErrUnexpectedShape means the JSON parsed but its top-level value has
	// the wrong type (object where an array was expected, or vice versa).
	ErrUnexpectedShape = errors.New("normalize: unexpected top-level shape")
)

// MalformedError carries the raw model text for server-side diagnostics.
// It is never surfaced to end users verbatim.
type MalformedError struct {
	Raw   string
	cause error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("normalize: model response is not valid JSON: %v", e.cause)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedResponse }

var reJSONFence = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// StripFence removes a single outer ```json ... ``` fence if present and
// returns the trimmed content. Models sometimes wrap JSON in such fences
// despite instructions not to. Stripping is idempotent: unfenced input
// comes back unchanged (trimmed).
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := reJSONFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// decode trims, strips the fence, and parses raw into v.
func decode(raw string, v any) error {
	cleaned := StripFence(raw)
	if cleaned == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &MalformedError{Raw: cleaned, cause: err}
	}
	return nil
}

// stringField returns the trimmed string value for key, or "" when the key
// is absent, not a string, or empty. The caller substitutes its default.
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
