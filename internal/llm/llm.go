package llm

import (
	"context"
	"errors"
)

// ErrContentBlocked reports that the upstream model refused the request on
// safety grounds. Handlers map it to a distinct user-facing message instead
// of the generic upstream-failure one.
var ErrContentBlocked = errors.New("llm: request blocked by safety filter")

// Client generates text from a prompt. Implementations make exactly one
// upstream call per invocation; there are no retries.
type Client interface {
	Name() string
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)
	Close() error
}

// Options tunes a single generation call.
type Options struct {
	// Schema, when set, declares the JSON shape the model must produce and
	// switches the response MIME type to application/json.
	Schema      *OutputSchema
	Temperature float32
	TopP        float32
}
