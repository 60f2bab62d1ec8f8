package generation

import (
	"context"
	"errors"
	"time"
)

// Defaults applied when the configuration leaves them unset.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// ErrGenerationFailed is returned when the external text-generation service
// could not produce a response: timeouts, transport errors and non-success
// statuses all collapse into it once the retry budget is exhausted. The
// underlying cause is wrapped for diagnostics.
var ErrGenerationFailed = errors.New("text generation failed")

// Generator defines the interface to the external text-generation service.
type Generator interface {
	// Generate sends the prompt and returns the raw generated text,
	// already unwrapped from the provider's response envelope.
	Generate(ctx context.Context, prompt string) (string, error)
}
