// Package agent defines the decision contract between the duel engine
// and whatever produces decisions: a language-model backend or a
// scripted sequence. The engine hands an agent a fully rendered prompt
// and gets free text back; the tolerant parser in this package turns
// that text into a Decision with explicit per-field defaults.
package agent

import (
	"context"
	"time"

	"github.com/Iron-Ham/sixgun/internal/errors"
)

// Agent supplies raw decision text for a prompt. Implementations are
// consumed, never owned, by the turn controller; calls block until the
// backend responds or ctx is done.
type Agent interface {
	Name() string
	Respond(ctx context.Context, prompt string) (string, error)
}

// Retrying wraps an Agent with a per-attempt timeout and a bounded
// retry count. When every attempt fails the last error is wrapped in
// ErrAgentUnavailable so the controller can apply its failure policy.
type Retrying struct {
	inner    Agent
	timeout  time.Duration
	attempts int
}

// NewRetrying wraps inner. A timeout of zero disables the per-attempt
// deadline; attempts below 1 are clamped to 1.
func NewRetrying(inner Agent, timeout time.Duration, attempts int) *Retrying {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrying{inner: inner, timeout: timeout, attempts: attempts}
}

func (r *Retrying) Name() string { return r.inner.Name() }

func (r *Retrying) Respond(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < r.attempts; attempt++ {
		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if r.timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, r.timeout)
		}
		text, err := r.inner.Respond(attemptCtx, prompt)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.NewAgentError("backend failed after retries",
		errors.Join(errors.ErrAgentUnavailable, lastErr)).WithBackend(r.inner.Name())
}
