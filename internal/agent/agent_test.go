package agent

import (
	"context"
	"testing"
	"time"

	"github.com/Iron-Ham/sixgun/internal/errors"
)

// flaky fails a fixed number of times before succeeding.
type flaky struct {
	failures int
	calls    int
}

func (f *flaky) Name() string { return "flaky" }

func (f *flaky) Respond(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("backend hiccup")
	}
	return "ok", nil
}

func TestRetryingSucceedsAfterFailures(t *testing.T) {
	inner := &flaky{failures: 2}
	r := NewRetrying(inner, 0, 3)

	got, err := r.Respond(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Respond() = %q, want %q", got, "ok")
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestRetryingExhaustsAttempts(t *testing.T) {
	inner := &flaky{failures: 10}
	r := NewRetrying(inner, 0, 3)

	_, err := r.Respond(context.Background(), "prompt")
	if !errors.Is(err, errors.ErrAgentUnavailable) {
		t.Fatalf("Respond() error = %v, want ErrAgentUnavailable", err)
	}
	if !errors.IsRetryable(err) {
		t.Error("IsRetryable() = false for agent failure")
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestRetryingClampsAttempts(t *testing.T) {
	inner := &flaky{failures: 10}
	r := NewRetrying(inner, 0, 0)

	if _, err := r.Respond(context.Background(), "prompt"); err == nil {
		t.Fatal("Respond() error = nil, want failure")
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 after clamping", inner.calls)
	}
}

func TestRetryingStopsOnCanceledContext(t *testing.T) {
	inner := &flaky{failures: 10}
	r := NewRetrying(inner, 0, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, "prompt")
	if err == nil {
		t.Fatal("Respond() error = nil, want failure")
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (no retries after cancellation)", inner.calls)
	}
}

func TestRetryingAppliesTimeout(t *testing.T) {
	slow := agentFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	r := NewRetrying(slow, 5*time.Millisecond, 2)

	start := time.Now()
	_, err := r.Respond(context.Background(), "prompt")
	if !errors.Is(err, errors.ErrAgentUnavailable) {
		t.Fatalf("Respond() error = %v, want ErrAgentUnavailable", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Respond() took %v, per-attempt timeout not applied", elapsed)
	}
}

// agentFunc adapts a function to the Agent interface.
type agentFunc func(ctx context.Context, prompt string) (string, error)

func (f agentFunc) Name() string { return "func" }

func (f agentFunc) Respond(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestScriptedReplaysAndRepeatsFinalLine(t *testing.T) {
	s := NewScripted("Bill", []string{"first", "second"})
	ctx := context.Background()

	for i, want := range []string{"first", "second", "second", "second"} {
		got, err := s.Respond(ctx, "prompt")
		if err != nil {
			t.Fatalf("call %d: Respond() error = %v", i, err)
		}
		if got != want {
			t.Errorf("call %d: Respond() = %q, want %q", i, got, want)
		}
	}
}

func TestScriptedEmptyScript(t *testing.T) {
	s := NewScripted("Bill", nil)

	got, err := s.Respond(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if got != "" {
		t.Errorf("Respond() = %q, want empty", got)
	}
	if d := ParseDecision(got); d != (Decision{}) {
		t.Errorf("empty response parsed to %+v, want zero decision", d)
	}
}
