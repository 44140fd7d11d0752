package errors

import (
	"strings"
	"testing"
	"time"
)

func TestRuleErrorWrapsSentinel(t *testing.T) {
	err := NewRuleError("chamber must be between 1 and 6", ErrPositionOutOfRange).
		WithPlayer("Bill").WithItem("Inspect")

	if !Is(err, ErrPositionOutOfRange) {
		t.Error("Is(ErrPositionOutOfRange) = false")
	}
	var rule *RuleError
	if !As(err, &rule) {
		t.Fatal("As(*RuleError) = false")
	}
	if rule.Player != "Bill" || rule.Item != "Inspect" {
		t.Errorf("context = (%q, %q), want (Bill, Inspect)", rule.Player, rule.Item)
	}
	if got := err.Error(); !strings.Contains(got, "player=Bill") {
		t.Errorf("Error() = %q, want player context", got)
	}
}

func TestRuleErrorWithoutCause(t *testing.T) {
	err := NewRuleError("a duel needs exactly 2 players", nil)

	if got := err.Error(); got != "rule error: a duel needs exactly 2 players" {
		t.Errorf("Error() = %q", got)
	}
	if Is(err, ErrItemNotHeld) {
		t.Error("Is(ErrItemNotHeld) = true for unrelated error")
	}
}

func TestIsRuleViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"rule error", NewRuleError("no", ErrItemNotHeld), true},
		{"bare sentinel", ErrUnknownItem, true},
		{"agent error", NewAgentError("down", nil), false},
		{"plain error", New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := IsRuleViolation(tc.err); got != tc.want {
			t.Errorf("IsRuleViolation(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"agent error", NewAgentError("down", nil).WithBackend("gemini"), true},
		{"timeout", NewTimeoutError("decision", time.Second), true},
		{"rule error", NewRuleError("no", ErrItemNotHeld), false},
		{"plain error", New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := IsRetryable(tc.err); got != tc.want {
			t.Errorf("IsRetryable(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAgentErrorJoinedCause(t *testing.T) {
	inner := New("connection refused")
	err := NewAgentError("backend failed after retries", Join(ErrAgentUnavailable, inner))

	if !Is(err, ErrAgentUnavailable) {
		t.Error("Is(ErrAgentUnavailable) = false")
	}
	if !Is(err, inner) {
		t.Error("Is(inner) = false, joined cause lost")
	}
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := NewTimeoutError("decision", 2*time.Second)

	if got := err.Error(); got != "timeout after 2s: decision" {
		t.Errorf("Error() = %q", got)
	}
}
