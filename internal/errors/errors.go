// Package errors provides centralized error definitions for the sixgun
// codebase. It distinguishes recoverable rule violations (a duelist
// asked for something the rules forbid: out-of-range chamber, item not
// held, malformed parameter) from agent transport failures, which are
// the only retryable class. Invariant violations inside the engine are
// programming errors and panic rather than surface here.
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrItemNotHeld) { ... }
//
//	var ruleErr *errors.RuleError
//	if errors.As(err, &ruleErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Re-export standard library functions for convenience, so callers can
// import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Rule-related sentinel errors. All of these are recoverable: the turn
// continues, the item is not consumed.
var (
	// ErrPositionOutOfRange indicates a chamber index outside the cylinder.
	ErrPositionOutOfRange = New("chamber position out of range")
	// ErrItemNotHeld indicates the acting player does not hold the item.
	ErrItemNotHeld = New("item not held")
	// ErrUnknownItem indicates an item name the engine does not recognize.
	ErrUnknownItem = New("unknown item")
	// ErrItemParameter indicates a missing or malformed item parameter.
	ErrItemParameter = New("invalid item parameter")
)

// Agent-related sentinel errors.
var (
	// ErrUnknownBackend is returned when the configured decision backend
	// is unsupported.
	ErrUnknownBackend = New("unknown agent backend")
	// ErrAgentUnavailable indicates the decision backend could not be
	// reached after all retries.
	ErrAgentUnavailable = New("agent backend unavailable")
)

// baseError provides common functionality for the structured error types.
type baseError struct {
	message   string
	cause     error
	retryable bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// RuleError represents a recoverable rules violation: a decision the
// engine rejects without changing any game state. The message is always
// safe to show in the chronicle.
type RuleError struct {
	baseError
	Player string
	Item   string
}

// NewRuleError creates a RuleError wrapping an optional sentinel cause.
func NewRuleError(message string, cause error) *RuleError {
	return &RuleError{
		baseError: baseError{message: message, cause: cause},
	}
}

// WithPlayer adds the acting player to the error context.
func (e *RuleError) WithPlayer(name string) *RuleError {
	e.Player = name
	return e
}

// WithItem adds the item being activated to the error context.
func (e *RuleError) WithItem(item string) *RuleError {
	e.Item = item
	return e
}

func (e *RuleError) Error() string {
	prefix := "rule error"
	if e.Player != "" {
		prefix = fmt.Sprintf("rule error [player=%s]", e.Player)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

func (e *RuleError) Is(target error) bool {
	if _, ok := target.(*RuleError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// AgentError represents a failure talking to a decision backend. Agent
// errors are retryable: the backend may succeed on a later attempt.
type AgentError struct {
	baseError
	Backend string
	Player  string
}

// NewAgentError creates an AgentError.
func NewAgentError(message string, cause error) *AgentError {
	return &AgentError{
		baseError: baseError{message: message, cause: cause, retryable: true},
	}
}

// WithBackend adds the backend name to the error context.
func (e *AgentError) WithBackend(name string) *AgentError {
	e.Backend = name
	return e
}

// WithPlayer adds the deciding player to the error context.
func (e *AgentError) WithPlayer(name string) *AgentError {
	e.Player = name
	return e
}

func (e *AgentError) Error() string {
	prefix := "agent error"
	if e.Backend != "" {
		prefix = fmt.Sprintf("agent error [backend=%s]", e.Backend)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

func (e *AgentError) Is(target error) bool {
	if _, ok := target.(*AgentError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError represents a decision that did not arrive in time.
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a TimeoutError for the named operation.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{message: operation, retryable: true},
		Operation: operation,
		Duration:  duration,
	}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %v: %s", e.Duration, e.Operation)
}

func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IsRuleViolation reports whether err is a recoverable rules violation.
// Rule violations leave game state untouched and never end the match.
func IsRuleViolation(err error) bool {
	var rule *RuleError
	if errors.As(err, &rule) {
		return true
	}
	return errors.Is(err, ErrPositionOutOfRange) ||
		errors.Is(err, ErrItemNotHeld) ||
		errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrItemParameter)
}

// IsRetryable reports whether the operation behind err may succeed on a
// retry. Only agent transport failures and timeouts qualify.
func IsRetryable(err error) bool {
	type retryable interface{ IsRetryable() bool }
	var r retryable
	if errors.As(err, &r) {
		return r.IsRetryable()
	}
	return false
}

// IsRetryable exposes retryability for classification helpers.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}
