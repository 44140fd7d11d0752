package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config field path, e.g. "game.chambers"
	Value   any    // the invalid value
	Message string
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidFailPolicies returns the accepted agent failure policies.
func ValidFailPolicies() []string {
	return []string{FailPolicyFail, FailPolicyDefault}
}

// ValidBackends returns the accepted decision backends.
func ValidBackends() []string {
	return []string{"gemini", "scripted"}
}

// Validate checks the Config and returns all validation errors found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateGame()...)
	errs = append(errs, c.validateAgent()...)
	errs = append(errs, c.validatePlayers()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateGame() []ValidationError {
	var errs []ValidationError

	if c.Game.Chambers < 2 {
		errs = append(errs, ValidationError{
			Field:   "game.chambers",
			Value:   c.Game.Chambers,
			Message: "must be at least 2",
		})
	}
	if c.Game.MaxTurns < 1 {
		errs = append(errs, ValidationError{
			Field:   "game.max_turns",
			Value:   c.Game.MaxTurns,
			Message: "must be at least 1",
		})
	}

	return errs
}

func (c *Config) validateAgent() []ValidationError {
	var errs []ValidationError

	if c.Agent.TimeoutSeconds < 0 {
		errs = append(errs, ValidationError{
			Field:   "agent.timeout_seconds",
			Value:   c.Agent.TimeoutSeconds,
			Message: "must not be negative",
		})
	}
	if c.Agent.Retries < 1 {
		errs = append(errs, ValidationError{
			Field:   "agent.retries",
			Value:   c.Agent.Retries,
			Message: "must be at least 1",
		})
	}
	if !slices.Contains(ValidFailPolicies(), c.Agent.OnFailure) {
		errs = append(errs, ValidationError{
			Field:   "agent.on_failure",
			Value:   c.Agent.OnFailure,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFailPolicies(), ", ")),
		})
	}

	return errs
}

func (c *Config) validatePlayers() []ValidationError {
	var errs []ValidationError

	// The engine is a duel: exactly one opponent per player.
	if len(c.Players) != 2 {
		errs = append(errs, ValidationError{
			Field:   "players",
			Value:   len(c.Players),
			Message: "exactly 2 players are required",
		})
		return errs
	}

	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		field := fmt.Sprintf("players[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Value:   p.Name,
				Message: "must not be empty",
			})
			continue
		}
		if seen[p.Name] {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Value:   p.Name,
				Message: "must be unique",
			})
		}
		seen[p.Name] = true

		if p.Backend != "" && !slices.Contains(ValidBackends(), strings.ToLower(p.Backend)) {
			errs = append(errs, ValidationError{
				Field:   field + ".backend",
				Value:   p.Backend,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBackends(), ", ")),
			})
		}
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
