// Package modifier holds the Reverse and Contract state. It is a pure
// state holder: the turn controller consults it around fire resolution
// and records the public announcements itself.
package modifier

// ContractShots is how many fire resolutions a contract binds.
const ContractShots = 3

// Engine tracks the two duel modifiers.
//
// Reverse lives until the next turn taken by a player other than its
// activator consults it; that consult clears it whether or not it
// changed the outcome. Contract decrements on every fire resolution,
// hit or miss, and deactivates when it reaches zero.
type Engine struct {
	reverseActive bool
	reverseBy     string

	contractActive bool
	contractLeft   int
}

// New creates an Engine with no modifiers active.
func New() *Engine {
	return &Engine{}
}

// ActivateReverse arms the reverse effect on behalf of player.
// Re-activation by the same or another player simply overwrites the
// activator.
func (e *Engine) ActivateReverse(player string) {
	e.reverseActive = true
	e.reverseBy = player
}

// ConsumeReverse applies the reverse rule for the acting player's fire
// step. It reports whether the declared target must be flipped. A
// consult by anyone other than the activator clears the effect, flipped
// or not; the activator's own turns leave it armed.
func (e *Engine) ConsumeReverse(actor string) bool {
	if !e.reverseActive || actor == e.reverseBy {
		return false
	}
	e.reverseActive = false
	return true
}

// ReverseActive reports whether the reverse effect is armed.
func (e *Engine) ReverseActive() bool { return e.reverseActive }

// ReverseActivator returns who armed the reverse effect. Meaningful only
// while ReverseActive.
func (e *Engine) ReverseActivator() string { return e.reverseBy }

// ActivateContract arms the contract for ContractShots fire resolutions.
func (e *Engine) ActivateContract() {
	e.contractActive = true
	e.contractLeft = ContractShots
}

// ContractActive reports whether the contract binds the duel right now.
func (e *Engine) ContractActive() bool { return e.contractActive }

// ContractShotsLeft returns how many fire resolutions remain under the
// contract. Zero when inactive.
func (e *Engine) ContractShotsLeft() int { return e.contractLeft }

// TickContract records one fire resolution against the contract and
// reports whether the contract expired on this tick. A no-op when the
// contract is inactive.
func (e *Engine) TickContract() bool {
	if !e.contractActive {
		return false
	}
	e.contractLeft--
	if e.contractLeft <= 0 {
		e.contractActive = false
		e.contractLeft = 0
		return true
	}
	return false
}
