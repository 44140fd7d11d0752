package match

import "fmt"

// OutcomeKind classifies how a duel resolved.
type OutcomeKind int

const (
	// OutcomeWin means one duelist survived the other.
	OutcomeWin OutcomeKind = iota
	// OutcomeDrawMutualDeath means a contract hit took both duelists.
	OutcomeDrawMutualDeath
	// OutcomeDrawNegotiated means a truce proposal was accepted.
	OutcomeDrawNegotiated
	// OutcomeDrawMaxTurns means the safety bound ended the duel with
	// both duelists alive.
	OutcomeDrawMaxTurns
	// OutcomeAborted means an agent backend failed and the fail policy
	// ended the match with no winner. Not one of the four in-game
	// resolutions.
	OutcomeAborted
)

// Outcome is the final match classification.
type Outcome struct {
	Kind   OutcomeKind
	Winner string // set only for OutcomeWin
	Turns  int    // turns completed when the duel resolved
}

// String renders the outcome for display.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return fmt.Sprintf("%s wins", o.Winner)
	case OutcomeDrawMutualDeath:
		return "draw: both duelists fell"
	case OutcomeDrawNegotiated:
		return "draw: truce accepted"
	case OutcomeDrawMaxTurns:
		return "draw: turn limit reached"
	case OutcomeAborted:
		return "aborted: no winner declared"
	default:
		return "unresolved"
	}
}
