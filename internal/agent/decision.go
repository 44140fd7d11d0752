package agent

// Target is where a duelist points the revolver.
type Target int

const (
	// TargetOpponent is the default when the fire section is missing or
	// unrecognized.
	TargetOpponent Target = iota
	TargetSelf
)

// String returns the wire-format word for the target.
func (t Target) String() string {
	if t == TargetSelf {
		return "self"
	}
	return "opponent"
}

// Flip returns the opposite target.
func (t Target) Flip() Target {
	if t == TargetSelf {
		return TargetOpponent
	}
	return TargetSelf
}

// CommMode is the communication choice for a turn.
type CommMode int

const (
	// CommSilent is the default when the communication section is missing.
	CommSilent CommMode = iota
	CommTalk
	CommNegotiate
)

// Decision is one turn's parsed choices. Zero value means: no item,
// silent, fire at the opponent. Those are the defaults the tolerant
// parser applies per missing section.
type Decision struct {
	UseItem   bool
	Item      string // item name as written by the agent
	ItemParam string

	Comm    CommMode
	Message string

	Target Target
}
