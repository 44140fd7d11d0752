package match

import "time"

// CylinderView is a spectator snapshot of the revolver for rendering.
// Loaded is indexed by chamber; Position is the trigger chamber.
type CylinderView struct {
	Chambers int
	Position int
	Loaded   []bool
}

// Presenter receives display events from the turn controller. It is
// injected at construction; the engine holds no global display state.
// Spectator carries ground truth and must never be routed to a player.
type Presenter interface {
	Header(text string)
	Event(text string)
	Warning(text string)
	Spectator(text string)
	AgentResponse(player, text string, elapsed time.Duration)
	Cylinder(view CylinderView)
}

// NopPresenter discards all display events.
type NopPresenter struct{}

func (NopPresenter) Header(string)                               {}
func (NopPresenter) Event(string)                                {}
func (NopPresenter) Warning(string)                              {}
func (NopPresenter) Spectator(string)                            {}
func (NopPresenter) AgentResponse(string, string, time.Duration) {}
func (NopPresenter) Cylinder(CylinderView)                       {}
