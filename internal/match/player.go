package match

import (
	"github.com/Iron-Ham/sixgun/internal/agent"
	"github.com/Iron-Ham/sixgun/internal/item"
)

// Player is one duelist: identity, persona, inventory, and the agent
// that decides for them. Role and Style are opaque persona text handed
// to the agent; the engine never interprets them.
type Player struct {
	Name  string
	Role  string
	Style string

	// Alive transitions true to false exactly once, when a shot lands on
	// this player directly or through a contract.
	Alive bool

	Inventory *item.Inventory
	Agent     agent.Agent
}

// NewPlayer creates a living player with an empty inventory.
func NewPlayer(name, role, style string, a agent.Agent) *Player {
	return &Player{
		Name:      name,
		Role:      role,
		Style:     style,
		Alive:     true,
		Inventory: item.NewInventory(),
		Agent:     a,
	}
}
