// Package item implements the five single-use duel items, inventory
// bookkeeping, and the setup-time dealing of item pools.
package item

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Iron-Ham/sixgun/internal/errors"
	"github.com/Iron-Ham/sixgun/internal/locale"
	"github.com/Iron-Ham/sixgun/internal/modifier"
	"github.com/Iron-Ham/sixgun/internal/revolver"
)

// Kind identifies one of the five item kinds.
type Kind string

const (
	KindExtraBullet Kind = "ExtraBullet"
	KindInspect     Kind = "Inspect"
	KindReverse     Kind = "Reverse"
	KindContract    Kind = "Contract"
	KindPush        Kind = "Push"
)

// Kinds returns all item kinds in deal order.
func Kinds() []Kind {
	return []Kind{KindExtraBullet, KindInspect, KindReverse, KindContract, KindPush}
}

// ParseKind resolves a player-supplied item name, case-insensitively.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "extrabullet", "extra bullet", "bullet":
		return KindExtraBullet, true
	case "inspect":
		return KindInspect, true
	case "reverse":
		return KindReverse, true
	case "contract":
		return KindContract, true
	case "push":
		return KindPush, true
	default:
		return "", false
	}
}

// Inventory is a multiset of item units. Each unit is single-use.
type Inventory struct {
	items []Kind
}

// NewInventory creates an inventory holding the given units.
func NewInventory(items ...Kind) *Inventory {
	inv := &Inventory{items: make([]Kind, len(items))}
	copy(inv.items, items)
	return inv
}

// Add appends one unit of kind k.
func (inv *Inventory) Add(k Kind) {
	inv.items = append(inv.items, k)
}

// Remove removes one unit of kind k, reporting whether a unit was held.
func (inv *Inventory) Remove(k Kind) bool {
	for i, held := range inv.items {
		if held == k {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether at least one unit of kind k is held.
func (inv *Inventory) Has(k Kind) bool {
	for _, held := range inv.items {
		if held == k {
			return true
		}
	}
	return false
}

// Len returns the number of units held.
func (inv *Inventory) Len() int { return len(inv.items) }

// List returns a copy of the held units in deal order.
func (inv *Inventory) List() []Kind {
	out := make([]Kind, len(inv.items))
	copy(out, inv.items)
	return out
}

// String renders the inventory as a comma-separated list, or "none".
func (inv *Inventory) String() string {
	if len(inv.items) == 0 {
		return "none"
	}
	parts := make([]string, len(inv.items))
	for i, k := range inv.items {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// PerPlayerCount returns how many items each duelist is dealt for a
// cylinder with the given chamber count: ceil(chambers/3).
func PerPlayerCount(chambers int) int {
	return (chambers + 2) / 3
}

// Deal builds the randomized setup pool and deals PerPlayerCount(chambers)
// items to each of players inventories. The pool holds every kind with
// replacement, repeated until it covers every hand, so duplicates across
// and within hands are expected.
func Deal(rng *rand.Rand, chambers, players int) []*Inventory {
	count := PerPlayerCount(chambers)

	pool := make([]Kind, 0, len(Kinds())*(players+2))
	for len(pool) < players*count || len(pool) < len(Kinds())*(players+2) {
		pool = append(pool, Kinds()...)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	hands := make([]*Inventory, players)
	for i := 0; i < players; i++ {
		hands[i] = NewInventory(pool[i*count : (i+1)*count]...)
	}
	return hands
}

// Result is the private outcome of an item activation, returned to the
// acting player. Message is safe to show that player but may contain
// information (an inspection result) that must not reach the opponent.
type Result struct {
	Kind     Kind
	Consumed bool
	Message  string
}

// System applies item effects against the cylinder and modifier engine,
// and records the disclosure entries for each activation.
type System struct {
	cyl  *revolver.Cylinder
	mods *modifier.Engine
	rec  revolver.Recorder
	msgs locale.Table
}

// NewSystem creates an item System over the given cylinder and modifiers.
func NewSystem(cyl *revolver.Cylinder, mods *modifier.Engine, rec revolver.Recorder, msgs locale.Table) *System {
	return &System{cyl: cyl, mods: mods, rec: rec, msgs: msgs}
}

// Use activates one unit of the named item from inv on behalf of player.
// Invalid activations (unknown name, item not held, malformed or
// out-of-range parameter) consume nothing, change no state, and return a
// rule error alongside the descriptive message; the turn continues.
//
// On success the unit is removed before the effect executes, and the
// disclosure entries are recorded per kind: ExtraBullet and Inspect give
// the spectator full detail and the participant log only "used an item";
// Reverse, Contract and Push are announced identically to both logs.
func (s *System) Use(player string, inv *Inventory, name, param string) (Result, error) {
	kind, ok := ParseKind(name)
	if !ok {
		return Result{Message: s.msgs.ItemNotHeld},
			errors.NewRuleError(s.msgs.ItemNotHeld, errors.ErrUnknownItem).WithPlayer(player).WithItem(name)
	}
	if !inv.Has(kind) {
		return Result{Kind: kind, Message: s.msgs.ItemNotHeld},
			errors.NewRuleError(s.msgs.ItemNotHeld, errors.ErrItemNotHeld).WithPlayer(player).WithItem(string(kind))
	}

	switch kind {
	case KindExtraBullet:
		inv.Remove(kind)
		chamber, added := s.cyl.AddBullet()
		if !added {
			s.record(player, kind, s.msgs.ChambersFull)
			return Result{Kind: kind, Consumed: true, Message: s.msgs.ChambersFull}, nil
		}
		s.record(player, kind, fmt.Sprintf(s.msgs.BulletAddedSpectator, chamber+1))
		return Result{Kind: kind, Consumed: true, Message: s.msgs.BulletAddedHidden}, nil

	case KindInspect:
		position, err := parsePosition(param)
		if err != nil {
			return Result{Kind: kind, Message: s.msgs.ItemNeedsPosition},
				errors.NewRuleError(s.msgs.ItemNeedsPosition, errors.ErrItemParameter).WithPlayer(player).WithItem(string(kind))
		}
		if position < 0 || position >= s.cyl.Chambers() {
			msg := fmt.Sprintf(s.msgs.PositionOutOfRange, s.cyl.Chambers())
			return Result{Kind: kind, Message: msg},
				errors.NewRuleError(msg, errors.ErrPositionOutOfRange).WithPlayer(player).WithItem(string(kind))
		}
		inv.Remove(kind)
		loaded, err := s.cyl.Inspect(player, position)
		if err != nil {
			// Range was validated above; reaching here is a bug.
			panic(fmt.Sprintf("item: inspect failed after validation: %v", err))
		}
		word := s.msgs.ChamberEmptyWord
		if loaded {
			word = s.msgs.ChamberLoadedWord
		}
		s.rec.Record(
			fmt.Sprintf(s.msgs.ItemUsedSpectator, player, kind, fmt.Sprintf(s.msgs.InspectResult, position+1, word)),
			fmt.Sprintf(s.msgs.ItemUsedParticipant, player),
		)
		return Result{Kind: kind, Consumed: true, Message: fmt.Sprintf(s.msgs.InspectResult, position+1, word)}, nil

	case KindReverse:
		inv.Remove(kind)
		s.mods.ActivateReverse(player)
		s.rec.RecordPublic(fmt.Sprintf(s.msgs.ItemUsedSpectator, player, kind, s.msgs.ReverseActivated))
		return Result{Kind: kind, Consumed: true, Message: s.msgs.ReverseActivated}, nil

	case KindContract:
		inv.Remove(kind)
		s.mods.ActivateContract()
		detail := fmt.Sprintf(s.msgs.ContractActivated, modifier.ContractShots)
		s.rec.RecordPublic(fmt.Sprintf(s.msgs.ItemUsedSpectator, player, kind, detail))
		return Result{Kind: kind, Consumed: true, Message: detail}, nil

	case KindPush:
		inv.Remove(kind)
		// Push records its own public entry; the trigger movement is the
		// disclosure.
		s.cyl.Push()
		return Result{Kind: kind, Consumed: true, Message: fmt.Sprintf(s.msgs.TriggerMoved, s.cyl.Position()+1)}, nil
	}

	panic(fmt.Sprintf("item: unhandled kind %q", kind))
}

// record writes the split disclosure pair for hidden-effect items.
func (s *System) record(player string, kind Kind, detail string) {
	s.rec.Record(
		fmt.Sprintf(s.msgs.ItemUsedSpectator, player, kind, detail),
		fmt.Sprintf(s.msgs.ItemUsedParticipant, player),
	)
}

// parsePosition parses a 1-based chamber number into a 0-based index.
func parsePosition(param string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
