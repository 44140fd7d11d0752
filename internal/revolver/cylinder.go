// Package revolver implements the cylinder: bullet placement, firing,
// inspection, and trigger advancement. The cylinder owns no policy; it
// reports what happened and the match controller decides what it means.
package revolver

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Iron-Ham/sixgun/internal/errors"
	"github.com/Iron-Ham/sixgun/internal/locale"
)

// Recorder receives chronicle entries from cylinder operations.
// chronicle.Chronicle satisfies it.
type Recorder interface {
	Record(full, restricted string)
	RecordPublic(text string)
	RecordSpectator(text string)
}

// Cylinder models the revolver: a fixed ring of chambers, a set of
// loaded positions, and the trigger position that will be checked on the
// next fire. The trigger advances by exactly one chamber (mod the
// chamber count) on every fire or push, never by any other amount.
type Cylinder struct {
	chambers int
	bullets  map[int]bool
	position int
	rng      *rand.Rand
	rec      Recorder
	msgs     locale.Table
}

// New creates a cylinder with a random load: bullet count uniform over
// [1, chambers/2], distinct positions uniform over the ring, trigger
// position uniform. It records one full-detail spectator entry and one
// redacted participant entry.
func New(rng *rand.Rand, rec Recorder, msgs locale.Table, chambers int) (*Cylinder, error) {
	if chambers < 2 {
		return nil, errors.NewRuleError(fmt.Sprintf("chamber count must be at least 2, got %d", chambers), nil)
	}

	count := 1 + rng.Intn(chambers/2)
	positions := rng.Perm(chambers)[:count]

	bullets := make(map[int]bool, count)
	for _, p := range positions {
		bullets[p] = true
	}

	c := &Cylinder{
		chambers: chambers,
		bullets:  bullets,
		position: rng.Intn(chambers),
		rng:      rng,
		rec:      rec,
		msgs:     msgs,
	}
	c.rec.Record(
		fmt.Sprintf(msgs.SetupSpectator, count, c.chamberList(), c.position+1),
		fmt.Sprintf(msgs.SetupParticipant, count, c.position+1),
	)
	return c, nil
}

// NewLoaded creates a cylinder with an explicit load. Used for replays
// and tests; it records the same setup entries as New.
func NewLoaded(rng *rand.Rand, rec Recorder, msgs locale.Table, chambers int, bullets []int, position int) (*Cylinder, error) {
	if chambers < 2 {
		return nil, errors.NewRuleError(fmt.Sprintf("chamber count must be at least 2, got %d", chambers), nil)
	}
	if position < 0 || position >= chambers {
		return nil, errors.NewRuleError("trigger position out of range", errors.ErrPositionOutOfRange)
	}
	set := make(map[int]bool, len(bullets))
	for _, b := range bullets {
		if b < 0 || b >= chambers {
			return nil, errors.NewRuleError("bullet position out of range", errors.ErrPositionOutOfRange)
		}
		set[b] = true
	}
	if len(set) == 0 || len(set) > chambers/2 {
		return nil, errors.NewRuleError(fmt.Sprintf("bullet count must be in [1, %d], got %d", chambers/2, len(set)), nil)
	}

	c := &Cylinder{
		chambers: chambers,
		bullets:  set,
		position: position,
		rng:      rng,
		rec:      rec,
		msgs:     msgs,
	}
	c.rec.Record(
		fmt.Sprintf(msgs.SetupSpectator, len(set), c.chamberList(), c.position+1),
		fmt.Sprintf(msgs.SetupParticipant, len(set), c.position+1),
	)
	return c, nil
}

// Fire checks the trigger chamber and advances the trigger by one. The
// outcome is public, so the same entry goes to both logs.
func (c *Cylinder) Fire() bool {
	hit := c.bullets[c.position]
	if hit {
		c.rec.RecordPublic(fmt.Sprintf(c.msgs.FireHit, c.position+1))
	} else {
		c.rec.RecordPublic(fmt.Sprintf(c.msgs.FireBlank, c.position+1))
	}
	c.position = (c.position + 1) % c.chambers
	return hit
}

// Inspect reports whether the given chamber is loaded. The check is
// recorded on the spectator log only; the result belongs to the
// inspecting player, not to the shared history.
func (c *Cylinder) Inspect(player string, position int) (bool, error) {
	if position < 0 || position >= c.chambers {
		return false, errors.NewRuleError(
			fmt.Sprintf(c.msgs.PositionOutOfRange, c.chambers),
			errors.ErrPositionOutOfRange,
		).WithPlayer(player)
	}
	loaded := c.bullets[position]
	word := c.msgs.ChamberEmptyWord
	if loaded {
		word = c.msgs.ChamberLoadedWord
	}
	c.rec.RecordSpectator(fmt.Sprintf(c.msgs.InspectSpectator, player, position+1, word))
	return loaded, nil
}

// AddBullet loads one more round into a uniformly chosen empty chamber.
// It reports the chamber and true on success, or false when every
// chamber is already loaded. Existing bullets are never moved.
func (c *Cylinder) AddBullet() (int, bool) {
	empty := make([]int, 0, c.chambers)
	for i := 0; i < c.chambers; i++ {
		if !c.bullets[i] {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return 0, false
	}
	chamber := empty[c.rng.Intn(len(empty))]
	c.bullets[chamber] = true
	return chamber, true
}

// Push advances the trigger by one chamber without firing. The movement
// is announced openly.
func (c *Cylinder) Push() {
	c.position = (c.position + 1) % c.chambers
	c.rec.RecordPublic(fmt.Sprintf(c.msgs.TriggerMoved, c.position+1))
}

// Chambers returns the chamber count.
func (c *Cylinder) Chambers() int { return c.chambers }

// Position returns the current trigger position, 0-based.
func (c *Cylinder) Position() int { return c.position }

// BulletCount returns how many chambers are loaded.
func (c *Cylinder) BulletCount() int { return len(c.bullets) }

// Bullets returns the loaded chamber positions in ascending order.
// Spectator-only information.
func (c *Cylinder) Bullets() []int {
	out := make([]int, 0, len(c.bullets))
	for p := range c.bullets {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Loaded reports whether the given chamber holds a round. Callers are
// expected to pass a valid position; out-of-range lookups are simply
// false. Spectator-only information.
func (c *Cylinder) Loaded(position int) bool { return c.bullets[position] }

// chamberList renders the loaded chambers 1-based for the spectator log.
func (c *Cylinder) chamberList() string {
	parts := make([]string, 0, len(c.bullets))
	for _, p := range c.Bullets() {
		parts = append(parts, fmt.Sprintf("%d", p+1))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
