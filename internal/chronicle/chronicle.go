// Package chronicle implements the duel's two event histories: a
// spectator log that records ground truth (bullet placements, inspected
// chamber contents, exact item names) and a participant log that redacts
// anything a duelist could not have observed. Both logs are append-only
// and never reordered.
package chronicle

import "strings"

// Chronicle holds the spectator and participant histories for one match.
// It is not safe for concurrent use; the turn controller is the single
// writer.
type Chronicle struct {
	spectator   []string
	participant []string
	noHistory   string
}

// New creates an empty Chronicle. The noHistory placeholder is returned
// by Status when a log has no entries yet, so agent prompts never embed
// an empty block.
func New(noHistory string) *Chronicle {
	return &Chronicle{noHistory: noHistory}
}

// Record appends full to the spectator log and restricted to the
// participant log. The two texts may differ; restricted must not leak
// bullet positions or exact item identities.
func (c *Chronicle) Record(full, restricted string) {
	c.spectator = append(c.spectator, full)
	c.participant = append(c.participant, restricted)
}

// RecordPublic appends the identical text to both logs. Used for fire
// outcomes, communication, and modifier activations, all of which are
// openly observable.
func (c *Chronicle) RecordPublic(text string) {
	c.Record(text, text)
}

// RecordSpectator appends to the spectator log only. Used for inspection
// results, which are told privately to the inspecting player.
func (c *Chronicle) RecordSpectator(text string) {
	c.spectator = append(c.spectator, text)
}

// Status returns the joined history as one block of text, suitable for
// inclusion in an agent's context. When forParticipant is true the
// redacted log is used.
func (c *Chronicle) Status(forParticipant bool) string {
	entries := c.spectator
	if forParticipant {
		entries = c.participant
	}
	if len(entries) == 0 {
		return c.noHistory
	}
	return strings.Join(entries, "\n")
}

// SpectatorLen returns the number of spectator entries.
func (c *Chronicle) SpectatorLen() int { return len(c.spectator) }

// ParticipantLen returns the number of participant entries.
func (c *Chronicle) ParticipantLen() int { return len(c.participant) }
