package agent

import "fmt"

// TurnContext carries everything a duelist is allowed to know when
// deciding a turn. History is the restricted log; positions are 1-based
// for display.
type TurnContext struct {
	SelfName  string
	SelfRole  string
	SelfStyle string

	OpponentName string

	Rules       string
	ReplyFormat string
	History     string

	TriggerPosition int
	Chambers        int
	ContractStatus  string
	Inventory       string
}

// NegotiationContext carries what the opponent is allowed to know when
// judging a truce proposal.
type NegotiationContext struct {
	SelfName  string
	SelfRole  string
	SelfStyle string

	ProposerName string
	Proposal     string

	History         string
	TriggerPosition int
	Chambers        int
	ContractStatus  string
	Inventory       string
	AcceptKeyword   string
}

const turnPromptFormat = `You are %s, playing the role of a %s.
You play in this style: %s.
Your opponent is %s.

%s

The duel so far:
%s

Current trigger position: %d
Total chambers: %d
Contract status: %s

Items you hold:
%s

You must reply using exactly this format, with the [SECTION] markers:

%s

Reason from your role, the rules, and the items you hold, and do
everything you can to win; failing that, steer the duel toward a draw.

Talking is a core weapon in this duel. Use the [SAY] section: mislead
your opponent about what you know, project confidence you may not have,
talk them into a bargain that favors you, or rattle them. Pair what you
say with the item you use and you can swing the whole duel. Do not stay
silent without a reason.`

const negotiationPromptFormat = `You are %s, playing the role of a %s.
You play in this style: %s.
Your opponent %s has proposed a truce to end the duel in a draw.

Their exact words: %q

The duel so far:
%s

Current trigger position: %d/%d
Contract status: %s

Items you hold: %s

Weigh the state of the duel, your character, and your odds. Reply with
%q or "decline" and a short reason.`

// BuildTurnPrompt renders the per-turn prompt for the acting player.
func BuildTurnPrompt(c TurnContext) string {
	return fmt.Sprintf(turnPromptFormat,
		c.SelfName, c.SelfRole, c.SelfStyle,
		c.OpponentName,
		c.Rules,
		c.History,
		c.TriggerPosition,
		c.Chambers,
		c.ContractStatus,
		c.Inventory,
		c.ReplyFormat,
	)
}

// BuildNegotiationPrompt renders the truce-judgment prompt for the
// opposing player.
func BuildNegotiationPrompt(c NegotiationContext) string {
	return fmt.Sprintf(negotiationPromptFormat,
		c.SelfName, c.SelfRole, c.SelfStyle,
		c.ProposerName,
		c.Proposal,
		c.History,
		c.TriggerPosition, c.Chambers,
		c.ContractStatus,
		c.Inventory,
		c.AcceptKeyword,
	)
}
