package match

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/sixgun/internal/agent"
	"github.com/Iron-Ham/sixgun/internal/config"
	"github.com/Iron-Ham/sixgun/internal/logging"
)

// negotiate runs the truce sub-protocol: the proposal goes on both logs,
// the opponent's agent is queried synchronously with its own context,
// and the full response goes on both logs before classification. The
// turn does not resume until the opponent has answered.
//
// Acceptance is case-insensitive containment of the accept keyword;
// anything else is a decline. Under the "default" fail policy a backend
// failure counts as a decline, since an unreachable opponent cannot
// consent to a draw.
func (c *Controller) negotiate(ctx context.Context, proposer, opp *Player, message string, log *logging.Logger) (bool, error) {
	proposal := fmt.Sprintf(c.msgs.ProposesTruce, proposer.Name, message)
	c.chron.RecordPublic(proposal)
	c.pres.Event(proposal)

	prompt := agent.BuildNegotiationPrompt(agent.NegotiationContext{
		SelfName:        opp.Name,
		SelfRole:        opp.Role,
		SelfStyle:       opp.Style,
		ProposerName:    proposer.Name,
		Proposal:        message,
		History:         c.chron.Status(true),
		TriggerPosition: c.cyl.Position() + 1,
		Chambers:        c.cyl.Chambers(),
		ContractStatus:  c.contractStatus(),
		Inventory:       opp.Inventory.String(),
		AcceptKeyword:   c.msgs.AcceptKeyword,
	})

	c.pres.Event(fmt.Sprintf("%s is weighing the truce...", opp.Name))
	start := time.Now()
	response, err := opp.Agent.Respond(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("negotiation response failed", "error", err.Error())
		if c.failPolicy == config.FailPolicyDefault {
			c.pres.Warning(fmt.Sprintf("%s's backend failed; the truce is treated as declined", opp.Name))
			return false, nil
		}
		return false, err
	}

	c.chron.RecordPublic(fmt.Sprintf(c.msgs.RespondsTruce, opp.Name, response))
	c.pres.AgentResponse(opp.Name, response, elapsed)

	return agent.IsAcceptance(response, c.msgs.AcceptKeyword), nil
}
