// Package match drives the duel: the per-turn sequence, the negotiation
// sub-protocol, and the termination policy. The controller is the single
// writer of all game state; execution is strictly sequential, with
// exactly one agent decision in flight at any time.
package match

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Iron-Ham/sixgun/internal/agent"
	"github.com/Iron-Ham/sixgun/internal/chronicle"
	"github.com/Iron-Ham/sixgun/internal/config"
	"github.com/Iron-Ham/sixgun/internal/errors"
	"github.com/Iron-Ham/sixgun/internal/item"
	"github.com/Iron-Ham/sixgun/internal/locale"
	"github.com/Iron-Ham/sixgun/internal/logging"
	"github.com/Iron-Ham/sixgun/internal/modifier"
	"github.com/Iron-Ham/sixgun/internal/revolver"
)

// LoadSpec fixes the cylinder load instead of rolling a random one.
type LoadSpec struct {
	Bullets  []int
	Position int
}

// Options configures a Controller.
type Options struct {
	Chambers int
	MaxTurns int
	// Load, when non-nil, places the bullets and trigger explicitly.
	Load *LoadSpec
	// Rand is the single source of randomness for the match: load,
	// trigger position, item deal, starting player.
	Rand *rand.Rand
	// Players must hold exactly two living players with agents attached.
	// Inventories are dealt by New.
	Players []*Player
	// Hands, when non-nil, fixes each player's dealt items in roster
	// order instead of drawing from the shuffled pool.
	Hands    [][]item.Kind
	Messages locale.Table
	// FailPolicy is config.FailPolicyFail or config.FailPolicyDefault.
	FailPolicy string

	Logger    *logging.Logger
	Presenter Presenter
}

// Controller owns the entire game state for one duel and runs the turn
// loop. Not safe for concurrent use; nothing about a duel is concurrent.
type Controller struct {
	cyl   *revolver.Cylinder
	mods  *modifier.Engine
	items *item.System
	chron *chronicle.Chronicle

	players []*Player
	active  int

	msgs        locale.Table
	rules       string
	replyFormat string
	failPolicy  string
	maxTurns    int

	log  *logging.Logger
	pres Presenter
}

// New sets up a duel: loads the cylinder, deals items, and picks the
// starting player, recording the setup in the chronicle.
func New(opts Options) (*Controller, error) {
	if len(opts.Players) != 2 {
		return nil, errors.NewRuleError(fmt.Sprintf("a duel needs exactly 2 players, got %d", len(opts.Players)), nil)
	}
	if opts.Rand == nil {
		return nil, errors.New("match: Rand is required")
	}
	if opts.MaxTurns < 1 {
		return nil, errors.NewRuleError(fmt.Sprintf("max turns must be at least 1, got %d", opts.MaxTurns), nil)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Presenter == nil {
		opts.Presenter = NopPresenter{}
	}
	if opts.FailPolicy == "" {
		opts.FailPolicy = config.FailPolicyFail
	}

	chron := chronicle.New(opts.Messages.NoHistory)
	var cyl *revolver.Cylinder
	var err error
	if opts.Load != nil {
		cyl, err = revolver.NewLoaded(opts.Rand, chron, opts.Messages, opts.Chambers, opts.Load.Bullets, opts.Load.Position)
	} else {
		cyl, err = revolver.New(opts.Rand, chron, opts.Messages, opts.Chambers)
	}
	if err != nil {
		return nil, err
	}

	mods := modifier.New()
	c := &Controller{
		cyl:         cyl,
		mods:        mods,
		items:       item.NewSystem(cyl, mods, chron, opts.Messages),
		chron:       chron,
		players:     opts.Players,
		active:      opts.Rand.Intn(len(opts.Players)),
		msgs:        opts.Messages,
		rules:       fmt.Sprintf(opts.Messages.RulesText, opts.Chambers, opts.Chambers/2, item.PerPlayerCount(opts.Chambers)),
		replyFormat: opts.Messages.ReplyFormat,
		failPolicy:  opts.FailPolicy,
		maxTurns:    opts.MaxTurns,
		log:         opts.Logger,
		pres:        opts.Presenter,
	}

	if opts.Hands != nil {
		if len(opts.Hands) != len(opts.Players) {
			return nil, errors.NewRuleError(fmt.Sprintf("got %d hands for %d players", len(opts.Hands), len(opts.Players)), nil)
		}
		for i, hand := range opts.Hands {
			c.players[i].Inventory = item.NewInventory(hand...)
		}
	} else {
		for i, hand := range item.Deal(opts.Rand, opts.Chambers, len(opts.Players)) {
			c.players[i].Inventory = hand
		}
	}

	c.log.Info("match set up",
		"chambers", opts.Chambers,
		"bullets", cyl.BulletCount(),
		"first", c.players[c.active].Name,
	)
	return c, nil
}

// Run plays the duel to resolution. The returned error is non-nil only
// for OutcomeAborted, when an agent backend failed under the "fail"
// policy; the four in-game resolutions return a nil error. The max-turn
// bound is enforced unconditionally, whatever the agents do.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	c.pres.Cylinder(c.CylinderView())

	for turn := 1; turn <= c.maxTurns; turn++ {
		outcome, done, err := c.playTurn(ctx, turn)
		if err != nil {
			return outcome, err
		}
		if done {
			return outcome, nil
		}
		c.active = (c.active + 1) % len(c.players)
	}

	return Outcome{Kind: OutcomeDrawMaxTurns, Turns: c.maxTurns}, nil
}

// playTurn runs one full turn for the active player. done reports that
// the match resolved this turn.
func (c *Controller) playTurn(ctx context.Context, turn int) (outcome Outcome, done bool, err error) {
	actor := c.players[c.active]
	opp := c.players[(c.active+1)%len(c.players)]
	log := c.log.WithTurn(turn).WithPlayer(actor.Name)

	c.pres.Header(fmt.Sprintf("Turn %d — %s", turn, actor.Name))
	c.pres.Event(fmt.Sprintf("trigger at chamber %d/%d, contract %s",
		c.cyl.Position()+1, c.cyl.Chambers(), c.contractStatus()))
	c.pres.Spectator(fmt.Sprintf("%s holds: %s", actor.Name, actor.Inventory))
	c.pres.Cylinder(c.CylinderView())

	// 1. Decision.
	decision, err := c.decide(ctx, actor, opp, log)
	if err != nil {
		return Outcome{Kind: OutcomeAborted, Turns: turn}, false, err
	}

	// 2. Item activation.
	if decision.UseItem {
		res, useErr := c.items.Use(actor.Name, actor.Inventory, decision.Item, decision.ItemParam)
		if useErr != nil {
			// Recoverable: nothing consumed, no state change, turn continues.
			c.pres.Warning(fmt.Sprintf("%s: %s", actor.Name, res.Message))
			log.Warn("item activation rejected", "item", decision.Item, "reason", useErr.Error())
		} else {
			c.pres.Event(fmt.Sprintf("%s uses %s: %s", actor.Name, res.Kind, res.Message))
			log.Info("item used", "item", string(res.Kind))
		}
	}

	// 3. Communication; an accepted truce ends the match with no shot.
	switch decision.Comm {
	case agent.CommNegotiate:
		accepted, negErr := c.negotiate(ctx, actor, opp, decision.Message, log)
		if negErr != nil {
			return Outcome{Kind: OutcomeAborted, Turns: turn}, false, negErr
		}
		if accepted {
			c.pres.Header("Truce accepted — the duel ends in a draw")
			return Outcome{Kind: OutcomeDrawNegotiated, Turns: turn}, true, nil
		}
		c.pres.Warning(fmt.Sprintf("%s declines the truce; the duel continues", opp.Name))
	case agent.CommTalk:
		c.chron.RecordPublic(fmt.Sprintf(c.msgs.Says, actor.Name, decision.Message))
		c.pres.Event(fmt.Sprintf(c.msgs.Says, actor.Name, decision.Message))
	default:
		c.chron.RecordPublic(fmt.Sprintf(c.msgs.KeptSilent, actor.Name))
		c.pres.Event(fmt.Sprintf(c.msgs.KeptSilent, actor.Name))
	}

	// 4. Reverse rule on the declared target.
	target := decision.Target
	if c.mods.ConsumeReverse(actor.Name) {
		target = target.Flip()
		c.pres.Warning(fmt.Sprintf(c.msgs.ReverseFlipped, actor.Name, c.targetName(actor, opp, target)))
		log.Info("reverse consumed", "target", target.String())
	}

	c.pres.Event(fmt.Sprintf("%s fires at %s", actor.Name, c.targetName(actor, opp, target)))

	// 5. Fire, with the contract rule applied around the result. The
	// contract must be read before the tick: a hit on the expiring shot
	// still takes both duelists.
	contractHeld := c.mods.ContractActive()
	hit := c.cyl.Fire()
	if c.mods.TickContract() {
		c.chron.RecordPublic(c.msgs.ContractExpired)
	}

	if !hit {
		log.Info("blank", "position", c.cyl.Position())
		return Outcome{}, false, nil
	}

	// 6. A hit resolves the match.
	if contractHeld {
		actor.Alive = false
		opp.Alive = false
		c.pres.Header("The contract claims both duelists")
		log.Info("contract hit, mutual death")
		return Outcome{Kind: OutcomeDrawMutualDeath, Turns: turn}, true, nil
	}

	victim, winner := opp, actor
	if target == agent.TargetSelf {
		victim, winner = actor, opp
	}
	victim.Alive = false
	c.pres.Header(fmt.Sprintf("%s is hit — %s wins", victim.Name, winner.Name))
	log.Info("hit", "victim", victim.Name)
	return Outcome{Kind: OutcomeWin, Winner: winner.Name, Turns: turn}, true, nil
}

// decide queries the active player's agent and parses the response.
// Backend failure resolves per the configured policy: "fail" aborts the
// match; "default" substitutes the default decision.
func (c *Controller) decide(ctx context.Context, actor, opp *Player, log *logging.Logger) (agent.Decision, error) {
	prompt := agent.BuildTurnPrompt(agent.TurnContext{
		SelfName:        actor.Name,
		SelfRole:        actor.Role,
		SelfStyle:       actor.Style,
		OpponentName:    opp.Name,
		Rules:           c.rules,
		ReplyFormat:     c.replyFormat,
		History:         c.chron.Status(true),
		TriggerPosition: c.cyl.Position() + 1,
		Chambers:        c.cyl.Chambers(),
		ContractStatus:  c.contractStatus(),
		Inventory:       actor.Inventory.String(),
	})

	c.pres.Event(fmt.Sprintf("%s is thinking...", actor.Name))
	start := time.Now()
	raw, err := actor.Agent.Respond(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("agent failed", "error", err.Error(), "elapsed", elapsed.String())
		if c.failPolicy == config.FailPolicyDefault {
			c.pres.Warning(fmt.Sprintf("%s's backend failed; falling back to the default decision", actor.Name))
			return agent.Decision{}, nil
		}
		return agent.Decision{}, err
	}

	c.pres.AgentResponse(actor.Name, raw, elapsed)
	log.Debug("agent responded", "elapsed", elapsed.String(), "bytes", len(raw))
	return agent.ParseDecision(raw), nil
}

// contractStatus renders the contract state for prompts and display.
func (c *Controller) contractStatus() string {
	if c.mods.ContractActive() {
		return fmt.Sprintf(c.msgs.ContractStatusOn, c.mods.ContractShotsLeft())
	}
	return c.msgs.ContractStatusOff
}

// targetName resolves a fire target to a player name.
func (c *Controller) targetName(actor, opp *Player, t agent.Target) string {
	if t == agent.TargetSelf {
		return actor.Name
	}
	return opp.Name
}

// CylinderView returns the spectator snapshot of the revolver.
func (c *Controller) CylinderView() CylinderView {
	view := CylinderView{
		Chambers: c.cyl.Chambers(),
		Position: c.cyl.Position(),
		Loaded:   make([]bool, c.cyl.Chambers()),
	}
	for i := 0; i < view.Chambers; i++ {
		view.Loaded[i] = c.cyl.Loaded(i)
	}
	return view
}

// Chronicle exposes the match histories for final rendering.
func (c *Controller) Chronicle() *chronicle.Chronicle { return c.chron }

// Players returns the duelists in roster order.
func (c *Controller) Players() []*Player { return c.players }

// BulletCount returns how many chambers are loaded right now.
func (c *Controller) BulletCount() int { return c.cyl.BulletCount() }

// Chambers returns the cylinder size.
func (c *Controller) Chambers() int { return c.cyl.Chambers() }
