package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/sixgun/internal/agent"
	"github.com/Iron-Ham/sixgun/internal/config"
	"github.com/Iron-Ham/sixgun/internal/locale"
	"github.com/Iron-Ham/sixgun/internal/logging"
	"github.com/Iron-Ham/sixgun/internal/match"
	"github.com/Iron-Ham/sixgun/internal/random"
	"github.com/Iron-Ham/sixgun/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one duel to resolution",
	Long: `Play sets up a duel from configuration (cylinder size, personas,
decision backends) and runs it to one of the terminal outcomes: a win,
a mutual-death draw, a negotiated draw, or the turn-limit draw.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("chambers", 0, "cylinder size (overrides config)")
	playCmd.Flags().Int("max-turns", 0, "turn-limit safety bound (overrides config)")
	playCmd.Flags().Int64("seed", 0, "fixed RNG seed for a reproducible duel")
	_ = viper.BindPFlag("game.chambers", playCmd.Flags().Lookup("chambers"))
	_ = viper.BindPFlag("game.max_turns", playCmd.Flags().Lookup("max-turns"))
	_ = viper.BindPFlag("game.seed", playCmd.Flags().Lookup("seed"))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()

	seed := cfg.Game.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting duel", "seed", seed, "chambers", cfg.Game.Chambers)

	ctx := cmd.Context()
	console := render.NewConsole(os.Stdout, cfg.Render.Color, cfg.Render.SpectatorView)
	console.Banner("SIXGUN — revolver duel")

	players := make([]*match.Player, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		backend, err := agent.NewFromConfig(ctx, pc, cfg.Agent)
		if err != nil {
			return fmt.Errorf("backend for %s: %w", pc.Name, err)
		}
		if closer, ok := backend.(interface{ Close() error }); ok {
			defer closer.Close()
		}
		retrying := agent.NewRetrying(backend,
			time.Duration(cfg.Agent.TimeoutSeconds)*time.Second, cfg.Agent.Retries)
		players = append(players, match.NewPlayer(pc.Name, pc.Role, pc.Style, retrying))
	}

	ctrl, err := match.New(match.Options{
		Chambers:   cfg.Game.Chambers,
		MaxTurns:   cfg.Game.MaxTurns,
		Rand:       rng,
		Players:    players,
		Messages:   locale.Default(),
		FailPolicy: cfg.Agent.OnFailure,
		Logger:     logger,
		Presenter:  console,
	})
	if err != nil {
		return fmt.Errorf("set up match: %w", err)
	}

	for _, p := range ctrl.Players() {
		console.Event(fmt.Sprintf("%s, %s: %s", p.Name, p.Role, p.Style))
		console.Spectator(fmt.Sprintf("%s holds: %s", p.Name, p.Inventory))
	}

	outcome, err := ctrl.Run(ctx)
	if err != nil {
		console.Warning(outcome.String())
		return err
	}

	console.Header("The duel is over")
	console.Event(outcome.String())
	console.Divider("*")
	console.Event(fmt.Sprintf("turns played: %d", outcome.Turns))
	console.Event(fmt.Sprintf("chambers: %d, rounds loaded: %d", ctrl.Chambers(), ctrl.BulletCount()))

	console.Header("Full chronicle (spectator)")
	fmt.Println(ctrl.Chronicle().Status(false))
	console.Cylinder(ctrl.CylinderView())

	logger.Info("duel resolved", "outcome", outcome.String(), "turns", outcome.Turns)
	return nil
}
