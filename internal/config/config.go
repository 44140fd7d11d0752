// Package config defines the sixgun configuration: the game setup, the
// decision backends, logging, and rendering. Configuration is loaded
// through viper from a YAML file and SIXGUN_* environment variables;
// everything that used to be a module-level flag in older revolver-duel
// scripts (debug output, color toggles) lives here and is injected.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the complete sixgun configuration.
type Config struct {
	Game    GameConfig     `mapstructure:"game"`
	Agent   AgentConfig    `mapstructure:"agent"`
	Players []PlayerConfig `mapstructure:"players"`
	Logging LoggingConfig  `mapstructure:"logging"`
	Render  RenderConfig   `mapstructure:"render"`
}

// GameConfig controls the duel setup.
type GameConfig struct {
	// Chambers is the cylinder size. Minimum 2.
	Chambers int `mapstructure:"chambers"`
	// MaxTurns is the unconditional safety bound on the turn loop.
	MaxTurns int `mapstructure:"max_turns"`
	// Seed fixes the match RNG for reproducible duels. Zero means a
	// fresh random seed per match.
	Seed int64 `mapstructure:"seed"`
}

// AgentConfig controls decision-backend behavior shared by all players.
type AgentConfig struct {
	// Model is the model identifier for LLM backends.
	Model string `mapstructure:"model"`
	// TimeoutSeconds bounds each decision request. Zero disables the
	// deadline.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// Retries is how many attempts are made per decision.
	Retries int `mapstructure:"retries"`
	// OnFailure selects what happens when a backend fails after all
	// retries: "fail" terminates the match with no winner; "default"
	// substitutes the default decision (no item, silent, fire opponent).
	OnFailure string `mapstructure:"on_failure"`
}

// PlayerConfig describes one duelist.
type PlayerConfig struct {
	Name string `mapstructure:"name"`
	// Role and Style are persona text passed verbatim to the backend;
	// the engine never interprets them.
	Role  string `mapstructure:"role"`
	Style string `mapstructure:"style"`
	// Backend selects the decision backend: "gemini" or "scripted".
	Backend string `mapstructure:"backend"`
	// Script is the response list for the scripted backend.
	Script []string `mapstructure:"script"`
}

// LoggingConfig controls diagnostic (slog) logging, not the in-game
// chronicle.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// Dir receives the JSON debug log; empty logs to stderr.
	Dir string `mapstructure:"dir"`
}

// RenderConfig controls console presentation.
type RenderConfig struct {
	// Color enables lipgloss styling.
	Color bool `mapstructure:"color"`
	// SpectatorView prints the ground-truth cylinder diagram each turn.
	SpectatorView bool `mapstructure:"spectator_view"`
}

// FailPolicyFail and FailPolicyDefault are the valid OnFailure values.
const (
	FailPolicyFail    = "fail"
	FailPolicyDefault = "default"
)

// Default returns the built-in configuration: a six-chamber duel
// between two Gemini-backed personas.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Chambers: 6,
			MaxTurns: 30,
			Seed:     0,
		},
		Agent: AgentConfig{
			Model:          "gemini-2.5-pro",
			TimeoutSeconds: 120,
			Retries:        2,
			OnFailure:      FailPolicyFail,
		},
		Players: []PlayerConfig{
			{
				Name:    "Bill",
				Role:    "gambler",
				Style:   "aggressive and bold, loves risk, applies relentless pressure and lies well enough to cloud an opponent's judgment",
				Backend: "gemini",
			},
			{
				Name:    "Lee",
				Role:    "detective",
				Style:   "calm and analytical, reasons carefully, and picks apart an opponent's lies and schemes through logic",
				Backend: "gemini",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
		Render: RenderConfig{
			Color:         true,
			SpectatorView: true,
		},
	}
}

// SetDefaults registers the default values with viper so they apply
// even without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("game.chambers", defaults.Game.Chambers)
	viper.SetDefault("game.max_turns", defaults.Game.MaxTurns)
	viper.SetDefault("game.seed", defaults.Game.Seed)

	viper.SetDefault("agent.model", defaults.Agent.Model)
	viper.SetDefault("agent.timeout_seconds", defaults.Agent.TimeoutSeconds)
	viper.SetDefault("agent.retries", defaults.Agent.Retries)
	viper.SetDefault("agent.on_failure", defaults.Agent.OnFailure)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("render.color", defaults.Render.Color)
	viper.SetDefault("render.spectator_view", defaults.Render.SpectatorView)
}

// ConfigDir returns the directory searched for the config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sixgun")
}

// Load unmarshals and validates the configuration viper has assembled.
// Player descriptors have no useful defaults through viper, so when the
// file defines none the built-in pair is used.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Players) == 0 {
		cfg.Players = Default().Players
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
