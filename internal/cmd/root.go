package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/sixgun/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sixgun",
	Short: "A revolver duel between two language-model duelists",
	Long: `Sixgun stages a turn-based revolver duel between two agents with
hidden information: a cylinder loaded at random, five one-shot items,
and an in-band truce protocol. Spectators see the ground truth; the
duelists see only what the fiction of the game would let them see.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/sixgun/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// API keys may live in a .env next to the binary; a missing file is fine.
	_ = godotenv.Load()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIXGUN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SIXGUN_GAME_CHAMBERS for game.chambers
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
