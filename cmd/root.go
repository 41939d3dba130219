package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gamedata",
	Short: "Board-game data cleaning pipeline",
	Long:  "Restructures raw space, dice-roll, and card spreadsheets into normalized per-concern CSV tables, with validation and migration tooling.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadExceptions returns the configured exception table, falling back to the
// built-in defaults when no file is configured.
func loadExceptions() (classify.Exceptions, error) {
	if cfg.Classifier.ExceptionsFile == "" {
		return classify.DefaultExceptions(), nil
	}
	return classify.LoadExceptions(cfg.Classifier.ExceptionsFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
