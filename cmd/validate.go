package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tomaszsb/gamedata/internal/audit"
	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the movement and dice-outcomes tables for integrity problems",
	Long: `Validates the produced movement table: destinations must be real
space identifiers, dice-type rows must have dice outcomes, and fixed or
choice rows must name at least one destination. Exits non-zero when any
error-level issue is found.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		movements, err := loader.ReadMovementTable(cfg.Output.MovementPath())
		if err != nil {
			return eris.Wrap(err, "validate: read movement table")
		}
		outcomes, err := loader.ReadDiceOutcomeTable(cfg.Output.DiceOutcomesPath())
		if err != nil {
			return eris.Wrap(err, "validate: read dice outcomes")
		}

		exc, err := loadExceptions()
		if err != nil {
			return err
		}

		issues := audit.NewValidator(classify.New(exc)).Validate(movements, outcomes)
		fmt.Fprint(os.Stdout, audit.FormatReport(issues))

		if audit.HasErrors(issues) {
			return eris.New("validate: errors found")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
