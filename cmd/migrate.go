package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/migrate"
	"github.com/tomaszsb/gamedata/internal/writer"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "In-place migrations over previously produced tables",
	Long:  "Commands that rewrite an existing clean table: structured dice conditions, card-draw trigger repairs, and financial-column restoration.",
}

var migrateDiceCondCmd = &cobra.Command{
	Use:   "dice-conditions",
	Short: "Move dice conditions out of prose into the condition column",
	Long: `Rewrites L-card draw effects whose value or description reads
"... if you roll a N" into condition=dice_roll_N with a literal count.
The space-effects table is updated in place.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfg.Output.SpaceEffectsPath()
		table, err := loader.ReadTable(path)
		if err != nil {
			return err
		}

		migrated := migrate.DiceConditions(table)
		zap.L().Info("dice conditions migrated", zap.Int("rows", migrated))
		if migrated == 0 {
			return nil
		}

		if err := writer.WriteTable(path, table.Header, table.Serialize()); err != nil {
			return eris.Wrap(err, "migrate: rewrite effects table")
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateDiceCondCmd)
	rootCmd.AddCommand(migrateCmd)
}
