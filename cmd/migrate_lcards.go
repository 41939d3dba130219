package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/migrate"
	"github.com/tomaszsb/gamedata/internal/writer"
)

var migrateLCardsCmd = &cobra.Command{
	Use:   "fix-l-cards",
	Short: "Repair card-draw defects in the space-effects table",
	Long: `Fixes the LEND-SCOPE-CHECK first-visit draw that was recorded with
the wrong card type, and normalizes the trigger of every L-card draw to
auto. The space-effects table is updated in place.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfg.Output.SpaceEffectsPath()
		table, err := loader.ReadTable(path)
		if err != nil {
			return err
		}

		fixes := migrate.FixLCards(table)
		zap.L().Info("l-card fixes applied",
			zap.Int("type_bug_fixed", fixes.TypeBugFixed),
			zap.Int("manual_to_auto", fixes.ManualToAuto),
			zap.Int("empty_to_auto", fixes.EmptyToAuto),
			zap.Int("already_auto", fixes.AlreadyAuto),
		)

		if fixes.TypeBugFixed+fixes.ManualToAuto+fixes.EmptyToAuto == 0 {
			return nil
		}
		if err := writer.WriteTable(path, table.Header, table.Serialize()); err != nil {
			return eris.Wrap(err, "migrate: rewrite effects table")
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateLCardsCmd)
}
