package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/migrate"
	"github.com/tomaszsb/gamedata/internal/writer"
)

var restoreBackup string

var migrateRestoreCmd = &cobra.Command{
	Use:   "restore-costs",
	Short: "Backfill financial columns onto the cards table from a backup",
	Long: `Restores the loan_amount, loan_rate, investment_amount, and
work_cost columns onto the cards table, matching rows by card_id against a
backup export. The cards table is updated in place.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cardsPath := cfg.Output.CardsPath()
		cards, err := loader.ReadTable(cardsPath)
		if err != nil {
			return err
		}
		backup, err := loader.ReadTable(restoreBackup)
		if err != nil {
			return err
		}

		result, err := migrate.RestoreCardColumns(cards, backup)
		if err != nil {
			return err
		}
		zap.L().Info("card columns restored",
			zap.Int("matched", result.Matched),
			zap.Int("unmatched", result.Unmatched),
		)

		if err := writer.WriteTable(cardsPath, cards.Header, cards.Serialize()); err != nil {
			return eris.Wrap(err, "migrate: rewrite cards table")
		}
		return nil
	},
}

func init() {
	migrateRestoreCmd.Flags().StringVar(&restoreBackup, "backup", "", "path to the backup cards CSV (required)")
	_ = migrateRestoreCmd.MarkFlagRequired("backup")
	migrateCmd.AddCommand(migrateRestoreCmd)
}
