package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/extract"
	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/model"
	"github.com/tomaszsb/gamedata/internal/writer"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Convert the raw card spreadsheet to the expanded cards table",
	Long: `Reads the card source (xlsx or csv) and writes the cards table with
expanded mechanics columns: durations, financial amounts, draw and discard
counts, targeting, and restrictions.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		table, err := loader.ReadCardSource(cfg.Source.CardsPath())
		if err != nil {
			return eris.Wrap(err, "cards: read source")
		}

		records := extract.ConvertCards(table)

		byType := make(map[model.CardType]int)
		complex := 0
		for _, card := range records {
			byType[card.Type]++
			if extract.HasComplexMechanics(card) {
				complex++
			}
		}
		zap.L().Info("cards converted",
			zap.Int("total", len(records)),
			zap.Int("complex", complex),
			zap.Int("w", byType[model.CardW]),
			zap.Int("b", byType[model.CardB]),
			zap.Int("i", byType[model.CardI]),
			zap.Int("l", byType[model.CardL]),
			zap.Int("e", byType[model.CardE]),
		)

		counts := map[string]int{"cards": len(records)}
		return withRunLog(ctx, "cards", counts, func() error {
			if err := writer.WriteCards(cfg.Output.CardsPath(), records); err != nil {
				return eris.Wrap(err, "cards: write table")
			}
			zap.L().Info("cards table written", zap.String("path", cfg.Output.CardsPath()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cardsCmd)
}
