package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/extract"
	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/model"
	"github.com/tomaszsb/gamedata/internal/resolve"
	"github.com/tomaszsb/gamedata/internal/runlog"
	"github.com/tomaszsb/gamedata/internal/writer"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Build all clean tables from the raw source files",
	Long: `Reads the raw spaces and dice-roll spreadsheets and produces the
normalized tables: movement, dice outcomes, space effects, dice effects,
game config, and space content.

Examples:
  # Process with paths from config.yaml
  gamedata process

  # Point at a different source tree via environment
  GAMEDATA_SOURCE_DIR=data/2026 gamedata process`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		exc, err := loadExceptions()
		if err != nil {
			return err
		}
		classifier := classify.New(exc)

		spaces, err := loader.ReadSpaces(cfg.Source.SpacesPath())
		if err != nil {
			return eris.Wrap(err, "process: read spaces")
		}
		diceRolls, err := loader.ReadDiceRolls(cfg.Source.DiceRollsPath())
		if err != nil {
			return eris.Wrap(err, "process: read dice rolls")
		}
		zap.L().Info("sources loaded",
			zap.Int("space_rows", len(spaces)),
			zap.Int("dice_rows", len(diceRolls)),
		)

		index := resolve.BuildDiceIndex(diceRolls, classifier)
		resolver := resolve.NewResolver(classifier, exc, index)

		movements := resolver.ResolveAll(spaces)
		outcomes := index.Outcomes(diceRolls, classifier)
		effects := extract.NewEffectExtractor(exc).ExtractAll(spaces)
		diceEffects := extract.DiceEffects(diceRolls)
		gameConfig := extract.GameConfig(spaces, exc)
		content := extract.Content(spaces)

		logMovementDistribution(movements)

		counts := map[string]int{
			"movement":      len(movements),
			"dice_outcomes": len(outcomes),
			"space_effects": len(effects),
			"dice_effects":  len(diceEffects),
			"game_config":   len(gameConfig),
			"space_content": len(content),
		}

		return withRunLog(ctx, "process", counts, func() error {
			g, _ := errgroup.WithContext(ctx)
			g.Go(func() error { return writer.WriteMovement(cfg.Output.MovementPath(), movements) })
			g.Go(func() error { return writer.WriteDiceOutcomes(cfg.Output.DiceOutcomesPath(), outcomes) })
			g.Go(func() error { return writer.WriteEffects(cfg.Output.SpaceEffectsPath(), effects) })
			g.Go(func() error { return writer.WriteDiceEffects(cfg.Output.DiceEffectsPath(), diceEffects) })
			g.Go(func() error { return writer.WriteGameConfig(cfg.Output.GameConfigPath(), gameConfig) })
			g.Go(func() error { return writer.WriteContent(cfg.Output.SpaceContentPath(), content) })
			if err := g.Wait(); err != nil {
				return eris.Wrap(err, "process: write tables")
			}

			zap.L().Info("tables written", zap.String("dir", cfg.Output.Dir))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

// logMovementDistribution logs how many spaces resolved to each movement type.
func logMovementDistribution(movements []model.MovementRecord) {
	dist := make(map[model.MovementType]int)
	for _, m := range movements {
		dist[m.Type]++
	}
	zap.L().Info("movement distribution",
		zap.Int("none", dist[model.MoveNone]),
		zap.Int("fixed", dist[model.MoveFixed]),
		zap.Int("choice", dist[model.MoveChoice]),
		zap.Int("dice", dist[model.MoveDice]),
	)
}

// withRunLog records the command in the run log around fn. The log is best
// effort: failures to record are logged, never fatal.
func withRunLog(ctx context.Context, command string, counts map[string]int, fn func() error) error {
	if !cfg.RunLog.Enabled {
		return fn()
	}

	log, err := runlog.Open(cfg.RunLog.Path)
	if err != nil {
		zap.L().Warn("run log unavailable", zap.Error(err))
		return fn()
	}
	defer log.Close() //nolint:errcheck

	entry, err := log.Start(ctx, command)
	if err != nil {
		zap.L().Warn("run log start failed", zap.Error(err))
		return fn()
	}

	runErr := fn()
	if runErr != nil {
		if err := log.Fail(ctx, entry.ID, runErr); err != nil {
			zap.L().Warn("run log fail-mark failed", zap.Error(err))
		}
		return runErr
	}
	if err := log.Complete(ctx, entry.ID, counts); err != nil {
		zap.L().Warn("run log complete failed", zap.Error(err))
	}
	return nil
}
