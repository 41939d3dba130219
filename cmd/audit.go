package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tomaszsb/gamedata/internal/audit"
	"github.com/tomaszsb/gamedata/internal/loader"
)

var (
	auditOld string
	auditNew string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Compare two snapshots of the space-effects table",
	Long: `Diffs card-draw counts per space and visit between an old and a new
effects snapshot, and flags L-card draws still on a manual trigger in the
new one. Useful after re-running process or applying migrations.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		oldEffects, err := loader.ReadEffectsTable(auditOld)
		if err != nil {
			return eris.Wrap(err, "audit: read old snapshot")
		}
		newEffects, err := loader.ReadEffectsTable(auditNew)
		if err != nil {
			return eris.Wrap(err, "audit: read new snapshot")
		}

		result := audit.EffectsDiff(oldEffects, newEffects)
		fmt.Fprint(os.Stdout, audit.FormatEffectsDiff(result))
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditOld, "old", "", "path to the old effects snapshot (required)")
	auditCmd.Flags().StringVar(&auditNew, "new", "", "path to the new effects snapshot (required)")
	_ = auditCmd.MarkFlagRequired("old")
	_ = auditCmd.MarkFlagRequired("new")
	rootCmd.AddCommand(auditCmd)
}
