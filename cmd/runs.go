package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tomaszsb/gamedata/internal/runlog"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded pipeline runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if !cfg.RunLog.Enabled {
			return eris.New("runs: run log is disabled in config")
		}
		log, err := runlog.Open(cfg.RunLog.Path)
		if err != nil {
			return err
		}
		defer log.Close() //nolint:errcheck

		entries, err := log.List(ctx, runsLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "No runs recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMMAND\tSTATUS\tSTARTED\tCOUNTS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Command, e.Status,
				e.StartedAt.Format("2006-01-02 15:04:05"),
				formatRunCounts(e),
			)
		}
		return w.Flush()
	},
}

func formatRunCounts(e runlog.Entry) string {
	if e.Status == runlog.StatusFailed {
		return "error: " + e.Error
	}
	if len(e.Counts) == 0 {
		return "-"
	}
	names := make([]string, 0, len(e.Counts))
	for name := range e.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, e.Counts[name]))
	}
	return strings.Join(parts, " ")
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
	rootCmd.AddCommand(runsCmd)
}
