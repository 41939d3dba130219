package extract

import (
	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

// GameConfig derives the per-space config table, deduplicating by space
// name (the first row for a space wins). The starting space is the one on
// the configured start phase and path; the ending space is the end sentinel.
func GameConfig(rows []model.SpaceRow, exc classify.Exceptions) []model.GameConfigRecord {
	seen := make(map[string]bool, len(rows))
	var records []model.GameConfigRecord

	for _, row := range rows {
		if seen[row.Name] {
			continue
		}
		seen[row.Name] = true

		requires := row.RequiresDiceRoll
		if requires == "" {
			requires = "Yes"
		}

		records = append(records, model.GameConfigRecord{
			Space:            row.Name,
			Phase:            row.Phase,
			PathType:         row.Path,
			IsStarting:       row.Phase == exc.StartPhase && row.Path == exc.StartPath,
			IsEnding:         row.Name == exc.EndSpace,
			MinPlayers:       1,
			MaxPlayers:       4,
			RequiresDiceRoll: requires,
		})
	}
	return records
}

// Content carries the narrative cells through to the space-content table.
func Content(rows []model.SpaceRow) []model.SpaceContentRecord {
	records := make([]model.SpaceContentRecord, 0, len(rows))
	for _, row := range rows {
		canNegotiate := row.Negotiate
		if canNegotiate == "" {
			canNegotiate = "No"
		}
		records = append(records, model.SpaceContentRecord{
			Space:        row.Name,
			Visit:        row.Visit,
			Title:        row.Event,
			Story:        row.Event,
			ActionText:   row.Action,
			OutcomeText:  row.Outcome,
			CanNegotiate: canNegotiate,
		})
	}
	return records
}
