package migrate

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
)

// restoredColumns are backfilled from the backup, inserted after
// phase_restriction in the header.
var restoredColumns = []string{"loan_amount", "loan_rate", "investment_amount", "work_cost"}

// RestoreResult summarizes a RestoreCardColumns run.
type RestoreResult struct {
	Matched   int
	Unmatched int
}

// RestoreCardColumns backfills the financial columns onto the cards table
// from a backup table, matching rows by card_id. Cards absent from the
// backup get empty values. The cards table is modified in place.
func RestoreCardColumns(cards, backup *loader.Table) (RestoreResult, error) {
	var result RestoreResult

	insert := -1
	for i, col := range cards.Header {
		if col == "phase_restriction" {
			insert = i + 1
			break
		}
	}
	if insert < 0 {
		return result, eris.New("migrate: cards table has no phase_restriction column")
	}

	lookup := make(map[string]loader.Row, len(backup.Rows))
	for _, row := range backup.Rows {
		if id := row.Get("card_id"); id != "" {
			lookup[id] = row
		}
	}

	header := make([]string, 0, len(cards.Header)+len(restoredColumns))
	header = append(header, cards.Header[:insert]...)
	header = append(header, restoredColumns...)
	header = append(header, cards.Header[insert:]...)
	cards.Header = header

	for _, row := range cards.Rows {
		id := row.Get("card_id")
		src, ok := lookup[id]
		if ok {
			result.Matched++
		} else {
			result.Unmatched++
			zap.L().Warn("card not found in backup", zap.String("card_id", id))
		}
		for _, col := range restoredColumns {
			if ok {
				row[col] = src.Get(col)
			} else {
				row[col] = ""
			}
		}
	}
	return result, nil
}
