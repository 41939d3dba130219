package loader

import (
	"fmt"
	"strings"

	"github.com/tomaszsb/gamedata/internal/model"
)

// cardColumns maps source column names to card-type letters.
var cardColumns = map[string]model.CardType{
	"w_card": model.CardW,
	"b_card": model.CardB,
	"i_card": model.CardI,
	"l_card": model.CardL,
	"e_card": model.CardE,
}

// ReadSpaces loads the source space table.
func ReadSpaces(path string) ([]model.SpaceRow, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, path, "space_name", "visit_type"); err != nil {
		return nil, err
	}

	rows := make([]model.SpaceRow, 0, len(table.Rows))
	for _, r := range table.Rows {
		if r.Get("space_name") == "" {
			continue
		}

		row := model.SpaceRow{
			Name:             r.Get("space_name"),
			Visit:            model.VisitType(r.Get("visit_type")),
			Phase:            r.Get("phase"),
			Path:             r.Get("path"),
			Time:             r.Get("Time"),
			Fee:              r.Get("Fee"),
			Event:            r.Get("Event"),
			Action:           r.Get("Action"),
			Outcome:          r.Get("Outcome"),
			Negotiate:        r.Get("Negotiate"),
			RequiresDiceRoll: r.Get("requires_dice_roll"),
			Cards:            make(map[model.CardType]string, len(cardColumns)),
		}
		for i := 0; i < model.MaxDestinations; i++ {
			row.Destinations[i] = r.Get(fmt.Sprintf("space_%d", i+1))
		}
		for col, ct := range cardColumns {
			if v := r.Get(col); v != "" {
				row.Cards[ct] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadDiceRolls loads the source dice-roll table. The die-face columns are
// named "1" through "6" in the source header.
func ReadDiceRolls(path string) ([]model.DiceRollRow, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, path, "space_name", "die_roll", "visit_type"); err != nil {
		return nil, err
	}

	rows := make([]model.DiceRollRow, 0, len(table.Rows))
	for _, r := range table.Rows {
		if r.Get("space_name") == "" {
			continue
		}

		row := model.DiceRollRow{
			Space:    r.Get("space_name"),
			Category: r.Get("die_roll"),
			Visit:    model.VisitType(r.Get("visit_type")),
		}
		for i := 0; i < 6; i++ {
			row.Faces[i] = r.Get(fmt.Sprintf("%d", i+1))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadCardSource loads a card export, dispatching on file extension: .xlsx
// goes through the spreadsheet reader, everything else is treated as CSV.
func ReadCardSource(path string) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ReadTableXLSX(path, 0)
	}
	return ReadTable(path)
}
