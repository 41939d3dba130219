package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomaszsb/gamedata/internal/loader"
)

func effectsTable(rows ...loader.Row) *loader.Table {
	return &loader.Table{
		Header: []string{
			"space_name", "visit_type", "effect_type", "effect_action", "effect_value",
			"condition", "description", "trigger_type",
		},
		Rows: rows,
	}
}

func TestDiceConditionsFromValue(t *testing.T) {
	table := effectsTable(loader.Row{
		"space_name": "CON-ISSUES", "visit_type": "First",
		"effect_type": "cards", "effect_action": "draw_l",
		"effect_value": "Draw 1 if you roll a 2", "condition": "", "trigger_type": "auto",
	})

	assert.Equal(t, 1, DiceConditions(table))
	row := table.Rows[0]
	assert.Equal(t, "dice_roll_2", row.Get("condition"))
	assert.Equal(t, "1", row.Get("effect_value"))
	assert.Equal(t, "Draw L card on roll of 2", row.Get("description"))
}

func TestDiceConditionsFromDescription(t *testing.T) {
	table := effectsTable(loader.Row{
		"space_name": "REG-DOB-AUDIT", "visit_type": "Subsequent",
		"effect_type": "cards", "effect_action": "draw_l",
		"effect_value": "1", "description": "Draw L if you roll a 6",
	})

	assert.Equal(t, 1, DiceConditions(table))
	assert.Equal(t, "dice_roll_6", table.Rows[0].Get("condition"))
}

func TestDiceConditionsSkipsOtherActions(t *testing.T) {
	table := effectsTable(
		loader.Row{
			"effect_type": "cards", "effect_action": "draw_w",
			"effect_value": "Draw 1 if you roll a 3",
		},
		loader.Row{
			"effect_type": "time", "effect_action": "add",
			"effect_value": "if you roll a 4",
		},
		loader.Row{
			"effect_type": "cards", "effect_action": "draw_l",
			"effect_value": "2",
		},
	)

	assert.Equal(t, 0, DiceConditions(table))
	assert.Equal(t, "", table.Rows[0].Get("condition"))
}

func TestFixLCardsTypeBug(t *testing.T) {
	table := effectsTable(loader.Row{
		"space_name": "LEND-SCOPE-CHECK", "visit_type": "First",
		"effect_type": "cards", "effect_action": "draw_l",
		"effect_value": "1", "condition": "always",
		"description": "Draw 1 L card", "trigger_type": "auto",
	})

	fixes := FixLCards(table)
	assert.Equal(t, 1, fixes.TypeBugFixed)
	row := table.Rows[0]
	assert.Equal(t, "draw_e", row.Get("effect_action"))
	assert.Equal(t, "Draw 1 E card", row.Get("description"))
}

func TestFixLCardsTypeBugSkipsConditional(t *testing.T) {
	// A dice-conditioned L draw on the same space is genuine and stays L.
	table := effectsTable(loader.Row{
		"space_name": "LEND-SCOPE-CHECK", "visit_type": "First",
		"effect_type": "cards", "effect_action": "draw_l",
		"condition": "dice_roll_1", "trigger_type": "auto",
	})

	fixes := FixLCards(table)
	assert.Equal(t, 0, fixes.TypeBugFixed)
	assert.Equal(t, "draw_l", table.Rows[0].Get("effect_action"))
}

func TestFixLCardsTriggers(t *testing.T) {
	table := effectsTable(
		loader.Row{"effect_type": "cards", "effect_action": "draw_l", "trigger_type": "manual"},
		loader.Row{"effect_type": "cards", "effect_action": "draw_l", "trigger_type": ""},
		loader.Row{"effect_type": "cards", "effect_action": "draw_l", "trigger_type": "auto"},
		loader.Row{"effect_type": "cards", "effect_action": "draw_w", "trigger_type": "manual"},
	)

	fixes := FixLCards(table)
	assert.Equal(t, 1, fixes.ManualToAuto)
	assert.Equal(t, 1, fixes.EmptyToAuto)
	assert.Equal(t, 1, fixes.AlreadyAuto)
	assert.Equal(t, "auto", table.Rows[0].Get("trigger_type"))
	assert.Equal(t, "auto", table.Rows[1].Get("trigger_type"))
	// Non-L draws keep their trigger.
	assert.Equal(t, "manual", table.Rows[3].Get("trigger_type"))
}

func TestRestoreCardColumns(t *testing.T) {
	cards := &loader.Table{
		Header: []string{"card_id", "card_name", "card_type", "description", "effects_on_play", "cost", "phase_restriction", "duration"},
		Rows: []loader.Row{
			{"card_id": "B001", "card_name": "Bridge Loan", "phase_restriction": "Any", "duration": "Permanent"},
			{"card_id": "W042", "card_name": "Night Shift", "phase_restriction": "CONSTRUCTION"},
		},
	}
	backup := &loader.Table{
		Header: []string{"card_id", "loan_amount", "loan_rate", "investment_amount", "work_cost"},
		Rows: []loader.Row{
			{"card_id": "B001", "loan_amount": "500000", "loan_rate": "5"},
		},
	}

	result, err := RestoreCardColumns(cards, backup)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Unmatched)

	assert.Equal(t, []string{
		"card_id", "card_name", "card_type", "description", "effects_on_play", "cost", "phase_restriction",
		"loan_amount", "loan_rate", "investment_amount", "work_cost", "duration",
	}, cards.Header)

	assert.Equal(t, "500000", cards.Rows[0].Get("loan_amount"))
	assert.Equal(t, "5", cards.Rows[0].Get("loan_rate"))
	assert.Equal(t, "", cards.Rows[0].Get("investment_amount"))
	assert.Equal(t, "", cards.Rows[1].Get("loan_amount"))
	// Untouched columns survive serialization in the new order.
	records := cards.Serialize()
	assert.Equal(t, "Permanent", records[0][len(cards.Header)-1])
}

func TestRestoreCardColumnsMissingAnchor(t *testing.T) {
	cards := &loader.Table{Header: []string{"card_id", "card_name"}}
	_, err := RestoreCardColumns(cards, &loader.Table{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phase_restriction")
}
