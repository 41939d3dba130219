package writer

import (
	"fmt"
	"strconv"

	"github.com/tomaszsb/gamedata/internal/model"
)

// Output column orders. These are contractual: the consuming system reads
// the tables by header name but diffs them positionally.
var (
	movementColumns = []string{
		"space_name", "visit_type", "movement_type",
		"destination_1", "destination_2", "destination_3", "destination_4", "destination_5",
		"condition_1", "condition_2", "condition_3", "condition_4", "condition_5",
	}
	diceOutcomeColumns = []string{
		"space_name", "visit_type",
		"roll_1", "roll_2", "roll_3", "roll_4", "roll_5", "roll_6",
	}
	effectColumns = []string{
		"space_name", "visit_type", "effect_type", "effect_action", "effect_value",
		"condition", "description", "trigger_type",
	}
	diceEffectColumns = []string{
		"space_name", "visit_type", "effect_type", "card_type",
		"roll_1", "roll_2", "roll_3", "roll_4", "roll_5", "roll_6",
	}
	gameConfigColumns = []string{
		"space_name", "phase", "path_type", "is_starting_space", "is_ending_space",
		"min_players", "max_players", "requires_dice_roll",
	}
	contentColumns = []string{
		"space_name", "visit_type", "title", "story", "action_description",
		"outcome_description", "can_negotiate",
	}
	cardColumns = []string{
		"card_id", "card_name", "card_type", "description", "effects_on_play", "cost", "phase_restriction",
		"duration", "duration_count", "turn_effect", "activation_timing",
		"loan_amount", "loan_rate", "investment_amount", "work_cost",
		"money_effect", "tick_modifier",
		"draw_cards", "discard_cards", "target", "scope", "work_type_restriction",
	}
)

// WriteMovement writes the movement table.
func WriteMovement(path string, records []model.MovementRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{rec.Space, string(rec.Visit), string(rec.Type)}
		for i := 0; i < model.MaxDestinations; i++ {
			if i < len(rec.Destinations) {
				row = append(row, rec.Destinations[i])
			} else {
				row = append(row, "")
			}
		}
		// Condition columns are reserved and currently always blank.
		for i := 0; i < model.MaxDestinations; i++ {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return WriteTable(path, movementColumns, rows)
}

// WriteDiceOutcomes writes the dice-outcomes table.
func WriteDiceOutcomes(path string, records []model.DiceOutcomeRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{rec.Space, string(rec.Visit)}
		row = append(row, rec.Rolls[:]...)
		rows = append(rows, row)
	}
	return WriteTable(path, diceOutcomeColumns, rows)
}

// WriteEffects writes the space-effects table.
func WriteEffects(path string, records []model.EffectRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Space, string(rec.Visit), string(rec.Type), rec.Action, rec.Value,
			rec.Condition, rec.Description, string(rec.Trigger),
		})
	}
	return WriteTable(path, effectColumns, rows)
}

// WriteDiceEffects writes the dice-effects table.
func WriteDiceEffects(path string, records []model.DiceEffectRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{rec.Space, string(rec.Visit), rec.EffectType, rec.CardType}
		row = append(row, rec.Rolls[:]...)
		rows = append(rows, row)
	}
	return WriteTable(path, diceEffectColumns, rows)
}

// WriteGameConfig writes the game-config table.
func WriteGameConfig(path string, records []model.GameConfigRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Space, rec.Phase, rec.PathType,
			yesNo(rec.IsStarting), yesNo(rec.IsEnding),
			strconv.Itoa(rec.MinPlayers), strconv.Itoa(rec.MaxPlayers),
			rec.RequiresDiceRoll,
		})
	}
	return WriteTable(path, gameConfigColumns, rows)
}

// WriteContent writes the space-content table.
func WriteContent(path string, records []model.SpaceContentRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Space, string(rec.Visit), rec.Title, rec.Story,
			rec.ActionText, rec.OutcomeText, rec.CanNegotiate,
		})
	}
	return WriteTable(path, contentColumns, rows)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// WriteCards writes the cards table.
func WriteCards(path string, records []model.CardRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ID, rec.Name, string(rec.Type), rec.Description, rec.EffectsOn,
			fmt.Sprintf("%d", rec.Cost), rec.Phase,
			rec.Duration, rec.DurationCount, rec.TurnEffect, rec.Timing,
			rec.LoanAmount, rec.LoanRate, rec.InvestmentAmount, rec.WorkCost,
			rec.MoneyEffect, rec.TickModifier,
			rec.DrawCards, rec.DiscardCards, rec.Target, rec.Scope, rec.WorkTypeRestriction,
		})
	}
	return WriteTable(path, cardColumns, rows)
}
