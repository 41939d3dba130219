package loader

import (
	"fmt"

	"github.com/tomaszsb/gamedata/internal/model"
)

// ReadMovementTable loads a previously written movement table.
func ReadMovementTable(path string) ([]model.MovementRecord, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, path, "space_name", "visit_type", "movement_type"); err != nil {
		return nil, err
	}

	records := make([]model.MovementRecord, 0, len(table.Rows))
	for _, r := range table.Rows {
		rec := model.MovementRecord{
			Space: r.Get("space_name"),
			Visit: model.VisitType(r.Get("visit_type")),
			Type:  model.MovementType(r.Get("movement_type")),
		}
		for i := 1; i <= model.MaxDestinations; i++ {
			if d := r.Get(fmt.Sprintf("destination_%d", i)); d != "" {
				rec.Destinations = append(rec.Destinations, d)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadDiceOutcomeTable loads a previously written dice-outcomes table.
func ReadDiceOutcomeTable(path string) ([]model.DiceOutcomeRecord, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, path, "space_name", "visit_type", "roll_1"); err != nil {
		return nil, err
	}

	records := make([]model.DiceOutcomeRecord, 0, len(table.Rows))
	for _, r := range table.Rows {
		rec := model.DiceOutcomeRecord{
			Space: r.Get("space_name"),
			Visit: model.VisitType(r.Get("visit_type")),
		}
		for i := 0; i < 6; i++ {
			rec.Rolls[i] = r.Get(fmt.Sprintf("roll_%d", i+1))
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadEffectsTable loads a previously written space-effects table.
func ReadEffectsTable(path string) ([]model.EffectRecord, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, path, "space_name", "visit_type", "effect_type", "effect_action"); err != nil {
		return nil, err
	}

	records := make([]model.EffectRecord, 0, len(table.Rows))
	for _, r := range table.Rows {
		records = append(records, model.EffectRecord{
			Space:       r.Get("space_name"),
			Visit:       model.VisitType(r.Get("visit_type")),
			Type:        model.EffectType(r.Get("effect_type")),
			Action:      r.Get("effect_action"),
			Value:       r.Get("effect_value"),
			Condition:   r.Get("condition"),
			Description: r.Get("description"),
			Trigger:     model.TriggerType(r.Get("trigger_type")),
		})
	}
	return records, nil
}
