// Package extract derives normalized output records from source rows.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

// feeZeroSentinels are fee cell values that mean "no fee".
var feeZeroSentinels = map[string]bool{"": true, "0": true, "0%": true}

// EffectExtractor emits normalized effect records from space rows.
type EffectExtractor struct {
	exc classify.Exceptions
}

// NewEffectExtractor returns an extractor using the given exception table
// for auto-trigger overrides.
func NewEffectExtractor(exc classify.Exceptions) *EffectExtractor {
	return &EffectExtractor{exc: exc}
}

// Extract emits zero or more effect records for one space row: one card
// draw per non-empty card cell, one time effect when the time cell parses
// as a day count, and one fee effect unless the cell is a zero sentinel.
func (e *EffectExtractor) Extract(row model.SpaceRow) []model.EffectRecord {
	var effects []model.EffectRecord

	for _, ct := range model.CardTypes {
		value := strings.TrimSpace(row.Cards[ct])
		if value == "" {
			continue
		}

		trigger := model.TriggerManual
		if e.exc.AutoTrigger(row.Name, string(ct)) {
			trigger = model.TriggerAuto
		}

		effects = append(effects, model.EffectRecord{
			Space:       row.Name,
			Visit:       row.Visit,
			Type:        model.EffectCards,
			Action:      "draw_" + strings.ToLower(string(ct)),
			Value:       value,
			Description: fmt.Sprintf("%s %s cards", value, ct),
			Trigger:     trigger,
		})
	}

	if days, ok := parseDayCount(row.Time); ok {
		effects = append(effects, model.EffectRecord{
			Space:       row.Name,
			Visit:       row.Visit,
			Type:        model.EffectTime,
			Action:      "add",
			Value:       strconv.Itoa(days),
			Description: fmt.Sprintf("Spend %s", strings.TrimSpace(row.Time)),
			Trigger:     model.TriggerAuto,
		})
	}

	fee := strings.TrimSpace(row.Fee)
	if !feeZeroSentinels[fee] {
		effects = append(effects, model.EffectRecord{
			Space:       row.Name,
			Visit:       row.Visit,
			Type:        model.EffectFee,
			Action:      "deduct",
			Value:       fee,
			Description: fmt.Sprintf("Pay %s fees", fee),
			Trigger:     model.TriggerAuto,
		})
	}

	return effects
}

// ExtractAll emits effect records for every row, in input order.
func (e *EffectExtractor) ExtractAll(rows []model.SpaceRow) []model.EffectRecord {
	var effects []model.EffectRecord
	for _, row := range rows {
		effects = append(effects, e.Extract(row)...)
	}
	return effects
}

// parseDayCount strips day-unit words from a time cell and parses the rest
// as an integer. Non-numeric cells are skipped, never an error.
func parseDayCount(s string) (int, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, "days", "")
	cleaned = strings.ReplaceAll(cleaned, "day", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}
