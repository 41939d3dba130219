package extract

import (
	"strings"

	"github.com/tomaszsb/gamedata/internal/model"
)

// DiceEffects normalizes the raw dice-roll rows into the dice-effects table.
// The overloaded category string collapses to an effect type: anything
// mentioning cards keeps its card-type letter, fee/paid categories become
// money, time categories become time, and unknown categories pass through.
func DiceEffects(rows []model.DiceRollRow) []model.DiceEffectRecord {
	records := make([]model.DiceEffectRecord, 0, len(rows))
	for _, row := range rows {
		effectType, cardType := normalizeCategory(row.Category)
		records = append(records, model.DiceEffectRecord{
			Space:      row.Space,
			Visit:      row.Visit,
			EffectType: effectType,
			CardType:   cardType,
			Rolls:      row.Faces,
		})
	}
	return records
}

func normalizeCategory(category string) (effectType, cardType string) {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "card"):
		// "W Cards" → letter W; a bare "Cards" category has no letter.
		if strings.Contains(strings.TrimSpace(category), " ") {
			return "cards", firstWord(category)
		}
		return "cards", ""
	case strings.Contains(lower, "fee"), strings.Contains(lower, "paid"):
		return "money", ""
	case strings.Contains(lower, "time"):
		return "time", ""
	default:
		return category, firstWord(category)
	}
}

// firstWord returns the leading word of a multi-word category ("W Cards" →
// "W"), or the whole string when there is no space.
func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
