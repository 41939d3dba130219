package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomaszsb/gamedata/internal/loader"
	"github.com/tomaszsb/gamedata/internal/model"
)

// discardPattern mines "discard 1 Expeditor card" style instructions out of
// card descriptions when the structured discard column is populated.
var discardPattern = regexp.MustCompile(`(?i)discard\s+(\d+)\s+(Expeditor|Work|Benefit|Investment|Law)\s+card`)

// cardTypeNames maps the long card-type names used in descriptions to the
// single-letter codes.
var cardTypeNames = map[string]model.CardType{
	"EXPEDITOR":  model.CardE,
	"WORK":       model.CardW,
	"BENEFIT":    model.CardB,
	"INVESTMENT": model.CardI,
	"LAW":        model.CardL,
}

// ConvertCards normalizes a raw card export into card records with expanded
// mechanics. Cost derivation is type-conditional: B cards cost their loan
// amount, I cards their investment amount, W cards their work cost, and
// everything else falls back to the generic money-cost column.
func ConvertCards(table *loader.Table) []model.CardRecord {
	cards := make([]model.CardRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.Get("card_id") == "" {
			continue
		}
		cards = append(cards, convertCard(row))
	}
	return cards
}

func convertCard(row loader.Row) model.CardRecord {
	card := model.CardRecord{
		ID:          row.Get("card_id"),
		Name:        row.Get("card_name"),
		Type:        model.CardType(row.Get("card_type")),
		Description: row.Get("description"),
		EffectsOn:   defaultStr(row.Get("immediate_effect"), "Apply Effect"),
		Phase:       defaultStr(row.Get("phase_restriction"), "Any"),

		Duration:      defaultStr(row.Get("duration"), "Immediate"),
		DurationCount: defaultStr(row.Get("duration_count"), "0"),
		Timing:        defaultStr(row.Get("activation_timing"), "Immediate"),

		LoanAmount:       defaultStr(row.Get("loan_amount"), "0"),
		LoanRate:         defaultStr(row.Get("loan_rate"), "0"),
		InvestmentAmount: defaultStr(row.Get("investment_amount"), "0"),
		WorkCost:         defaultStr(row.Get("work_cost"), "0"),

		MoneyEffect: row.Get("money_effect"),

		DrawCards:           row.Get("draw_cards"),
		Target:              defaultStr(row.Get("target"), "Self"),
		Scope:               defaultStr(row.Get("scope"), "Single"),
		WorkTypeRestriction: row.Get("work_type_restriction"),
	}

	// Recurring turn effects live in the dice-effect column of the source.
	if dice := row.Get("dice_effect"); strings.Contains(strings.ToLower(dice), "turn") {
		card.TurnEffect = dice
	}

	// Tick modifier sometimes arrives under time_effect instead.
	card.TickModifier = defaultStr(firstNonEmpty(row, "tick_modifier", "time_effect"), "0")

	card.DiscardCards = mineDiscard(row.Get("discard_cards"), card.Description)
	card.Cost = deriveCost(row, card.Type)
	return card
}

// deriveCost picks the type-specific cost column, falling back to the
// generic money-cost column when the structured one is absent.
func deriveCost(row loader.Row, cardType model.CardType) int {
	switch cardType {
	case model.CardB:
		if v, ok := atoi(row.Get("loan_amount")); ok {
			return v
		}
	case model.CardI:
		if v, ok := atoi(row.Get("investment_amount")); ok {
			return v
		}
	case model.CardW:
		if v, ok := atoi(row.Get("work_cost")); ok {
			return v
		}
	}
	if v, ok := atoi(row.Get("money_cost")); ok {
		return v
	}
	return 0
}

// mineDiscard rewrites free-text discard instructions into "N X" shorthand
// when the description names a card type, keeping the raw column otherwise.
func mineDiscard(raw, description string) string {
	if raw == "" || description == "" {
		return raw
	}
	m := discardPattern.FindStringSubmatch(description)
	if m == nil {
		return raw
	}
	letter, ok := cardTypeNames[strings.ToUpper(m[2])]
	if !ok {
		return raw
	}
	return fmt.Sprintf("%s %s", m[1], letter)
}

// HasComplexMechanics reports whether a card carries any of the expanded
// mechanic fields, for run reporting.
func HasComplexMechanics(card model.CardRecord) bool {
	if card.TurnEffect != "" || card.MoneyEffect != "" {
		return true
	}
	if card.DrawCards != "" || card.DiscardCards != "" {
		return true
	}
	tick, ok := atoi(card.TickModifier)
	return ok && tick != 0
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func firstNonEmpty(row loader.Row, cols ...string) string {
	for _, col := range cols {
		if v := row.Get(col); v != "" {
			return v
		}
	}
	return ""
}
