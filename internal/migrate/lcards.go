package migrate

import (
	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
)

// LCardFixes summarizes what FixLCards changed.
type LCardFixes struct {
	TypeBugFixed int
	ManualToAuto int
	EmptyToAuto  int
	AlreadyAuto  int
}

// FixLCards repairs two defects in the effects table in place: the
// LEND-SCOPE-CHECK first-visit draw that was recorded as an L card when the
// source assigns an E card, and L-card draws left on a manual or empty
// trigger when every L draw fires automatically.
func FixLCards(table *loader.Table) LCardFixes {
	var fixes LCardFixes
	for _, row := range table.Rows {
		if row.Get("effect_type") != "cards" {
			continue
		}

		// Capture the action before the type fix so the renamed row still
		// has its trigger normalized below.
		action := row.Get("effect_action")

		if row.Get("space_name") == "LEND-SCOPE-CHECK" &&
			row.Get("visit_type") == "First" &&
			action == "draw_l" &&
			row.Get("condition") == "always" {
			row["effect_action"] = "draw_e"
			row["description"] = "Draw 1 E card"
			fixes.TypeBugFixed++
			zap.L().Info("fixed card type",
				zap.String("space", "LEND-SCOPE-CHECK"),
				zap.String("from", "draw_l"),
				zap.String("to", "draw_e"))
		}

		if action != "draw_l" {
			continue
		}
		switch row.Get("trigger_type") {
		case "manual":
			row["trigger_type"] = "auto"
			fixes.ManualToAuto++
		case "auto":
			fixes.AlreadyAuto++
		case "":
			row["trigger_type"] = "auto"
			fixes.EmptyToAuto++
		}
	}
	return fixes
}
