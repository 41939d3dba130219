// Package migrate rewrites previously produced tables in place: moving
// dice conditions out of prose, repairing card-draw triggers, and restoring
// financial columns dropped by an earlier conversion.
package migrate

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/loader"
)

var diceConditionPattern = regexp.MustCompile(`(?i)if you roll a (\d+)`)

// DiceConditions moves "if you roll a N" phrasing from the value or
// description of an L-card draw into the structured condition column.
// The value becomes the literal count and the description is regenerated.
// Returns the number of rows rewritten.
func DiceConditions(table *loader.Table) int {
	migrated := 0
	for _, row := range table.Rows {
		if row.Get("effect_type") != "cards" {
			continue
		}
		if !strings.Contains(strings.ToLower(row.Get("effect_action")), "draw_l") {
			continue
		}

		match := diceConditionPattern.FindStringSubmatch(row.Get("effect_value"))
		if match == nil {
			match = diceConditionPattern.FindStringSubmatch(row.Get("description"))
		}
		if match == nil {
			continue
		}

		roll := match[1]
		row["condition"] = "dice_roll_" + roll
		row["effect_value"] = "1"
		row["description"] = fmt.Sprintf("Draw L card on roll of %s", roll)
		migrated++

		zap.L().Debug("migrated dice condition",
			zap.String("space", row.Get("space_name")),
			zap.String("visit", row.Get("visit_type")),
			zap.String("condition", row["condition"]))
	}
	return migrated
}
