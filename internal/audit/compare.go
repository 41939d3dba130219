package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomaszsb/gamedata/internal/model"
)

// CardCountDiff records a (space, visit) whose per-card-type draw counts
// differ between two snapshots of the effects table.
type CardCountDiff struct {
	Key model.SpaceKey
	Old map[string]int
	New map[string]int
}

// ManualDraw flags a card-draw effect still on a manual trigger in the new
// snapshot. Draws migrated from the legacy table should fire automatically.
type ManualDraw struct {
	Key         model.SpaceKey
	Action      string
	Condition   string
	Description string
}

// EffectsDiffResult is the outcome of comparing two effects snapshots.
type EffectsDiffResult struct {
	CountDiffs  []CardCountDiff
	ManualDraws []ManualDraw
}

// cardDrawCounts tallies draw_<letter> card effects per type for one key.
func cardDrawCounts(effects []model.EffectRecord) map[string]int {
	counts := make(map[string]int)
	for _, e := range effects {
		if e.Type != model.EffectCards {
			continue
		}
		if !strings.HasPrefix(e.Action, "draw_") {
			continue
		}
		counts[strings.ToUpper(strings.TrimPrefix(e.Action, "draw_"))]++
	}
	return counts
}

func groupByKey(effects []model.EffectRecord) map[model.SpaceKey][]model.EffectRecord {
	grouped := make(map[model.SpaceKey][]model.EffectRecord)
	for _, e := range effects {
		k := model.SpaceKey{Space: e.Space, Visit: e.Visit}
		grouped[k] = append(grouped[k], e)
	}
	return grouped
}

func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// EffectsDiff compares an old and a new effects snapshot. It reports keys
// whose card-draw counts changed per card type, and any L-card draws in the
// new snapshot still marked manual.
func EffectsDiff(oldEffects, newEffects []model.EffectRecord) EffectsDiffResult {
	oldByKey := groupByKey(oldEffects)
	newByKey := groupByKey(newEffects)

	keySet := make(map[model.SpaceKey]struct{}, len(oldByKey)+len(newByKey))
	for k := range oldByKey {
		keySet[k] = struct{}{}
	}
	for k := range newByKey {
		keySet[k] = struct{}{}
	}
	keys := make([]model.SpaceKey, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Space != keys[j].Space {
			return keys[i].Space < keys[j].Space
		}
		return keys[i].Visit < keys[j].Visit
	})

	var result EffectsDiffResult
	for _, k := range keys {
		oldCounts := cardDrawCounts(oldByKey[k])
		newCounts := cardDrawCounts(newByKey[k])
		if !equalCounts(oldCounts, newCounts) {
			result.CountDiffs = append(result.CountDiffs, CardCountDiff{Key: k, Old: oldCounts, New: newCounts})
		}

		for _, e := range newByKey[k] {
			if e.Type == model.EffectCards && e.Action == "draw_l" && e.Trigger == model.TriggerManual {
				result.ManualDraws = append(result.ManualDraws, ManualDraw{
					Key:         k,
					Action:      e.Action,
					Condition:   e.Condition,
					Description: e.Description,
				})
			}
		}
	}
	return result
}

// FormatEffectsDiff renders a diff result as a readable report.
func FormatEffectsDiff(r EffectsDiffResult) string {
	var b strings.Builder

	if len(r.ManualDraws) == 0 && len(r.CountDiffs) == 0 {
		return "effects snapshots match: no count drift, no manual draws\n"
	}

	if len(r.ManualDraws) > 0 {
		fmt.Fprintf(&b, "L-card draws still manual (%d):\n", len(r.ManualDraws))
		for _, m := range r.ManualDraws {
			fmt.Fprintf(&b, "  %s (%s): %s [condition=%s] %s\n",
				m.Key.Space, m.Key.Visit, m.Action, m.Condition, m.Description)
		}
	}

	if len(r.CountDiffs) > 0 {
		fmt.Fprintf(&b, "card-count mismatches (%d):\n", len(r.CountDiffs))
		for _, d := range r.CountDiffs {
			fmt.Fprintf(&b, "  %s (%s): old=%s new=%s\n",
				d.Key.Space, d.Key.Visit, formatCounts(d.Old), formatCounts(d.New))
		}
	}
	return b.String()
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "{}"
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s:%d", t, counts[t]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
