package resolve

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

// pathConditional is the source classification tag marking branching spaces
// whose destination cells hold a yes/no question with embedded identifiers.
const pathConditional = "LOGIC"

// deferPhrase marks a Subsequent-visit row whose choice set is defined by
// the First-visit record of the same space. The consuming system resolves
// the reference at query time; the resolver records choice with whatever
// identifiers the row itself carries.
const deferPhrase = "option from first visit"

// Resolver computes movement records from space rows. Decisions are tiered
// and first match wins; malformed rows degrade to none, never error.
type Resolver struct {
	classifier *classify.Classifier
	exc        classify.Exceptions
	dice       *DiceIndex
}

// NewResolver returns a Resolver over the given dice index.
func NewResolver(c *classify.Classifier, exc classify.Exceptions, dice *DiceIndex) *Resolver {
	return &Resolver{classifier: c, exc: exc, dice: dice}
}

// Resolve computes the movement record for one space row.
func (r *Resolver) Resolve(row model.SpaceRow) model.MovementRecord {
	rec := model.MovementRecord{Space: row.Name, Visit: row.Visit, Type: model.MoveNone}

	// Tier 1: designated non-interactive spaces never move.
	if r.exc.IsNonInteractive(row.Name) {
		return rec
	}

	// Tier 2: branching spaces. The cells hold conditional sentences, so
	// mine identifier-shaped substrings instead of validating whole cells.
	if row.Path == pathConditional {
		rec.Type = model.MoveChoice
		rec.Destinations = r.mineDestinations(row)
		if len(rec.Destinations) == 0 {
			zap.L().Warn("resolve: conditional space yielded no destinations",
				zap.String("space", row.Name),
				zap.String("visit", string(row.Visit)),
			)
		}
		return rec
	}

	// Tier 3: dice movement, cross-referenced against the normalized index.
	if r.dice != nil && r.dice.HasMovement(row.Key()) {
		rec.Type = model.MoveDice
		return rec
	}

	// Special case: subsequent visit defers to the first visit's choice set.
	joined := strings.ToLower(strings.Join(row.Destinations[:], " "))
	if strings.Contains(joined, deferPhrase) {
		salvaged := r.validDestinations(row)
		if len(salvaged) > 0 {
			rec.Type = model.MoveChoice
			rec.Destinations = salvaged
		}
		return rec
	}

	// Tier 4: literal placeholder text pointing at dice resolution.
	for _, cell := range row.Destinations {
		lower := strings.ToLower(cell)
		if strings.Contains(lower, "outcome") && strings.Contains(lower, "dice") {
			rec.Type = model.MoveDice
			return rec
		}
	}

	// Tier 5: plain destination counting.
	dests := r.validDestinations(row)
	switch len(dests) {
	case 0:
		rec.Type = model.MoveNone
	case 1:
		rec.Type = model.MoveFixed
		rec.Destinations = dests
	default:
		rec.Type = model.MoveChoice
		rec.Destinations = dests
	}
	return rec
}

// ResolveAll computes movement records for every row, in input order.
func (r *Resolver) ResolveAll(rows []model.SpaceRow) []model.MovementRecord {
	records := make([]model.MovementRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, r.Resolve(row))
	}
	return records
}

// validDestinations returns the destination cells that are valid
// identifiers, in column order.
func (r *Resolver) validDestinations(row model.SpaceRow) []string {
	var dests []string
	for _, cell := range row.Destinations {
		if r.classifier.IsSpaceID(cell) {
			dests = append(dests, strings.TrimSpace(cell))
		}
	}
	return dests
}

// mineDestinations extracts identifiers embedded in all five destination
// cells, deduplicated and sorted.
func (r *Resolver) mineDestinations(row model.SpaceRow) []string {
	seen := make(map[string]bool)
	for _, cell := range row.Destinations {
		if cell == "" {
			continue
		}
		for _, id := range r.classifier.ExtractIDs(cell) {
			seen[id] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
