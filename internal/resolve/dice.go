// Package resolve decides each space's movement mode and builds the
// dice-outcome destination table.
package resolve

import (
	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

// Source categories with special meaning. "Next Step" always carries
// destinations; "Time outcomes" is overloaded and carries destinations only
// when its faces are identifier-shaped.
const (
	categoryNextStep = "Next Step"
	categoryTime     = "Time outcomes"
)

// diceEntry is one source row with its normalized kind.
type diceEntry struct {
	row  model.DiceRollRow
	kind model.OutcomeKind
}

// DiceIndex holds the dice-roll table keyed by (space, visit), with each
// row's overloaded category resolved to an explicit kind at build time.
type DiceIndex struct {
	entries map[model.SpaceKey][]diceEntry
}

// BuildDiceIndex normalizes the source dice rows. A row is movement-kind if
// its category is "Next Step", or if it is the ambiguous "Time outcomes"
// category and at least one face is a valid space identifier. Everything
// else is value-kind.
func BuildDiceIndex(rows []model.DiceRollRow, c *classify.Classifier) *DiceIndex {
	ix := &DiceIndex{entries: make(map[model.SpaceKey][]diceEntry)}
	for _, row := range rows {
		kind := model.KindValue
		switch row.Category {
		case categoryNextStep:
			kind = model.KindMovement
		case categoryTime:
			if anyFaceIsID(row.Faces, c) {
				kind = model.KindMovement
			}
		}
		key := row.Key()
		ix.entries[key] = append(ix.entries[key], diceEntry{row: row, kind: kind})
	}
	return ix
}

// HasMovement reports whether the key has a movement-kind dice row.
func (ix *DiceIndex) HasMovement(key model.SpaceKey) bool {
	for _, e := range ix.entries[key] {
		if e.kind == model.KindMovement {
			return true
		}
	}
	return false
}

// Outcomes returns the dice-outcomes table: one record per key with a
// movement-kind row, faces filtered to valid identifiers (blank otherwise).
// "Next Step" rows win over reclassified "Time outcomes" rows for the same
// key. Input order of first appearance is preserved.
func (ix *DiceIndex) Outcomes(order []model.DiceRollRow, c *classify.Classifier) []model.DiceOutcomeRecord {
	var records []model.DiceOutcomeRecord
	done := make(map[model.SpaceKey]bool)

	for _, row := range order {
		key := row.Key()
		if done[key] {
			continue
		}
		entry, ok := ix.movementEntry(key)
		if !ok {
			continue
		}
		done[key] = true

		rec := model.DiceOutcomeRecord{Space: key.Space, Visit: key.Visit}
		populated := false
		for i, face := range entry.row.Faces {
			if c.IsSpaceID(face) {
				rec.Rolls[i] = face
				populated = true
			}
		}
		if populated {
			records = append(records, rec)
		}
	}
	return records
}

// movementEntry picks the movement-kind row for a key, preferring "Next Step".
func (ix *DiceIndex) movementEntry(key model.SpaceKey) (diceEntry, bool) {
	var fallback diceEntry
	var found bool
	for _, e := range ix.entries[key] {
		if e.kind != model.KindMovement {
			continue
		}
		if e.row.Category == categoryNextStep {
			return e, true
		}
		if !found {
			fallback = e
			found = true
		}
	}
	return fallback, found
}

func anyFaceIsID(faces [6]string, c *classify.Classifier) bool {
	for _, face := range faces {
		if c.IsSpaceID(face) {
			return true
		}
	}
	return false
}
