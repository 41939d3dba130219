package model

// OutcomeKind is the normalized meaning of a dice-roll category. The source
// category string is overloaded: "Time outcomes" sometimes holds destination
// identifiers instead of time spans, so the raw string alone cannot be
// trusted. Kind is assigned once when the dice index is built.
type OutcomeKind string

const (
	// KindMovement means the six faces name destination spaces.
	KindMovement OutcomeKind = "movement"
	// KindValue means the faces hold non-movement values (time, fees, cards).
	KindValue OutcomeKind = "value"
)

// DiceRollRow is one record of the source dice-roll table, keyed by
// (space_name, category, visit_type) with one free-text cell per die face.
type DiceRollRow struct {
	Space    string
	Category string
	Visit    VisitType
	Faces    [6]string
}

// Key returns the (space, visit) identity of the row.
func (r DiceRollRow) Key() SpaceKey {
	return SpaceKey{Space: r.Space, Visit: r.Visit}
}

// DiceOutcomeRecord is one output row of the dice-outcomes table: per-face
// destination identifiers for a space whose movement is dice-driven. Faces
// that held non-identifier text are blank.
type DiceOutcomeRecord struct {
	Space string
	Visit VisitType
	Rolls [6]string
}

// Key returns the (space, visit) identity of the record.
func (r DiceOutcomeRecord) Key() SpaceKey {
	return SpaceKey{Space: r.Space, Visit: r.Visit}
}

// DiceEffectRecord is one output row of the dice-effects table: the raw die
// faces of a non-movement outcome, with the category normalized to an effect
// type and optional card-type letter.
type DiceEffectRecord struct {
	Space      string
	Visit      VisitType
	EffectType string
	CardType   string
	Rolls      [6]string
}
