// Package model defines the row and record types shared across the data pipeline.
package model

// VisitType distinguishes a player's first landing on a space from later ones.
type VisitType string

const (
	VisitFirst      VisitType = "First"
	VisitSubsequent VisitType = "Subsequent"
)

// SpaceKey identifies one logical space record. (space_name, visit_type) is
// expected unique per source file, though the source data does not enforce it.
type SpaceKey struct {
	Space string
	Visit VisitType
}

// SpaceRow is one record of the source space table.
type SpaceRow struct {
	Name  string
	Visit VisitType
	Phase string
	Path  string

	// Up to five free-text destination cells (space_1..space_5). Cells mix
	// real identifiers with narrative prose and conditional questions.
	Destinations [5]string

	// Card quantity cells, one per card-type letter.
	Cards map[CardType]string

	Time string
	Fee  string

	Event     string
	Action    string
	Outcome   string
	Negotiate string

	RequiresDiceRoll string
}

// Key returns the (space, visit) identity of the row.
func (r SpaceRow) Key() SpaceKey {
	return SpaceKey{Space: r.Name, Visit: r.Visit}
}
