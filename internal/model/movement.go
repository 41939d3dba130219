package model

// MovementType is the mode by which a player's next space is determined.
type MovementType string

const (
	// MoveNone marks terminal or informational spaces with no onward movement.
	MoveNone MovementType = "none"
	// MoveFixed has exactly one destination.
	MoveFixed MovementType = "fixed"
	// MoveChoice offers the player two or more destinations.
	MoveChoice MovementType = "choice"
	// MoveDice defers the destination to the dice-outcomes table.
	MoveDice MovementType = "dice"
)

// MaxDestinations is the number of destination columns in the source and
// output tables.
const MaxDestinations = 5

// MovementRecord is one output row of the movement table.
// Destinations is empty for none and dice movement; dice destinations live
// in the dice-outcomes table under the same key.
type MovementRecord struct {
	Space        string
	Visit        VisitType
	Type         MovementType
	Destinations []string
}

// Key returns the (space, visit) identity of the record.
func (r MovementRecord) Key() SpaceKey {
	return SpaceKey{Space: r.Space, Visit: r.Visit}
}
