package model

// EffectType classifies a non-movement consequence of landing on a space.
type EffectType string

const (
	EffectCards EffectType = "cards"
	EffectTime  EffectType = "time"
	EffectFee   EffectType = "fee"
)

// TriggerType says whether an effect applies automatically on landing or
// requires player action.
type TriggerType string

const (
	TriggerAuto   TriggerType = "auto"
	TriggerManual TriggerType = "manual"
)

// EffectRecord is one output row of the space-effects table.
type EffectRecord struct {
	Space       string
	Visit       VisitType
	Type        EffectType
	Action      string
	Value       string
	Condition   string
	Description string
	Trigger     TriggerType
}

// Key returns the (space, visit) identity of the record.
func (r EffectRecord) Key() SpaceKey {
	return SpaceKey{Space: r.Space, Visit: r.Visit}
}
