package model

// CardType is the single-letter card classification used by the source data.
type CardType string

const (
	CardW CardType = "W"
	CardB CardType = "B"
	CardI CardType = "I"
	CardL CardType = "L"
	CardE CardType = "E"
)

// CardTypes lists all card types in the source column order.
var CardTypes = []CardType{CardW, CardB, CardI, CardL, CardE}

// CardRecord is one normalized card with expanded mechanics.
type CardRecord struct {
	ID          string
	Name        string
	Type        CardType
	Description string
	EffectsOn   string
	Cost        int
	Phase       string

	Duration      string
	DurationCount string
	TurnEffect    string
	Timing        string

	LoanAmount       string
	LoanRate         string
	InvestmentAmount string
	WorkCost         string

	MoneyEffect  string
	TickModifier string

	DrawCards    string
	DiscardCards string
	Target       string
	Scope        string
	WorkTypeRestriction string
}
