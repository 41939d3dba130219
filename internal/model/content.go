package model

// GameConfigRecord is one output row of the game-config table, deduplicated
// by space name (the first visit row wins).
type GameConfigRecord struct {
	Space            string
	Phase            string
	PathType         string
	IsStarting       bool
	IsEnding         bool
	MinPlayers       int
	MaxPlayers       int
	RequiresDiceRoll string
}

// SpaceContentRecord is one output row of the space-content table, carrying
// the narrative text cells through unchanged.
type SpaceContentRecord struct {
	Space        string
	Visit        VisitType
	Title        string
	Story        string
	ActionText   string
	OutcomeText  string
	CanNegotiate string
}
