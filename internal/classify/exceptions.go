package classify

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Exceptions is the declarative table of dataset-specific knowledge the
// classifier and resolver need: identifiers that break the structural rules,
// spaces with hard-coded behavior, and trigger overrides. Keeping these as
// data isolates them from the classification algorithm itself.
type Exceptions struct {
	// Sentinels are valid identifiers exempt from the hyphen and length
	// rules (start-of-game and end-of-game markers).
	Sentinels []string `yaml:"sentinels"`

	// NonInteractive names spaces that never produce movement, such as the
	// tutorial space.
	NonInteractive []string `yaml:"non_interactive"`

	// AutoDraw lists (space, card types) pairs whose card-draw effects
	// trigger automatically instead of requiring player action.
	AutoDraw []AutoDrawRule `yaml:"auto_draw"`

	// StartPhase and StartPath identify the starting space in the
	// game-config extraction.
	StartPhase string `yaml:"start_phase"`
	StartPath  string `yaml:"start_path"`

	// EndSpace is the space marked as ending in the game-config extraction.
	EndSpace string `yaml:"end_space"`
}

// AutoDrawRule marks card draws on one space as automatic.
type AutoDrawRule struct {
	Space     string   `yaml:"space"`
	CardTypes []string `yaml:"card_types"`
}

// DefaultExceptions returns the exception table for the current dataset.
func DefaultExceptions() Exceptions {
	return Exceptions{
		Sentinels:      []string{"START", "FINISH"},
		NonInteractive: []string{"START-QUICK-PLAY-GUIDE"},
		AutoDraw: []AutoDrawRule{
			// Owner seed money is granted, not chosen.
			{Space: "OWNER-FUND-INITIATION", CardTypes: []string{"B", "I"}},
			// Life surprises arrive from dice conditions.
			{Space: "PM-DECISION-CHECK", CardTypes: []string{"L"}},
		},
		StartPhase: "SETUP",
		StartPath:  "Main",
		EndSpace:   "FINISH",
	}
}

// LoadExceptions reads an exception table from a YAML file. Fields left
// empty in the file fall back to the defaults.
func LoadExceptions(path string) (Exceptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Exceptions{}, eris.Wrapf(err, "classify: read exceptions %s", path)
	}

	var wrapper struct {
		Exceptions Exceptions `yaml:"exceptions"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return Exceptions{}, eris.Wrap(err, "classify: parse exceptions")
	}

	exc := wrapper.Exceptions
	def := DefaultExceptions()
	if len(exc.Sentinels) == 0 {
		exc.Sentinels = def.Sentinels
	}
	if exc.StartPhase == "" {
		exc.StartPhase = def.StartPhase
	}
	if exc.StartPath == "" {
		exc.StartPath = def.StartPath
	}
	if exc.EndSpace == "" {
		exc.EndSpace = def.EndSpace
	}
	return exc, nil
}

// IsSentinel reports whether name is an allow-listed non-hyphenated identifier.
func (e Exceptions) IsSentinel(name string) bool {
	return containsFold(e.Sentinels, name)
}

// IsNonInteractive reports whether the space never produces movement.
func (e Exceptions) IsNonInteractive(space string) bool {
	return containsFold(e.NonInteractive, space)
}

// AutoTrigger reports whether card draws of the given type on the given
// space apply automatically.
func (e Exceptions) AutoTrigger(space, cardType string) bool {
	for _, rule := range e.AutoDraw {
		if rule.Space != space {
			continue
		}
		if containsFold(rule.CardTypes, cardType) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
