package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpaceID(t *testing.T) {
	c := New(DefaultExceptions())

	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"real identifier", "REG-FDNY-PLAN-EXAM", true},
		{"identifier with digits", "CON-PHASE-2-CHECK", true},
		{"sentinel start", "START", true},
		{"sentinel finish", "FINISH", true},

		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"lowercase", "reg-fdny-plan-exam", false},
		{"mixed case", "Reg-Fdny", false},
		{"question", "Did you pass approval?", false},
		{"question mark only suffix", "APPROVED?", false},
		{"positional placeholder", "Space 3", false},
		{"positional placeholder caps", "SPACE 12", false},
		{"yes", "YES", false},
		{"no", "NO", false},
		{"yes lowercase", "yes", false},
		{"duration days", "5 days", false},
		{"duration weeks", "2 WEEKS", false},
		{"duration month attached", "1month", false},
		{"abbreviation without hyphen", "FDNY", false},
		{"long word without hyphen", "APPROVAL", false},
		{"too short with hyphen", "A-B", false},
		{"leading digit", "2ND-STEP", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, c.IsSpaceID(tt.text), "text: %q", tt.text)
		})
	}
}

func TestIsSpaceID_TrimsWhitespace(t *testing.T) {
	c := New(DefaultExceptions())
	assert.True(t, c.IsSpaceID("  REG-FDNY-PLAN-EXAM  "))
}

func TestExtractIDs(t *testing.T) {
	c := New(DefaultExceptions())

	t.Run("conditional branch text", func(t *testing.T) {
		ids := c.ExtractIDs("Did you pass approval? YES - REG-FDNY-PLAN-EXAM - NO - Space 3")
		assert.Equal(t, []string{"REG-FDNY-PLAN-EXAM"}, ids)
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		ids := c.ExtractIDs("ZZZ-SPACE or AAA-SPACE or ZZZ-SPACE")
		assert.Equal(t, []string{"AAA-SPACE", "ZZZ-SPACE"}, ids)
	})

	t.Run("no identifiers", func(t *testing.T) {
		assert.Empty(t, c.ExtractIDs("Roll the dice and wait 5 days"))
	})
}
