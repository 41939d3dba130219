package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExceptions(t *testing.T) {
	exc := DefaultExceptions()

	assert.True(t, exc.IsSentinel("START"))
	assert.True(t, exc.IsSentinel("FINISH"))
	assert.False(t, exc.IsSentinel("FDNY"))

	assert.True(t, exc.IsNonInteractive("START-QUICK-PLAY-GUIDE"))
	assert.False(t, exc.IsNonInteractive("REG-FDNY-PLAN-EXAM"))

	assert.True(t, exc.AutoTrigger("OWNER-FUND-INITIATION", "B"))
	assert.True(t, exc.AutoTrigger("OWNER-FUND-INITIATION", "I"))
	assert.False(t, exc.AutoTrigger("OWNER-FUND-INITIATION", "W"))
	assert.True(t, exc.AutoTrigger("PM-DECISION-CHECK", "L"))
	assert.False(t, exc.AutoTrigger("PM-DECISION-CHECK", "E"))
	assert.False(t, exc.AutoTrigger("REG-FDNY-PLAN-EXAM", "L"))
}

func TestLoadExceptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exceptions.yaml")

	yaml := `
exceptions:
  sentinels: [BEGIN, DONE]
  non_interactive: [TUTORIAL-INTRO]
  auto_draw:
    - space: SEED-SPACE
      card_types: [B]
  end_space: DONE
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	exc, err := LoadExceptions(path)
	require.NoError(t, err)

	assert.True(t, exc.IsSentinel("BEGIN"))
	assert.False(t, exc.IsSentinel("START"))
	assert.True(t, exc.IsNonInteractive("TUTORIAL-INTRO"))
	assert.True(t, exc.AutoTrigger("SEED-SPACE", "B"))
	assert.Equal(t, "DONE", exc.EndSpace)

	// Unset fields fall back to defaults.
	assert.Equal(t, "SETUP", exc.StartPhase)
	assert.Equal(t, "Main", exc.StartPath)
}

func TestLoadExceptions_MissingFile(t *testing.T) {
	_, err := LoadExceptions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
