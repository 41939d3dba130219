package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/SOURCE_FILES", cfg.Source.Dir)
	assert.Equal(t, "Spaces.csv", cfg.Source.Spaces)
	assert.Equal(t, "DiceRoll Info.csv", cfg.Source.DiceRolls)
	assert.Equal(t, "Cards.xlsx", cfg.Source.Cards)
	assert.Equal(t, "data/CLEAN_FILES", cfg.Output.Dir)
	assert.Equal(t, "MOVEMENT.csv", cfg.Output.Movement)
	assert.Equal(t, "DICE_OUTCOMES.csv", cfg.Output.DiceOutcomes)
	assert.Equal(t, "SPACE_EFFECTS.csv", cfg.Output.SpaceEffects)
	assert.Equal(t, "DICE_EFFECTS.csv", cfg.Output.DiceEffects)
	assert.Equal(t, "GAME_CONFIG.csv", cfg.Output.GameConfig)
	assert.Equal(t, "SPACE_CONTENT.csv", cfg.Output.SpaceContent)
	assert.Equal(t, "CARDS.csv", cfg.Output.Cards)
	assert.True(t, cfg.RunLog.Enabled)
	assert.Equal(t, "gamedata-runs.db", cfg.RunLog.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Classifier.ExceptionsFile)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
source:
  dir: /srv/game/source
  spaces: SPACES_2026.csv
output:
  dir: /srv/game/clean
classifier:
  exceptions_file: exceptions.yaml
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/game/source", cfg.Source.Dir)
	assert.Equal(t, "SPACES_2026.csv", cfg.Source.Spaces)
	assert.Equal(t, "/srv/game/clean", cfg.Output.Dir)
	assert.Equal(t, "exceptions.yaml", cfg.Classifier.ExceptionsFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, "DiceRoll Info.csv", cfg.Source.DiceRolls)
	assert.Equal(t, "MOVEMENT.csv", cfg.Output.Movement)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
output:
  dir: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("GAMEDATA_LOG_LEVEL", "warn")
	t.Setenv("GAMEDATA_OUTPUT_DIR", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.Output.Dir)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("GAMEDATA_RUNLOG_PATH", "/tmp/runs.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", cfg.RunLog.Path)
}

func TestPathHelpers(t *testing.T) {
	cfg := Config{
		Source: SourceConfig{Dir: "src", Spaces: "Spaces.csv", DiceRolls: "Dice.csv", Cards: "Cards.xlsx"},
		Output: OutputConfig{Dir: "out", Movement: "MOVEMENT.csv", Cards: "CARDS.csv"},
	}
	assert.Equal(t, filepath.Join("src", "Spaces.csv"), cfg.Source.SpacesPath())
	assert.Equal(t, filepath.Join("src", "Dice.csv"), cfg.Source.DiceRollsPath())
	assert.Equal(t, filepath.Join("src", "Cards.xlsx"), cfg.Source.CardsPath())
	assert.Equal(t, filepath.Join("out", "MOVEMENT.csv"), cfg.Output.MovementPath())
	assert.Equal(t, filepath.Join("out", "CARDS.csv"), cfg.Output.CardsPath())
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Source: SourceConfig{Dir: "src", Spaces: "Spaces.csv", DiceRolls: "Dice.csv"},
		Output: OutputConfig{Dir: "out"},
		RunLog: RunLogConfig{Enabled: true, Path: "runs.db"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Source.Spaces = ""
	cfg.RunLog.Path = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.spaces is required")
	assert.Contains(t, err.Error(), "runlog.path is required")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
