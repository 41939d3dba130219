// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source     SourceConfig     `yaml:"source" mapstructure:"source"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	RunLog     RunLogConfig     `yaml:"runlog" mapstructure:"runlog"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// SourceConfig locates the raw input files.
type SourceConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`
	Spaces    string `yaml:"spaces" mapstructure:"spaces"`
	DiceRolls string `yaml:"dice_rolls" mapstructure:"dice_rolls"`
	Cards     string `yaml:"cards" mapstructure:"cards"`
}

// SpacesPath returns the full path to the spaces source file.
func (c SourceConfig) SpacesPath() string { return filepath.Join(c.Dir, c.Spaces) }

// DiceRollsPath returns the full path to the dice-roll source file.
func (c SourceConfig) DiceRollsPath() string { return filepath.Join(c.Dir, c.DiceRolls) }

// CardsPath returns the full path to the cards source file.
func (c SourceConfig) CardsPath() string { return filepath.Join(c.Dir, c.Cards) }

// OutputConfig locates the produced tables.
type OutputConfig struct {
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Movement     string `yaml:"movement" mapstructure:"movement"`
	DiceOutcomes string `yaml:"dice_outcomes" mapstructure:"dice_outcomes"`
	SpaceEffects string `yaml:"space_effects" mapstructure:"space_effects"`
	DiceEffects  string `yaml:"dice_effects" mapstructure:"dice_effects"`
	GameConfig   string `yaml:"game_config" mapstructure:"game_config"`
	SpaceContent string `yaml:"space_content" mapstructure:"space_content"`
	Cards        string `yaml:"cards" mapstructure:"cards"`
}

// Path returns the full path of a named output file within the output dir.
func (c OutputConfig) Path(name string) string { return filepath.Join(c.Dir, name) }

// MovementPath returns the full path to the movement table.
func (c OutputConfig) MovementPath() string { return c.Path(c.Movement) }

// DiceOutcomesPath returns the full path to the dice-outcomes table.
func (c OutputConfig) DiceOutcomesPath() string { return c.Path(c.DiceOutcomes) }

// SpaceEffectsPath returns the full path to the space-effects table.
func (c OutputConfig) SpaceEffectsPath() string { return c.Path(c.SpaceEffects) }

// DiceEffectsPath returns the full path to the dice-effects table.
func (c OutputConfig) DiceEffectsPath() string { return c.Path(c.DiceEffects) }

// GameConfigPath returns the full path to the game-config table.
func (c OutputConfig) GameConfigPath() string { return c.Path(c.GameConfig) }

// SpaceContentPath returns the full path to the space-content table.
func (c OutputConfig) SpaceContentPath() string { return c.Path(c.SpaceContent) }

// CardsPath returns the full path to the cards table.
func (c OutputConfig) CardsPath() string { return c.Path(c.Cards) }

// ClassifierConfig configures space-name classification.
type ClassifierConfig struct {
	// ExceptionsFile optionally points at a YAML file of named-space
	// exceptions; when empty the built-in defaults apply.
	ExceptionsFile string `yaml:"exceptions_file" mapstructure:"exceptions_file"`
}

// RunLogConfig configures the SQLite run log.
type RunLogConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GAMEDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.dir", "data/SOURCE_FILES")
	v.SetDefault("source.spaces", "Spaces.csv")
	v.SetDefault("source.dice_rolls", "DiceRoll Info.csv")
	v.SetDefault("source.cards", "Cards.xlsx")
	v.SetDefault("output.dir", "data/CLEAN_FILES")
	v.SetDefault("output.movement", "MOVEMENT.csv")
	v.SetDefault("output.dice_outcomes", "DICE_OUTCOMES.csv")
	v.SetDefault("output.space_effects", "SPACE_EFFECTS.csv")
	v.SetDefault("output.dice_effects", "DICE_EFFECTS.csv")
	v.SetDefault("output.game_config", "GAME_CONFIG.csv")
	v.SetDefault("output.space_content", "SPACE_CONTENT.csv")
	v.SetDefault("output.cards", "CARDS.csv")
	v.SetDefault("runlog.enabled", true)
	v.SetDefault("runlog.path", "gamedata-runs.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable for running commands.
func (c *Config) Validate() error {
	var problems []string
	if c.Source.Dir == "" {
		problems = append(problems, "source.dir is required")
	}
	if c.Source.Spaces == "" {
		problems = append(problems, "source.spaces is required")
	}
	if c.Source.DiceRolls == "" {
		problems = append(problems, "source.dice_rolls is required")
	}
	if c.Output.Dir == "" {
		problems = append(problems, "output.dir is required")
	}
	if c.RunLog.Enabled && c.RunLog.Path == "" {
		problems = append(problems, "runlog.path is required when runlog is enabled")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
