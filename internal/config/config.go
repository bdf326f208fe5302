// Package config loads groupformer settings through viper.
//
// Precedence, highest first: command-line flags bound by the caller,
// GROUPFORMER_* environment variables (after .env files), the YAML config
// file, then the defaults registered by SetDefaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/internal/logging"
	"github.com/katalvlaran/groupformer/scoring"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override,
// e.g. GROUPFORMER_FORMATION_MAX_GROUP_SIZE for formation.max_group_size.
const EnvPrefix = "GROUPFORMER"

// Config is the complete groupformer configuration.
type Config struct {
	Formation FormationConfig `mapstructure:"formation"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
}

// FormationConfig mirrors the formation options.
type FormationConfig struct {
	// MaxGroupSize is the largest group, 2..6.
	MaxGroupSize int `mapstructure:"max_group_size"`
	// TopicPolicy: "exclusive" or "reuse".
	TopicPolicy string `mapstructure:"topic_policy"`
	// TieBreak: "prefer-larger", "first-seen", or empty to follow the topic policy.
	TieBreak string `mapstructure:"tie_break"`
	// Leftover: "chunked" or "single".
	Leftover string `mapstructure:"leftover"`
	// PlaceholderTopic labels groups that cannot get a topic.
	PlaceholderTopic string `mapstructure:"placeholder_topic"`
}

// ScoringConfig selects the pair scorer and its weights.
type ScoringConfig struct {
	// Scheme: "ranked" or "tiered".
	Scheme string `mapstructure:"scheme"`

	MutualFirst float64 `mapstructure:"mutual_first"`
	Mutual      float64 `mapstructure:"mutual"`
	OneSided    float64 `mapstructure:"one_sided"`

	RankWeights []float64 `mapstructure:"rank_weights"`
	Reciprocity float64   `mapstructure:"reciprocity"`

	PrimaryMatch   float64 `mapstructure:"primary_match"`
	SecondaryMatch float64 `mapstructure:"secondary_match"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format: "text" or "json".
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Formation: FormationConfig{
			MaxGroupSize:     formation.DefaultMaxGroupSize,
			TopicPolicy:      formation.DefaultTopicPolicy.String(),
			Leftover:         formation.DefaultLeftoverPolicy.String(),
			PlaceholderTopic: formation.DefaultPlaceholderTopic,
		},
		Scoring: ScoringConfig{
			Scheme:         string(scoring.SchemeRanked),
			MutualFirst:    scoring.DefaultMutualFirst,
			Mutual:         scoring.DefaultMutual,
			OneSided:       scoring.DefaultOneSided,
			RankWeights:    scoring.DefaultRankWeights(),
			Reciprocity:    scoring.DefaultReciprocity,
			PrimaryMatch:   scoring.DefaultPrimaryMatch,
			SecondaryMatch: scoring.DefaultSecondaryMatch,
		},
		Logging: LoggingConfig{Level: "warn", Format: logging.FormatText},
		Output:  OutputConfig{Format: "text"},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("formation.max_group_size", d.Formation.MaxGroupSize)
	v.SetDefault("formation.topic_policy", d.Formation.TopicPolicy)
	v.SetDefault("formation.tie_break", d.Formation.TieBreak)
	v.SetDefault("formation.leftover", d.Formation.Leftover)
	v.SetDefault("formation.placeholder_topic", d.Formation.PlaceholderTopic)

	v.SetDefault("scoring.scheme", d.Scoring.Scheme)
	v.SetDefault("scoring.mutual_first", d.Scoring.MutualFirst)
	v.SetDefault("scoring.mutual", d.Scoring.Mutual)
	v.SetDefault("scoring.one_sided", d.Scoring.OneSided)
	v.SetDefault("scoring.rank_weights", d.Scoring.RankWeights)
	v.SetDefault("scoring.reciprocity", d.Scoring.Reciprocity)
	v.SetDefault("scoring.primary_match", d.Scoring.PrimaryMatch)
	v.SetDefault("scoring.secondary_match", d.Scoring.SecondaryMatch)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("output.format", d.Output.Format)
}

// Init prepares v: defaults, config file lookup and environment binding.
// cfgFile overrides the search path when non-empty. A missing config file
// in the search path is not an error; a missing explicit cfgFile is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// LoadEnvFiles loads the given .env files into the process environment.
// Files that do not exist are skipped; variables already set are kept.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the user's groupformer config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "groupformer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".groupformer"
	}

	return filepath.Join(home, ".config", "groupformer")
}

// FormationOptions converts the formation section to formation options.
// Call on a validated Config.
func (c *Config) FormationOptions() ([]formation.Option, error) {
	tp, err := formation.ParseTopicPolicy(c.Formation.TopicPolicy)
	if err != nil {
		return nil, err
	}
	lp, err := formation.ParseLeftoverPolicy(c.Formation.Leftover)
	if err != nil {
		return nil, err
	}
	if c.Formation.MaxGroupSize < formation.MinGroupSize || c.Formation.MaxGroupSize > formation.MaxGroupSizeLimit {
		return nil, fmt.Errorf("formation.max_group_size %d out of range", c.Formation.MaxGroupSize)
	}

	opts := []formation.Option{
		formation.WithMaxGroupSize(c.Formation.MaxGroupSize),
		formation.WithTopicPolicy(tp),
		formation.WithLeftoverPolicy(lp),
	}
	if strings.TrimSpace(c.Formation.PlaceholderTopic) != "" {
		opts = append(opts, formation.WithPlaceholderTopic(c.Formation.PlaceholderTopic))
	}
	if strings.TrimSpace(c.Formation.TieBreak) != "" {
		tb, err := formation.ParseTieBreak(c.Formation.TieBreak)
		if err != nil {
			return nil, err
		}
		opts = append(opts, formation.WithTieBreak(tb))
	}

	return opts, nil
}

// Scorer builds the configured pair scorer.
func (c *Config) Scorer() (scoring.PairScorer, error) {
	scheme, err := scoring.ParseScheme(c.Scoring.Scheme)
	if err != nil {
		return nil, err
	}
	topic := scoring.TopicWeights{
		PrimaryMatch:   c.Scoring.PrimaryMatch,
		SecondaryMatch: c.Scoring.SecondaryMatch,
	}

	var s interface {
		scoring.PairScorer
		Validate() error
	}
	switch scheme {
	case scoring.SchemeTiered:
		s = scoring.Tiered{
			MutualFirst: c.Scoring.MutualFirst,
			Mutual:      c.Scoring.Mutual,
			OneSided:    c.Scoring.OneSided,
			Topic:       topic,
		}
	default:
		s = scoring.Ranked{
			RankWeights: append([]float64(nil), c.Scoring.RankWeights...),
			Reciprocity: c.Scoring.Reciprocity,
			Topic:       topic,
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
