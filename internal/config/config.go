package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds doubt engine configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

type EngineConfig struct {
	MaxDepth  int `yaml:"max_depth" env:"DOUBT_MAX_DEPTH"`   // 0 disables recursion
	Fanout    int `yaml:"fanout" env:"DOUBT_FANOUT"`         // doubts re-examined per pass
	MaxPasses int `yaml:"max_passes" env:"DOUBT_MAX_PASSES"` // catalog passes per top-level call
}

type ScoringConfig struct {
	Saturation      int     `yaml:"saturation" env:"DOUBT_SCORE_SATURATION"` // doubt count at which the count term saturates
	CountWeight     float64 `yaml:"count_weight" env:"DOUBT_SCORE_COUNT_WEIGHT"`
	DiversityWeight float64 `yaml:"diversity_weight" env:"DOUBT_SCORE_DIVERSITY_WEIGHT"`
}

type RulesConfig struct {
	MinWords       int `yaml:"min_words" env:"DOUBT_MIN_WORDS"`
	MaxInputRunes  int `yaml:"max_input_runes" env:"DOUBT_MAX_INPUT_RUNES"`
	MaxPerCategory int `yaml:"max_per_category" env:"DOUBT_MAX_PER_CATEGORY"`
}

type BatchConfig struct {
	Workers   int `yaml:"workers" env:"DOUBT_BATCH_WORKERS"`
	CacheSize int `yaml:"cache_size" env:"DOUBT_CACHE_SIZE"` // 0 disables memoization
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"DOUBT_LOG_LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" env:"DOUBT_LOG_FORMAT"` // json | console
}

// Load reads configuration from a YAML file and applies DOUBT_* environment
// overrides. If the file doesn't exist, defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			// Unmarshal over the defaults so that an explicit zero
			// (max_depth: 0) survives.
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

// ApplyEnv overrides cfg fields from DOUBT_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxDepth:  1,
			Fanout:    1,
			MaxPasses: 32,
		},
		Scoring: ScoringConfig{
			Saturation:      12,
			CountWeight:     0.75,
			DiversityWeight: 0.25,
		},
		Rules: RulesConfig{
			MinWords:       6,
			MaxInputRunes:  10000,
			MaxPerCategory: 25,
		},
		Batch: BatchConfig{
			Workers:   4,
			CacheSize: 1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Engine.Fanout == 0 {
		cfg.Engine.Fanout = 1
	}
	if cfg.Engine.MaxPasses == 0 {
		cfg.Engine.MaxPasses = 32
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 4
	}
}

// Marshal renders cfg as YAML, the same shape Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
