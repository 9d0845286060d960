package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/straja-ai/doubt/internal/doubt"
)

const (
	// MaxFanout bounds how many doubts a pass re-examines.
	MaxFanout = 5
	// MaxPassesLimit bounds engine.max_passes.
	MaxPassesLimit = 1024
)

// Validate checks the loaded config for safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if err := validateEngineConfig(cfg.Engine); err != nil {
		return err
	}
	if err := validateScoringConfig(cfg.Scoring); err != nil {
		return err
	}
	if err := validateRulesConfig(cfg.Rules); err != nil {
		return err
	}
	if err := validateBatchConfig(cfg.Batch); err != nil {
		return err
	}
	return validateLoggingConfig(cfg.Logging)
}

func validateEngineConfig(e EngineConfig) error {
	if e.MaxDepth < 0 {
		return fmt.Errorf("engine.max_depth %d: %w", e.MaxDepth, doubt.ErrNegativeMaxDepth)
	}
	if e.Fanout < 1 || e.Fanout > MaxFanout {
		return fmt.Errorf("engine.fanout must be between 1 and %d, got %d", MaxFanout, e.Fanout)
	}
	if e.MaxPasses < 1 || e.MaxPasses > MaxPassesLimit {
		return fmt.Errorf("engine.max_passes must be between 1 and %d, got %d", MaxPassesLimit, e.MaxPasses)
	}
	return nil
}

func validateScoringConfig(s ScoringConfig) error {
	if s.Saturation < 1 {
		return fmt.Errorf("scoring.saturation must be at least 1, got %d", s.Saturation)
	}
	if s.CountWeight < 0 || s.DiversityWeight < 0 {
		return errors.New("scoring.count_weight and scoring.diversity_weight must be non-negative")
	}
	if s.CountWeight+s.DiversityWeight == 0 {
		return errors.New("scoring weights must not both be zero")
	}
	return nil
}

func validateRulesConfig(r RulesConfig) error {
	if r.MinWords < 0 {
		return fmt.Errorf("rules.min_words must be non-negative, got %d", r.MinWords)
	}
	if r.MaxInputRunes < 0 {
		return fmt.Errorf("rules.max_input_runes must be non-negative, got %d", r.MaxInputRunes)
	}
	if r.MaxPerCategory < 0 {
		return fmt.Errorf("rules.max_per_category must be non-negative, got %d", r.MaxPerCategory)
	}
	return nil
}

func validateBatchConfig(b BatchConfig) error {
	if b.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", b.Workers)
	}
	if b.CacheSize < 0 {
		return fmt.Errorf("batch.cache_size must be non-negative, got %d", b.CacheSize)
	}
	return nil
}

func validateLoggingConfig(l LoggingConfig) error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", l.Format)
	}
	return nil
}
