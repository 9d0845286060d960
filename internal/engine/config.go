package engine

import (
	"github.com/straja-ai/doubt/internal/catalog"
	"github.com/straja-ai/doubt/internal/config"
)

// Config controls recursion and scoring for an Engine.
type Config struct {
	// MaxDepth is the recursion ceiling; 0 disables recursion.
	MaxDepth int
	// Fanout is how many of a pass's doubts are re-examined one level deeper.
	// With the default of 1 a top-level call makes at most MaxDepth nested
	// passes. Larger values branch, so the total is bounded by MaxPasses
	// instead.
	Fanout int
	// MaxPasses caps the catalog passes, top level included, made by one
	// top-level call. Expansion stops once it is spent.
	MaxPasses int
	Scoring   ScoringConfig
	Rules     catalog.Options
}

// DefaultMaxPasses is the per-call pass budget when none is configured.
const DefaultMaxPasses = 32

// ScoringConfig shapes the saturating doubt score.
type ScoringConfig struct {
	Saturation      int
	CountWeight     float64
	DiversityWeight float64
}

// DefaultConfig is a one-level f(f(x)) engine.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  1,
		Fanout:    1,
		MaxPasses: DefaultMaxPasses,
		Scoring:   DefaultScoring(),
		Rules:     catalog.DefaultOptions(),
	}
}

// DefaultScoring saturates at a dozen doubts and gives a quarter of the
// weight to category diversity.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		Saturation:      12,
		CountWeight:     0.75,
		DiversityWeight: 0.25,
	}
}

// FromConfig maps file/env configuration onto engine settings.
func FromConfig(cfg config.Config) Config {
	out := Config{
		MaxDepth:  cfg.Engine.MaxDepth,
		Fanout:    cfg.Engine.Fanout,
		MaxPasses: cfg.Engine.MaxPasses,
		Scoring: ScoringConfig{
			Saturation:      cfg.Scoring.Saturation,
			CountWeight:     cfg.Scoring.CountWeight,
			DiversityWeight: cfg.Scoring.DiversityWeight,
		},
		Rules: catalog.Options{
			MinWords:       cfg.Rules.MinWords,
			MaxInputRunes:  cfg.Rules.MaxInputRunes,
			MaxPerCategory: cfg.Rules.MaxPerCategory,
		},
	}
	return applyDefaults(out)
}

func applyDefaults(cfg Config) Config {
	if cfg.Fanout < 1 {
		cfg.Fanout = 1
	}
	if cfg.MaxPasses < 1 {
		cfg.MaxPasses = DefaultMaxPasses
	}
	if cfg.Scoring.Saturation < 1 {
		cfg.Scoring.Saturation = DefaultScoring().Saturation
	}
	if cfg.Scoring.CountWeight <= 0 && cfg.Scoring.DiversityWeight <= 0 {
		def := DefaultScoring()
		cfg.Scoring.CountWeight = def.CountWeight
		cfg.Scoring.DiversityWeight = def.DiversityWeight
	}
	return cfg
}
