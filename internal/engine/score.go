package engine

import "github.com/straja-ai/doubt/internal/doubt"

// Score maps a doubt list to [0,1]. The count term grows linearly until
// Saturation doubts and then stays flat; the diversity term is the share of
// categories represented. Adding a doubt never lowers either term, so the
// score is non-decreasing in the doubt count.
func Score(doubts []doubt.Doubt, cfg ScoringConfig) float64 {
	if len(doubts) == 0 {
		return 0
	}
	saturation := cfg.Saturation
	if saturation < 1 {
		saturation = 1
	}

	count := float64(min(len(doubts), saturation)) / float64(saturation)
	diversity := float64(doubt.DistinctCategories(doubts)) / float64(len(doubt.Categories()))

	return clamp01(max(cfg.CountWeight, 0)*count + max(cfg.DiversityWeight, 0)*diversity)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
