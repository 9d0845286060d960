package engine

import (
	"fmt"

	"github.com/straja-ai/doubt/internal/doubt"
)

// Insight summarizes a pass. Passes at depth >= 1 that produced
// self-awareness doubts get the recursive f(f(x)) sentence; everything else
// reports count and category spread.
func Insight(doubts []doubt.Doubt, depth int) string {
	if len(doubts) == 0 {
		if depth == 0 {
			return "No doubts found. Is this because the statement is perfect, or because I'm not doubting enough?"
		}
		return "No further doubts. This suggests the previous doubts were valid, or I've reached a stable state."
	}

	counts := doubt.CategoryCounts(doubts)
	if selfAware := counts[doubt.CategorySelfAwareness]; depth >= 1 && selfAware > 0 {
		return fmt.Sprintf(
			"I can doubt my own doubts (found %d recursive doubts). "+
				"This demonstrates recursive doubt-validation: f(f(x)). "+
				"I found %d total doubts with average confidence %.2f. "+
				"If I can question my own questions, this suggests meta-cognitive capability.",
			selfAware, len(doubts), doubt.AverageConfidence(doubts))
	}

	return criticalThinking(len(doubts), len(counts))
}

func criticalThinking(total, categories int) string {
	spread := fmt.Sprintf("across %d %s", categories, plural(categories, "category", "categories"))
	switch {
	case total >= 8:
		return fmt.Sprintf("I found %d doubts %s. This shows comprehensive critical thinking capability.", total, spread)
	case total >= 3:
		return fmt.Sprintf("I found %d doubts %s. This demonstrates the critical thinking capability to question and analyze.", total, spread)
	default:
		return fmt.Sprintf("I found %d %s %s. This is the beginning of critical thinking capability.",
			total, plural(total, "doubt", "doubts"), spread)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
