// Package doubt holds the value types shared by the rule catalog and the engine.
package doubt

import "errors"

var (
	// ErrNegativeDepth is returned when a pass is requested at depth < 0.
	ErrNegativeDepth = errors.New("depth must be non-negative")
	// ErrNegativeMaxDepth is returned when an engine is built with max_depth < 0.
	ErrNegativeMaxDepth = errors.New("max_depth must be non-negative")
)

// Doubt is a single generated question about a piece of text.
type Doubt struct {
	Category   Category `json:"category" yaml:"category"`
	Question   string   `json:"question" yaml:"question"`
	Confidence float64  `json:"confidence" yaml:"confidence"` // 0..1
}

// Result is the output of one engine invocation. Doubts keep rule evaluation
// order, followed by the doubts of any recursive passes.
type Result struct {
	Original string  `json:"original" yaml:"original"`
	Doubts   []Doubt `json:"doubts" yaml:"doubts"`
	Score    float64 `json:"doubt_score" yaml:"doubt_score"` // 0..1
	Insight  string  `json:"insight" yaml:"insight"`
	Depth    int     `json:"depth" yaml:"depth"`
}

// CategoryCounts tallies doubts per category.
func CategoryCounts(doubts []Doubt) map[Category]int {
	counts := make(map[Category]int, len(categoryOrder))
	for _, d := range doubts {
		counts[d.Category]++
	}
	return counts
}

// DistinctCategories returns how many different categories appear in doubts.
func DistinctCategories(doubts []Doubt) int {
	return len(CategoryCounts(doubts))
}

// AverageConfidence is the mean confidence of doubts, or 0 when empty.
func AverageConfidence(doubts []Doubt) float64 {
	if len(doubts) == 0 {
		return 0
	}
	var sum float64
	for _, d := range doubts {
		sum += d.Confidence
	}
	return sum / float64(len(doubts))
}

// Count returns the number of doubts in the given category.
func (r *Result) Count(c Category) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, d := range r.Doubts {
		if d.Category == c {
			n++
		}
	}
	return n
}

// CategoriesSeen lists the categories present in the result in catalog order.
func (r *Result) CategoriesSeen() []Category {
	if r == nil {
		return nil
	}
	counts := CategoryCounts(r.Doubts)
	var out []Category
	for _, c := range categoryOrder {
		if counts[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}
