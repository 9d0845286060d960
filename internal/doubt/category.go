package doubt

import (
	"fmt"
	"strings"
)

// Category tags a doubt with the kind of scrutiny that produced it.
type Category string

const (
	CategoryTruth              Category = "truth"
	CategoryCompleteness       Category = "completeness"
	CategoryAssumptions        Category = "assumptions"
	CategoryBias               Category = "bias"
	CategoryEvidence           Category = "evidence"
	CategoryLogicalConsistency Category = "logical-consistency"
	CategoryContextClarity     Category = "context-clarity"
	CategoryTemporalValidity   Category = "temporal-validity"
	CategoryScope              Category = "scope"
	CategorySelfAwareness      Category = "self-awareness"
)

var categoryOrder = []Category{
	CategoryTruth,
	CategoryCompleteness,
	CategoryAssumptions,
	CategoryBias,
	CategoryEvidence,
	CategoryLogicalConsistency,
	CategoryContextClarity,
	CategoryTemporalValidity,
	CategoryScope,
	CategorySelfAwareness,
}

// Categories returns every category in evaluation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts the canonical tag, case-insensitively. Underscores are
// accepted in place of dashes ("logical_consistency").
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	c := Category(norm)
	if !c.Valid() {
		return "", fmt.Errorf("unknown doubt category %q", s)
	}
	return c, nil
}
