package doubt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"truth", CategoryTruth},
		{" Scope ", CategoryScope},
		{"logical_consistency", CategoryLogicalConsistency},
		{"SELF-AWARENESS", CategorySelfAwareness},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseCategory("vibes")
	assert.Error(t, err)
}

func TestCategoriesOrderIsFixed(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 10)
	assert.Equal(t, CategoryTruth, cats[0])
	assert.Equal(t, CategorySelfAwareness, cats[len(cats)-1])

	// callers get a copy
	cats[0] = "mutated"
	assert.Equal(t, CategoryTruth, Categories()[0])
}

func TestResultHelpers(t *testing.T) {
	r := &Result{Doubts: []Doubt{
		{Category: CategoryScope, Confidence: 0.7},
		{Category: CategoryTruth, Confidence: 0.5},
		{Category: CategoryScope, Confidence: 0.3},
	}}

	assert.Equal(t, 2, r.Count(CategoryScope))
	assert.Equal(t, 0, r.Count(CategoryBias))
	assert.Equal(t, 2, DistinctCategories(r.Doubts))
	assert.Equal(t, []Category{CategoryTruth, CategoryScope}, r.CategoriesSeen())
	assert.InDelta(t, 0.5, AverageConfidence(r.Doubts), 1e-9)
	assert.Zero(t, AverageConfidence(nil))

	var nilResult *Result
	assert.Zero(t, nilResult.Count(CategoryTruth))
}
