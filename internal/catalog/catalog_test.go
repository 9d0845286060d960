package catalog

import (
	"regexp"
	"strings"
	"testing"

	"github.com/straja-ai/doubt/internal/doubt"
)

func TestRulePatternsCompile(t *testing.T) {
	for _, r := range RuleDefs() {
		if !r.Category.Valid() {
			t.Fatalf("rule %s has unknown category %q", r.ID, r.Category)
		}
		if r.Pattern == "" {
			continue
		}
		if _, err := regexp.Compile(r.Pattern); err != nil {
			t.Fatalf("rule %s pattern does not compile: %v", r.ID, err)
		}
	}
}

func TestEveryCategoryHasRules(t *testing.T) {
	seen := map[doubt.Category]bool{}
	for _, r := range RuleDefs() {
		seen[r.Category] = true
	}
	for _, c := range doubt.Categories() {
		if !seen[c] {
			t.Fatalf("no rule for category %s", c)
		}
	}
}

func TestEvaluateCategoryOrder(t *testing.T) {
	c := New(DefaultOptions())
	doubts := c.Evaluate("Obviously everyone knows AI is always better, but some studies say 40% disagree.", 1)

	rank := map[doubt.Category]int{}
	for i, cat := range doubt.Categories() {
		rank[cat] = i
	}
	for i := 1; i < len(doubts); i++ {
		if rank[doubts[i].Category] < rank[doubts[i-1].Category] {
			t.Fatalf("category %s emitted after %s", doubts[i].Category, doubts[i-1].Category)
		}
	}
}

func TestEvaluateRuleShapes(t *testing.T) {
	c := New(DefaultOptions())
	cases := []struct {
		name     string
		text     string
		depth    int
		category doubt.Category
		want     []string // substrings, in order
	}{
		{
			name:     "truth one per distinct qualifier",
			text:     "All cats are always, always cute and all dogs never bark",
			category: doubt.CategoryTruth,
			want:     []string{"'all'", "'always'", "'never'"},
		},
		{
			name:     "reflexive use is not an absolute claim",
			text:     "I always doubt what I read in the paper",
			category: doubt.CategoryTruth,
			want:     nil,
		},
		{
			name:     "words that only start with a reflexive verb",
			text:     "Critics are always doubtful and never questionable",
			category: doubt.CategoryTruth,
			want:     []string{"'always'", "'never'"},
		},
		{
			name:     "accented word is not a qualifier",
			text:     "Alléluia, chantons ensemble.",
			category: doubt.CategoryTruth,
			want:     nil,
		},
		{
			name:     "accented word is not a quantifier",
			text:     "Alléluia, chantons ensemble.",
			category: doubt.CategoryScope,
			want:     nil,
		},
		{
			name:     "qualifier glued to accented letters",
			text:     "Nous chantons étéall always",
			category: doubt.CategoryTruth,
			want:     []string{"'always'"},
		},
		{
			name:     "keyword inside accented word is not evidence",
			text:     "Ces dataé ne montrent rien",
			category: doubt.CategoryEvidence,
			want:     []string{"supported by evidence", "simply asserted"},
		},
		{
			name:     "assumptions one per occurrence left to right",
			text:     "Obviously we must act because time is short because of course it is",
			category: doubt.CategoryAssumptions,
			want:     []string{"'obviously'", "'must'", "'because'", "'because'", "'of course'"},
		},
		{
			name:     "completeness generic first then short",
			text:     "Cats rule",
			category: doubt.CategoryCompleteness,
			want:     []string{"missing context", "statement complete"},
		},
		{
			name:     "evidence stronger variant without evidence language",
			text:     "Coffee cures every illness known to people",
			category: doubt.CategoryEvidence,
			want:     []string{"supported by evidence", "simply asserted"},
		},
		{
			name:     "evidence language suppresses stronger variant",
			text:     "A large study shows coffee may reduce some risks",
			category: doubt.CategoryEvidence,
			want:     []string{"supported by evidence"},
		},
		{
			name:     "statistic without source",
			text:     "Recently 73% of people agreed with the proposal",
			category: doubt.CategoryEvidence,
			want:     []string{"supported by evidence", "simply asserted", "statistic"},
		},
		{
			name:     "contradiction then contrastive join",
			text:     "It is always true, but sometimes it is not",
			category: doubt.CategoryLogicalConsistency,
			want:     []string{"'always' and 'sometimes'", "'but'"},
		},
		{
			name:     "circular reasoning on repeated because",
			text:     "It works because it works because it does",
			category: doubt.CategoryLogicalConsistency,
			want:     []string{"circular"},
		},
		{
			name:     "temporal markers",
			text:     "Prices are currently high and will never drop",
			category: doubt.CategoryTemporalValidity,
			want:     []string{"'currently'", "'never'"},
		},
		{
			name:     "scope skips negated quantifier",
			text:     "Not all birds can fly over every mountain",
			category: doubt.CategoryScope,
			want:     []string{"'every'"},
		},
		{
			name:     "scope creep",
			text:     "We build and test and ship and support and market everything",
			category: doubt.CategoryScope,
			want:     []string{"too much", "'everything'"},
		},
		{
			name:     "context clarity dimensions in order",
			text:     "They said it would work and that those numbers were fine",
			category: doubt.CategoryContextClarity,
			want:     []string{"When does", "Where does", "subject"},
		},
		{
			name:     "emotional language needs more than one word",
			text:     "This amazing and brilliant plan is terrible for workers",
			category: doubt.CategoryBias,
			want:     []string{"emotional"},
		},
		{
			name:     "self awareness silent at depth zero",
			text:     "Can I question my own questions?",
			depth:    0,
			category: doubt.CategorySelfAwareness,
			want:     nil,
		},
		{
			name:     "self awareness at depth one",
			text:     "Is 'always' accurate? Can we verify this?",
			depth:    1,
			category: doubt.CategorySelfAwareness,
			want:     []string{"question my own questions", "doubt my doubts"},
		},
		{
			name:     "self awareness deepens at depth two",
			text:     "Is 'always' accurate?",
			depth:    2,
			category: doubt.CategorySelfAwareness,
			want:     []string{"question my own questions", "doubt my doubts", "stop revealing"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := questionsIn(c.Evaluate(tc.text, tc.depth), tc.category)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d %s doubts, got %d: %q", len(tc.want), tc.category, len(got), got)
			}
			for i, sub := range tc.want {
				if !strings.Contains(got[i], sub) {
					t.Fatalf("doubt %d = %q, want it to contain %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestEvaluateEmptyAndHostileInput(t *testing.T) {
	c := New(DefaultOptions())
	inputs := []string{
		"",
		"   \n\t ",
		"Всегда ли это правда? 🚀🚀🚀",
		"\xff\xfe broken bytes always",
		strings.Repeat("because all ", 5000),
	}
	for _, in := range inputs {
		doubts := c.Evaluate(in, 0)
		if len(questionsIn(doubts, doubt.CategoryCompleteness)) == 0 {
			t.Fatalf("expected a completeness doubt for %.20q", in)
		}
		if len(questionsIn(doubts, doubt.CategorySelfAwareness)) != 0 {
			t.Fatalf("self-awareness must not fire at depth 0 for %.20q", in)
		}
	}

	if got := c.Evaluate("", 0); len(questionsIn(got, doubt.CategoryContextClarity)) != 0 {
		t.Fatalf("blank input should not ask for clarification, got %d", len(got))
	}
}

func TestMaxPerCategoryCapsRepetitiveInput(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPerCategory = 5
	c := New(opts)

	doubts := c.Evaluate(strings.Repeat("because ", 3000), 0)
	if n := len(questionsIn(doubts, doubt.CategoryAssumptions)); n != 5 {
		t.Fatalf("expected assumptions capped at 5, got %d", n)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	c := New(DefaultOptions())
	text := "Everyone knows the best ideas always win, however data is scarce."
	first := c.Evaluate(text, 1)
	second := c.Evaluate(text, 1)
	if len(first) != len(second) {
		t.Fatalf("length changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("doubt %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestWordBounded(t *testing.T) {
	re := regexp.MustCompile(`\ball\b`)
	cases := []struct {
		text string
		want int
	}{
		{"all", 1},
		{"all of it, all!", 2},
		{"alléluia", 0},
		{"éall", 0},
		{"all_", 0},
		{"tall ball", 0},
		{"«all»", 1},
		{"vraiment all", 1},
	}
	for _, tc := range cases {
		if got := len(findWords(re, tc.text, -1)); got != tc.want {
			t.Fatalf("findWords(%q) = %d matches, want %d", tc.text, got, tc.want)
		}
	}

	stat := regexp.MustCompile(`\d+%`)
	if got := len(findWords(stat, "about 40% of us", -1)); got != 1 {
		t.Fatalf("statistic followed by a space should match, got %d", got)
	}
}

func questionsIn(doubts []doubt.Doubt, c doubt.Category) []string {
	var out []string
	for _, d := range doubts {
		if d.Category == c {
			out = append(out, d.Question)
		}
	}
	return out
}
