// Package catalog holds the categorized heuristic rules that turn a statement
// into doubt questions. A Catalog is compiled once and is read-only afterwards,
// so a single instance can serve any number of goroutines.
package catalog

import (
	"sort"

	"github.com/straja-ai/doubt/internal/doubt"
	"github.com/straja-ai/doubt/internal/textnorm"
)

// Options tunes the heuristics that depend on thresholds.
type Options struct {
	// MinWords below which a statement is flagged as likely incomplete.
	MinWords int
	// MaxInputRunes bounds how much of a statement is scanned; 0 disables.
	MaxInputRunes int
	// MaxPerCategory caps findings per category for one pass; 0 disables.
	MaxPerCategory int
}

// DefaultOptions returns the thresholds used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinWords:       6,
		MaxInputRunes:  textnorm.DefaultMaxRunes,
		MaxPerCategory: 25,
	}
}

// Catalog is the ordered, compiled rule set.
type Catalog struct {
	opts       Options
	byCategory map[doubt.Category][]rule
}

// scan is the per-pass view of a statement that every rule reads.
type scan struct {
	text     string
	words    []string
	blank    bool
	depth    int
	minWords int
}

type finding struct {
	offset     int
	question   string
	confidence float64
}

// New compiles the rule table.
func New(opts Options) *Catalog {
	c := &Catalog{
		opts:       opts,
		byCategory: make(map[doubt.Category][]rule),
	}
	for _, r := range compileRules(ruleDefs()) {
		c.byCategory[r.Category] = append(c.byCategory[r.Category], r)
	}
	return c
}

// Options returns the thresholds the catalog was built with.
func (c *Catalog) Options() Options { return c.opts }

// Evaluate runs every category over text at the given recursion depth and
// returns the concatenated doubts in category order. Within a category doubts
// follow the position of what triggered them, left to right.
func (c *Catalog) Evaluate(text string, depth int) []doubt.Doubt {
	normalized := textnorm.Normalize(textnorm.Truncate(text, c.opts.MaxInputRunes))
	s := &scan{
		text:     normalized,
		words:    textnorm.Words(normalized),
		blank:    textnorm.IsBlank(normalized),
		depth:    depth,
		minWords: c.opts.MinWords,
	}

	var out []doubt.Doubt
	for _, category := range doubt.Categories() {
		out = append(out, c.evaluateCategory(category, s)...)
	}
	return out
}

func (c *Catalog) evaluateCategory(category doubt.Category, s *scan) []doubt.Doubt {
	var findings []finding
	for _, r := range c.byCategory[category] {
		findings = append(findings, r.apply(s)...)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].offset < findings[j].offset
	})
	if c.opts.MaxPerCategory > 0 && len(findings) > c.opts.MaxPerCategory {
		findings = findings[:c.opts.MaxPerCategory]
	}

	out := make([]doubt.Doubt, 0, len(findings))
	for _, f := range findings {
		out = append(out, doubt.Doubt{
			Category:   category,
			Question:   f.question,
			Confidence: f.confidence,
		})
	}
	return out
}

func (r rule) apply(s *scan) []finding {
	if r.Probe != nil {
		offset, ok := r.Probe(s)
		if !ok {
			return nil
		}
		return []finding{{offset: offset, question: r.Question, confidence: r.Confidence}}
	}
	if r.re == nil || s.blank {
		return nil
	}

	var out []finding
	seen := map[string]struct{}{}
	for _, loc := range findWords(r.re, s.text, -1) {
		if r.Skip != nil && r.Skip(s, loc[0], loc[1]) {
			continue
		}
		term := s.text[loc[0]:loc[1]]
		if r.Mode == eachDistinct {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
		}
		out = append(out, finding{
			offset:     loc[0],
			question:   formatQuestion(r.Question, term),
			confidence: r.Confidence,
		})
	}
	return out
}
