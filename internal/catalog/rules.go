package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/straja-ai/doubt/internal/doubt"
)

type matchMode int

const (
	// eachOccurrence emits one finding per match, left to right.
	eachOccurrence matchMode = iota
	// eachDistinct emits one finding per distinct matched term.
	eachDistinct
)

// unconditional sorts a probe finding ahead of every text match.
const unconditional = -1

type rule struct {
	ID         string
	Category   doubt.Category
	Pattern    string
	Mode       matchMode
	Question   string // %s receives the matched term
	Confidence float64
	// Skip drops a single match at text[start:end].
	Skip func(s *scan, start, end int) bool
	// Probe replaces Pattern for rules that judge the statement as a whole.
	// It returns the offset the finding sorts at.
	Probe func(s *scan) (offset int, ok bool)
	re    *regexp.Regexp
}

// Rule exposes a rule definition for listings (no compiled regex).
type Rule struct {
	ID         string
	Category   doubt.Category
	Pattern    string
	Question   string
	Confidence float64
}

var (
	reVague      = regexp.MustCompile(`\b(?:maybe|perhaps|might|could|possibly|somewhat|kind of|sort of|probably)\b`)
	reEmotional  = regexp.MustCompile(`\b(?:amazing|terrible|horrible|fantastic|awful|brilliant|stupid|idiotic|disgusting|wonderful|pathetic|outrageous|incredible)\b`)
	reEvidence   = regexp.MustCompile(`\b(?:study|studies|research|data|evidence|proof|shows|showed|demonstrates|demonstrated|according to|source|sources|cited|citation|survey|experiment|measured|suggests|may|might|likely|appears|reportedly)\b`)
	reStatistic  = regexp.MustCompile(`\d+(?:[.,]\d+)?\s?%|\bpercent\b`)
	reSourced    = regexp.MustCompile(`\b(?:study|studies|research|source|sources|survey|according to)\b`)
	reBecause    = regexp.MustCompile(`\bbecause\b`)
	reAnd        = regexp.MustCompile(`\band\b`)
	reTime       = regexp.MustCompile(`\b(?:today|yesterday|tomorrow|now|currently|recently|nowadays|since|until|during|when|while|before|after|then|year|years|month|months|week|weeks|day|days|century|decade|era|period|\d{4}s?)\b`)
	rePlace      = regexp.MustCompile(`\b(?:here|there|where|country|countries|city|cities|region|regions|local|locally|global|globally|worldwide|nation|national|international|abroad|area|state|continent|europe|asia|africa|america|world)\b`)
	reReflexive  = regexp.MustCompile(`^\s+(?:doubt|question)\b`)
	reNegatedEnd = regexp.MustCompile(`\bnot\s+$`)
)

var pronouns = map[string]struct{}{
	"it": {}, "this": {}, "that": {}, "they": {}, "them": {}, "these": {},
	"those": {}, "he": {}, "she": {}, "something": {}, "someone": {},
}

type pair struct{ first, second string }

var contradictionPairs = []pair{
	{"always", "sometimes"},
	{"never", "sometimes"},
	{"always", "never"},
	{"all", "some"},
	{"none", "some"},
	{"proven", "might"},
	{"certain", "uncertain"},
}

func ruleDefs() []rule {
	defs := []rule{
		{ID: "absolute_qualifier", Category: doubt.CategoryTruth, Mode: eachDistinct, Confidence: 0.7,
			Pattern:  `\b(?:always|never|all|none|every|impossible|proven|definitely|certainly|undeniabl[ey]|unquestionabl[ey]|absolutely|guaranteed|best|worst|perfect|completely|totally)\b`,
			Question: "Is '%s' accurate? Can we verify this?",
			Skip:     reflexiveUse},

		{ID: "missing_context", Category: doubt.CategoryCompleteness, Confidence: 0.4,
			Question: "Is there missing context or information?",
			Probe:    always},
		{ID: "short_statement", Category: doubt.CategoryCompleteness, Confidence: 0.5,
			Question: "Is this statement complete? What context is missing from such a short claim?",
			Probe:    shortStatement},
		{ID: "too_many_hedges", Category: doubt.CategoryCompleteness, Confidence: 0.6,
			Question: "Are there too many uncertainties? What would make this more certain?",
			Probe:    distinctAbove(reVague, 2)},

		{ID: "presumptive_connective", Category: doubt.CategoryAssumptions, Mode: eachOccurrence, Confidence: 0.6,
			Pattern:  `\b(?:because|obviously|clearly|of course|naturally|everyone knows|it goes without saying|needless to say|therefore|thus|hence)\b`,
			Question: "What assumption is hidden behind '%s'?"},
		{ID: "normative_claim", Category: doubt.CategoryAssumptions, Mode: eachOccurrence, Confidence: 0.5,
			Pattern:  `\b(?:should|must|ought to|have to|need to)\b`,
			Question: "What values or norms are being assumed by '%s'?"},

		{ID: "loaded_term", Category: doubt.CategoryBias, Mode: eachOccurrence, Confidence: 0.7,
			Pattern:  `\b(?:obviously wrong|clearly false|proven fact|undeniable|any reasonable person|only a fool|common sense)\b`,
			Question: "Is '%s' a loaded term that assumes a conclusion?"},
		{ID: "one_sided_framing", Category: doubt.CategoryBias, Mode: eachOccurrence, Confidence: 0.5,
			Pattern:  `\b(?:they always|they never|we know|they don't understand|those people|us (?:versus|vs\.?) them)\b`,
			Question: "Whose perspective is missing behind '%s'? Is there an 'us vs them' framing?"},
		{ID: "emotional_language", Category: doubt.CategoryBias, Confidence: 0.6,
			Question: "Is emotional language affecting objectivity? What would a neutral observer say?",
			Probe:    distinctAbove(reEmotional, 1)},

		{ID: "evidence_support", Category: doubt.CategoryEvidence, Confidence: 0.5,
			Question: "Is this claim supported by evidence?",
			Probe:    always},
		{ID: "unsupported_assertion", Category: doubt.CategoryEvidence, Confidence: 0.6,
			Question: "Is there sufficient evidence to support this claim, or is it simply asserted?",
			Probe:    lacks(reEvidence)},
		{ID: "unsourced_statistic", Category: doubt.CategoryEvidence, Confidence: 0.7,
			Question: "Where does this statistic come from? Is the source reliable?",
			Probe:    unsourcedStatistic},
	}

	for _, p := range contradictionPairs {
		defs = append(defs, rule{
			ID:         "contradiction_" + p.first + "_" + p.second,
			Category:   doubt.CategoryLogicalConsistency,
			Confidence: 0.8,
			Question:   fmt.Sprintf("Is there a contradiction between '%s' and '%s'?", p.first, p.second),
			Probe:      bothPresent(p),
		})
	}

	defs = append(defs, []rule{
		{ID: "contrastive_join", Category: doubt.CategoryLogicalConsistency, Mode: eachOccurrence, Confidence: 0.5,
			Pattern:  `\b(?:but|however|yet|although|though|whereas|nevertheless)\b`,
			Question: "Do the claims joined by '%s' stay consistent with each other?"},
		{ID: "circular_reasoning", Category: doubt.CategoryLogicalConsistency, Confidence: 0.5,
			Question: "Is there potential circular reasoning?",
			Probe:    nthMatch(reBecause, 2)},

		{ID: "missing_time", Category: doubt.CategoryContextClarity, Confidence: 0.4,
			Question: "When does this apply? Is there a time frame that would clarify it?",
			Probe:    lacksInContent(reTime)},
		{ID: "missing_place", Category: doubt.CategoryContextClarity, Confidence: 0.4,
			Question: "Where does this apply? Does the claim depend on a particular place or setting?",
			Probe:    lacksInContent(rePlace)},
		{ID: "vague_subject", Category: doubt.CategoryContextClarity, Confidence: 0.5,
			Question: "Who or what exactly is the subject here? Are the references clear?",
			Probe:    vagueSubject},

		{ID: "permanence_marker", Category: doubt.CategoryTemporalValidity, Mode: eachDistinct, Confidence: 0.6,
			Pattern:  `\b(?:always|never|forever|permanently|eternally|invariably|for good|no longer)\b`,
			Question: "Does '%s' hold across all time? Could circumstances change?"},
		{ID: "recency_marker", Category: doubt.CategoryTemporalValidity, Mode: eachDistinct, Confidence: 0.4,
			Pattern:  `\b(?:now|currently|nowadays|recently|today|these days|at the moment|still)\b`,
			Question: "Is '%s' still accurate? Has the situation changed since this was said?"},

		{ID: "universal_quantifier", Category: doubt.CategoryScope, Mode: eachDistinct, Confidence: 0.7,
			Pattern:  `\b(?:all|every|everyone|everybody|everything|none|nobody|nothing|no one|each)\b`,
			Question: "Does '%s' apply universally? Are there exceptions?",
			Skip:     negated},
		{ID: "scope_creep", Category: doubt.CategoryScope, Confidence: 0.4,
			Question: "Is this trying to cover too much? Should it be more focused?",
			Probe:    nthMatch(reAnd, 4)},

		{ID: "question_own_questions", Category: doubt.CategorySelfAwareness, Confidence: 0.9,
			Question: "Can I question my own questions? Is this recursive doubt?",
			Probe:    atDepth(1)},
		{ID: "doubt_own_doubts", Category: doubt.CategorySelfAwareness, Confidence: 0.85,
			Question: "If I can doubt my doubts, what does this reveal about my capabilities?",
			Probe:    atDepth(1)},
		{ID: "regress_limit", Category: doubt.CategorySelfAwareness, Confidence: 0.8,
			Question: "Where does doubting my doubts stop revealing anything new?",
			Probe:    atDepth(2)},
	}...)

	return defs
}

// RuleDefs returns the rule definitions in evaluation order.
func RuleDefs() []Rule {
	defs := ruleDefs()
	out := make([]Rule, 0, len(defs))
	for _, d := range defs {
		out = append(out, Rule{
			ID:         d.ID,
			Category:   d.Category,
			Pattern:    d.Pattern,
			Question:   d.Question,
			Confidence: d.Confidence,
		})
	}
	return out
}

func compileRules(rules []rule) []rule {
	for i := range rules {
		if rules[i].Pattern == "" {
			continue
		}
		rules[i].re = compileRuleRegex(rules[i])
	}
	return rules
}

func compileRuleRegex(r rule) *regexp.Regexp {
	re, err := regexp.Compile(r.Pattern)
	if err == nil {
		return re
	}
	// never matches
	return regexp.MustCompile("a^")
}

func always(*scan) (int, bool) { return unconditional, true }

func shortStatement(s *scan) (int, bool) {
	return unconditional, len(s.words) < s.minWords
}

func lacks(re *regexp.Regexp) func(*scan) (int, bool) {
	return func(s *scan) (int, bool) {
		return unconditional, !containsWord(re, s.text)
	}
}

// lacksInContent is lacks for rules that have nothing to say about blank text.
func lacksInContent(re *regexp.Regexp) func(*scan) (int, bool) {
	return func(s *scan) (int, bool) {
		if s.blank {
			return 0, false
		}
		return unconditional, !containsWord(re, s.text)
	}
}

func distinctAbove(re *regexp.Regexp, threshold int) func(*scan) (int, bool) {
	return func(s *scan) (int, bool) {
		locs := findWords(re, s.text, -1)
		seen := map[string]struct{}{}
		for _, loc := range locs {
			seen[s.text[loc[0]:loc[1]]] = struct{}{}
		}
		if len(seen) <= threshold {
			return 0, false
		}
		return locs[0][0], true
	}
}

// nthMatch fires at the n-th occurrence of re.
func nthMatch(re *regexp.Regexp, n int) func(*scan) (int, bool) {
	return func(s *scan) (int, bool) {
		locs := findWords(re, s.text, n)
		if len(locs) < n {
			return 0, false
		}
		return locs[n-1][0], true
	}
}

func bothPresent(p pair) func(*scan) (int, bool) {
	first := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.first) + `\b`)
	second := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.second) + `\b`)
	return func(s *scan) (int, bool) {
		locs := findWords(first, s.text, 1)
		if len(locs) == 0 || !containsWord(second, s.text) {
			return 0, false
		}
		return locs[0][0], true
	}
}

func unsourcedStatistic(s *scan) (int, bool) {
	locs := findWords(reStatistic, s.text, 1)
	if len(locs) == 0 || containsWord(reSourced, s.text) {
		return 0, false
	}
	return locs[0][0], true
}

func vagueSubject(s *scan) (int, bool) {
	if s.blank || len(s.words) == 0 {
		return 0, false
	}
	if _, ok := pronouns[s.words[0]]; ok {
		return unconditional, true
	}
	n := 0
	for _, w := range s.words {
		if _, ok := pronouns[w]; ok {
			n++
		}
	}
	return unconditional, n > 3 && len(s.words) < 50
}

func atDepth(minDepth int) func(*scan) (int, bool) {
	return func(s *scan) (int, bool) {
		return unconditional, s.depth >= minDepth
	}
}

// reflexiveUse skips "always doubt" / "never question": the statement is about
// questioning itself, not an absolute claim.
func reflexiveUse(s *scan, start, end int) bool {
	return containsWord(reReflexive, s.text[end:])
}

// negated skips quantifiers directly preceded by "not" ("not all").
func negated(s *scan, start, end int) bool {
	return containsWord(reNegatedEnd, s.text[:start])
}

// findWords is FindAllStringIndex restricted to matches that are whole words
// in Unicode terms. RE2's \b only knows ASCII word characters, so "all" would
// otherwise match inside "alléluia". n < 0 returns every match.
func findWords(re *regexp.Regexp, text string, n int) [][]int {
	var out [][]int
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if n >= 0 && len(out) == n {
			break
		}
		if wordBounded(text, loc[0], loc[1]) {
			out = append(out, loc)
		}
	}
	return out
}

func containsWord(re *regexp.Regexp, text string) bool {
	return len(findWords(re, text, 1)) > 0
}

// wordBounded reports whether text[start:end] is not glued to a neighbouring
// letter or digit. Edges of the match that are not word runes themselves
// (whitespace, "%") never need a boundary.
func wordBounded(text string, start, end int) bool {
	if start >= end {
		return true
	}
	if start > 0 {
		first, _ := utf8.DecodeRuneInString(text[start:])
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(first) && isWordRune(prev) {
			return false
		}
	}
	if end < len(text) {
		last, _ := utf8.DecodeLastRuneInString(text[:end])
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(last) && isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func formatQuestion(template, term string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, term)
}
