// Package textnorm prepares free-form statements for keyword rules.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxRunes bounds how much of a statement is scanned.
const DefaultMaxRunes = 10000

var punctuation = strings.NewReplacer(
	"‘", "'", "’", "'", "‛", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// Normalize folds case, applies NFKC and collapses whitespace so that rule
// patterns only ever see one spelling of a word.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	out := norm.NFKC.String(s)
	out = punctuation.Replace(out)
	// Casers keep state; build one per call.
	out = cases.Fold().String(out)
	return strings.Join(strings.Fields(out), " ")
}

// Truncate cuts s to at most maxRunes runes without splitting a rune.
// A non-positive limit leaves s untouched.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || len(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// Words splits s into words made of letters, digits and inner apostrophes.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'')
	})
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
