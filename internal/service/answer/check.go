// Package answer judges typed answers against a card's back side.
package answer

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match describes how a typed answer matched the expected one.
type Match string

const (
	MatchExact    Match = "exact"
	MatchLenient  Match = "lenient"
	MatchMismatch Match = "mismatch"
)

// Correct reports whether the match counts as a correct answer.
func (m Match) Correct() bool {
	return m == MatchExact || m == MatchLenient
}

// Separator splits alternative accepted answers on a card's back side.
const Separator = ";"

// Check compares given with expected, ignoring case and surrounding
// whitespace. expected may list alternatives separated by ";". An exact match
// on any alternative wins over a lenient one, which allows up to threshold
// edits. A negative threshold disables lenient matching.
func Check(given, expected string, threshold int) Match {
	answer := normalize(given)
	alternatives := Alternatives(expected)

	for _, alt := range alternatives {
		if answer == alt {
			return MatchExact
		}
	}

	if threshold < 0 {
		return MatchMismatch
	}
	for _, alt := range alternatives {
		if levenshtein.ComputeDistance(answer, alt) <= threshold {
			return MatchLenient
		}
	}

	return MatchMismatch
}

// Alternatives returns the normalized accepted answers listed in expected.
func Alternatives(expected string) []string {
	parts := strings.Split(expected, Separator)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = normalize(p)
	}
	return out
}

// normalize lowercases s and collapses runs of whitespace into one space.
// Diacritics, hyphens and apostrophes are preserved.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
