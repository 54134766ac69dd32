package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalize canonicalizes text for strict command matching: lowercase, NFKD
// decomposition, then only letters, digits, whitespace and - + . # survive
// (keeps tokens like "C#", "C++", "Node.js" intact). Diacritics decompose
// into combining marks, which are dropped, so "Iași" matches "iasi".
// Whitespace runs collapse to single spaces and the ends are trimmed.
func normalize(s string) string {
	decomposed := norm.NFKD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' || r == '+' || r == '.' || r == '#':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func equalsAny(s string, list []string) bool {
	n := normalize(s)
	for _, x := range list {
		if n == normalize(x) {
			return true
		}
	}
	return false
}

// hasExactTech reports whether arr contains tech under normalized comparison.
// Exact matches only, no substring or fuzzy matching.
func hasExactTech(arr []string, tech string) bool {
	t := normalize(tech)
	for _, x := range arr {
		if normalize(x) == t {
			return true
		}
	}
	return false
}
