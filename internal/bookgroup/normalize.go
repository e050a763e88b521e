// Package bookgroup groups user-submitted quotes by the book they belong to.
//
// There is no first-class book entity anywhere in the system: a "book" is an
// emergent grouping over free-text titles typed by users. This package owns
// the one normalization and aggregation implementation shared by every
// surface that needs per-book grouping (export, rankings, shelf, activity),
// so all of them report the same book counts.
package bookgroup

import (
	"regexp"
	"strings"
)

// keyMaxRunes caps the normalized key length. Cleaned titles that share the
// same first 10 runes collapse into one group.
const keyMaxRunes = 10

var (
	whitespaceRE = regexp.MustCompile(`[\s\p{Z}]+`)

	// Keeps ASCII word characters and Hangul syllables (U+AC00..U+D7A3).
	// Hangul jamo, CJK ideographs and accented letters are stripped, so
	// titles written only in those collapse toward the empty key.
	nonKeyRE = regexp.MustCompile(`[^0-9A-Za-z_\x{AC00}-\x{D7A3}]`)
)

// Normalize reduces a raw title or author to its comparison key: whitespace
// removed, everything except word characters and Hangul syllables stripped,
// lower-cased, truncated to the first 10 runes.
//
// Normalize is pure and total. Empty input, or input consisting only of
// whitespace and punctuation, yields the empty string. The result is meant
// for equality comparison only and is never shown to users.
func Normalize(raw string) string {
	s := whitespaceRE.ReplaceAllString(raw, "")
	s = nonKeyRE.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	runes := []rune(s)
	if len(runes) > keyMaxRunes {
		runes = runes[:keyMaxRunes]
	}
	return string(runes)
}

// GroupKey builds the composite bucket key for a quote. The author part is
// appended only when a raw author was supplied at all; an author that
// normalizes to empty still contributes the separator, so "title by
// unrecognizable author" and "title with no author" stay distinct buckets.
func GroupKey(title, author string) string {
	if author == "" {
		return Normalize(title)
	}
	return Normalize(title) + "-" + Normalize(author)
}
