// Package tokenize splits text into alternating runs of name-candidate and
// non-candidate characters.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is a maximal run of characters that share the same classification.
type Segment struct {
	Text      string
	Candidate bool
}

// IsNameRune reports whether r may appear in a player name: a Unicode letter,
// a Unicode digit or an underscore.
func IsNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Split partitions text into segments whose classification alternates. Every
// byte of text appears in exactly one segment, in order, so joining the
// segments reproduces text. Empty input returns nil.
//
// For example " Hello    there!-This_is_100_percent_valid_" splits into
// " ", "Hello", "    ", "there", "!-", "This_is_100_percent_valid_".
func Split(text string) []Segment {
	if text == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(text)
	current := IsNameRune(first)

	var (
		segments []Segment
		start    int
	)

	for i, r := range text {
		if IsNameRune(r) == current {
			continue
		}
		segments = append(segments, Segment{Text: text[start:i], Candidate: current})
		start = i
		current = !current
	}

	return append(segments, Segment{Text: text[start:], Candidate: current})
}

// Join concatenates segment texts.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
