// internal/word/provider.go
package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Span marks a word's rune extent within a text: [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Provider supplies word boundary scanning. Offsets are rune offsets into the
// text. Hosts with their own word rules (syntax-aware, locale-specific) can
// inject an implementation; Unicode is the default.
type Provider interface {
	// WordAt returns the span of the word containing or following offset.
	// ok is false when no word starts at or after offset.
	WordAt(text string, offset int) (Span, bool)
	// WordBefore returns the span of the last word starting before offset.
	// ok is false when no word starts before offset.
	WordBefore(text string, offset int) (Span, bool)
}

// Unicode is a Provider built on Unicode text segmentation (UAX #29).
// Whitespace and punctuation segments are not words; a segment qualifies when
// it contains at least one letter or digit.
type Unicode struct{}

// WordAt implements Provider.
func (Unicode) WordAt(text string, offset int) (Span, bool) {
	for _, span := range segment(text) {
		if span.End > offset {
			return span, true
		}
	}
	return Span{}, false
}

// WordBefore implements Provider.
func (Unicode) WordBefore(text string, offset int) (Span, bool) {
	var found Span
	ok := false
	for _, span := range segment(text) {
		if span.Start >= offset {
			break
		}
		found = span
		ok = true
	}
	return found, ok
}

// segment scans the whole text and returns the spans of all words in order.
func segment(text string) []Span {
	var spans []Span
	state := -1
	offset := 0
	for rest := text; len(rest) > 0; {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(seg)
		if isWord(seg) {
			spans = append(spans, Span{Start: offset, End: offset + n})
		}
		offset += n
	}
	return spans
}

// isWord reports whether a segment counts as a word rather than a whitespace
// or punctuation run.
func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var _ Provider = Unicode{}
