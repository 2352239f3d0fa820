package wordfreq

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Spans yields the byte range of every token in text, left to right.
// A token is a maximal run of letters and digits; any other rune, including
// invalid UTF-8, separates tokens.
func Spans(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start := -1
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if isWordRune(r, size) {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				if !yield(Span{Start: start, End: i}) {
					return
				}
				start = -1
			}
			i += size
		}
		if start >= 0 {
			yield(Span{Start: start, End: len(text)})
		}
	}
}

// Tokens yields the lower-cased tokens of text in order of appearance.
// Lowering is rune by rune, so a token keeps its length in runes and never
// gains a character that is not a letter or digit.
func Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for span := range Spans(text) {
			if !yield(Token(strings.ToLower(text[span.Start:span.End]))) {
				return
			}
		}
	}
}

// CountTokens returns the number of tokens in text.
func CountTokens(text string) int {
	n := 0
	for range Spans(text) {
		n++
	}
	return n
}

func isWordRune(r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
