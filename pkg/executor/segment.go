package executor

import (
	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

/*
Segmenting walks the text twice:

1. count every token (W),
2. cut before the first token of each new segment.

The first n-1 segments hold ceil(W/n) tokens and the last one the rest.
When that would leave the last segment empty (W=9, n=6) the tokens are
spread evenly instead, the first W%n segments holding one extra, so that
exactly n non-empty segments always come out. Separators after a segment's last token stay with that
segment, which keeps the concatenation of all segments equal to the input.
*/

// Segment splits text into n contiguous segments of near-equal word count.
// When n exceeds the number of words it is clamped so that every segment
// holds exactly one word.
func Segment(text string, n int) ([]wordfreq.Segment, error) {
	if n <= 0 {
		return nil, wordfreq.ConfigErrorf("segment count must be positive, got %d", n)
	}

	total := wordfreq.CountTokens(text)
	if total == 0 {
		return nil, wordfreq.ConfigErrorf("input contains no words")
	}

	if n > total {
		n = total
	}

	sizes := segmentSizes(total, n)
	segments := make([]wordfreq.Segment, 0, n)

	start := 0
	words := 0
	for span := range wordfreq.Spans(text) {
		current := len(segments)
		if words == sizes[current] {
			segments = append(segments, wordfreq.Segment{
				Index: current,
				Start: start,
				End:   span.Start,
				Text:  text[start:span.Start],
				Words: words,
			})
			start = span.Start
			words = 0
		}
		words++
	}

	segments = append(segments, wordfreq.Segment{
		Index: len(segments),
		Start: start,
		End:   len(text),
		Text:  text[start:],
		Words: words,
	})

	return segments, nil
}

// segmentSizes distributes total words over n segments, larger ones first.
func segmentSizes(total, n int) []int {
	ceil := (total + n - 1) / n
	if last := total - (n-1)*ceil; last > 0 {
		sizes := make([]int, n)
		for i := range sizes {
			sizes[i] = ceil
		}
		sizes[n-1] = last
		return sizes
	}

	base, extra := total/n, total%n

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}

	return sizes
}
