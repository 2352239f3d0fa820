package wordfreq

import "context"

// Token is a normalized word. It is never empty.
type Token string

// Span is the byte range [Start, End) of one token in its source text.
type Span struct {
	Start int
	End   int
}

// Segment is a contiguous, word-aligned slice of the input handed to one worker.
type Segment struct {
	Index int
	Start int
	End   int
	Text  string
	Words int
}

// FrequencyMap maps each token to the number of times it occurred.
type FrequencyMap map[Token]int

// Pair is one row of the final report.
type Pair struct {
	Token Token
	Count int
}

// Counter turns one segment into its frequency map.
// Implementations must not share mutable state between calls.
type Counter interface {
	Count(ctx context.Context, segment Segment) (FrequencyMap, error)
	// Description names the counter in run logs.
	Description() string
}
