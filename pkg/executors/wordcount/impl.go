package wordcount

import (
	"context"

	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// cancelCheckInterval is how many tokens are counted between context checks.
const cancelCheckInterval = 4096

// Counter implements wordfreq.Counter
type Counter struct{}

// Count tokenizes the segment text and counts every token.
func (c Counter) Count(ctx context.Context, segment wordfreq.Segment) (wordfreq.FrequencyMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(wordfreq.FrequencyMap)
	seen := 0
	for token := range wordfreq.Tokens(segment.Text) {
		counts[token]++

		seen++
		if seen%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	return counts, nil
}

func (c Counter) Description() string {
	return "Counts case-folded alphanumeric words in a segment"
}
