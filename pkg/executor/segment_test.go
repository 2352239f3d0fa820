package executor

import (
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

const sample = "the cat sat on the MAT. The cat ran."

func joinSegments(segments []wordfreq.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func TestSegment_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		sample,
		"single",
		"  leading and trailing separators  \n",
		"line one\nline two\n\nline three, with punctuation!\n",
		"Über café naïve résumé — done.",
		"a\xffb\xfec",
	}

	for _, text := range inputs {
		words := wordfreq.CountTokens(text)
		for n := 1; n <= words+2; n++ {
			segments, err := Segment(text, n)
			require.NoError(t, err, "text=%q n=%d", text, n)
			assert.Equal(t, text, joinSegments(segments), "text=%q n=%d", text, n)
		}
	}
}

func TestSegment_Invariants(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("alpha beta, gamma! delta\n", 37)
	total := wordfreq.CountTokens(text)

	for _, n := range []int{1, 2, 3, 7, 10, 64, 100, total} {
		segments, err := Segment(text, n)
		require.NoError(t, err)
		require.Len(t, segments, n, "n=%d", n)

		sum := 0
		prevEnd := 0
		for i, seg := range segments {
			assert.Equal(t, i, seg.Index)
			assert.Equal(t, prevEnd, seg.Start, "segments must be contiguous")
			assert.Equal(t, text[seg.Start:seg.End], seg.Text)
			assert.GreaterOrEqual(t, seg.Words, 1, "segment %d is empty", i)
			assert.Equal(t, seg.Words, wordfreq.CountTokens(seg.Text))

			// No segment exceeds ceil(W/n) and larger segments come first
			assert.LessOrEqual(t, seg.Words, (total+n-1)/n, "n=%d segment %d", n, i)
			if i > 0 {
				assert.GreaterOrEqual(t, segments[i-1].Words, seg.Words, "n=%d segment %d", n, i)
			}

			sum += seg.Words
			prevEnd = seg.End
		}

		assert.Equal(t, len(text), prevEnd)
		assert.Equal(t, total, sum)
	}
}

func TestSegment_NeverSplitsTokens(t *testing.T) {
	t.Parallel()

	text := "hello world, this is a segmentation test with some longer words"
	want := slices.Collect(wordfreq.Tokens(text))

	for n := 1; n <= len(want); n++ {
		segments, err := Segment(text, n)
		require.NoError(t, err)

		var got []wordfreq.Token
		for _, seg := range segments {
			got = append(got, slices.Collect(wordfreq.Tokens(seg.Text))...)
		}

		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestSegment_Scenario(t *testing.T) {
	t.Parallel()

	segments, err := Segment(sample, 2)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, "the cat sat on the ", segments[0].Text)
	assert.Equal(t, 5, segments[0].Words)
	assert.Equal(t, "MAT. The cat ran.", segments[1].Text)
	assert.Equal(t, 4, segments[1].Words)
}

func TestSegment_ClampsToWordCount(t *testing.T) {
	t.Parallel()

	segments, err := Segment(sample, 100)
	require.NoError(t, err)
	require.Len(t, segments, 9)

	for _, seg := range segments {
		assert.Equal(t, 1, seg.Words)
	}
	assert.Equal(t, sample, joinSegments(segments))
}

func TestSegment_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		n    int
	}{
		{"zero segments", sample, 0},
		{"negative segments", sample, -3},
		{"empty input", "", 4},
		{"no words", " ... \n\t !!! ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			segments, err := Segment(tt.text, tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, wordfreq.ErrConfiguration), "got %v", err)
			assert.Nil(t, segments)
		})
	}
}

func TestSegmentSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		n     int
		want  []int
	}{
		{"single segment", 9, 1, []int{9}},
		{"scenario split", 9, 2, []int{5, 4}},
		{"ceil sized with short tail", 10, 4, []int{3, 3, 3, 1}},
		{"even split", 12, 4, []int{3, 3, 3, 3}},
		{"ceil would empty the tail", 9, 6, []int{2, 2, 2, 1, 1, 1}},
		{"ceil would overshoot", 10, 6, []int{2, 2, 2, 2, 1, 1}},
		{"one word each", 3, 3, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sizes := segmentSizes(tt.total, tt.n)
			assert.Equal(t, tt.want, sizes)

			sum := 0
			for _, size := range sizes {
				assert.Positive(t, size)
				sum += size
			}
			assert.Equal(t, tt.total, sum)
		})
	}
}

func TestSegment_CeilSizedSegments(t *testing.T) {
	t.Parallel()

	segments, err := Segment("a b c d e f g h i j", 4)
	require.NoError(t, err)

	words := make([]int, 0, len(segments))
	for _, seg := range segments {
		words = append(words, seg.Words)
	}
	assert.Equal(t, []int{3, 3, 3, 1}, words)
	assert.Equal(t, "j", segments[3].Text)
}
