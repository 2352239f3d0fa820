package generator

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProseGenerator writes sentences whose word frequencies follow a Zipf
// distribution, with mixed case and punctuation around the words.
type ProseGenerator struct {
	Vocabulary int
	rand       *rand.Rand
	zipf       *rand.Zipf
	upper      cases.Caser
	title      cases.Caser
}

var commonWords = []string{
	"the", "of", "and", "to", "a", "in", "is", "it", "that", "was",
	"for", "on", "with", "as", "he", "she", "they", "at", "by", "from",
}

var punctuation = []string{",", ";", ":", " -", "!", "?", ".", "\"", "'s"}

func (g *ProseGenerator) Init(r *rand.Rand) {
	g.rand = r
	vocab := g.Vocabulary
	if vocab < len(commonWords) {
		vocab = len(commonWords)
	}
	g.zipf = rand.NewZipf(r, 1.1, 1, uint64(vocab-1))
	g.upper = cases.Upper(language.English)
	g.title = cases.Title(language.English)
}

func (g *ProseGenerator) word() string {
	rank := int(g.zipf.Uint64())
	if rank < len(commonWords) {
		return commonWords[rank]
	}
	return "w" + strconv.Itoa(rank)
}

func (g *ProseGenerator) WriteLine(w io.Writer) error {
	var b strings.Builder

	words := 4 + g.rand.IntN(12)
	for i := range words {
		if i > 0 {
			b.WriteByte(' ')
		}

		word := g.word()
		switch g.rand.IntN(10) {
		case 0:
			word = g.upper.String(word)
		case 1, 2:
			word = g.title.String(word)
		}
		b.WriteString(word)

		if g.rand.IntN(6) == 0 {
			b.WriteString(punctuation[g.rand.IntN(len(punctuation))])
		}
	}
	b.WriteString(".\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (g *ProseGenerator) Description() string {
	return "Zipf-distributed English-like sentences with mixed case and punctuation"
}

func (g *ProseGenerator) DefaultCount() int64 {
	return 1e5 // 100,000 lines
}
