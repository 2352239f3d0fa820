package generator

import (
	"io"
	"math/rand/v2"
	"strings"
)

// UnicodeGenerator writes lines mixing scripts, digits and separators.
type UnicodeGenerator struct {
	rand *rand.Rand
}

var unicodeWords = []string{
	"Straße", "ÜBER", "café", "naïve", "Ελλάδα", "мир", "Привет",
	"日本語", "東京", "résumé", "año", "2024", "v2", "x86",
	"İstanbul", "ᏣᎳᎩ", "ꮳꮃꭹ",
}

var unicodeSeparators = []string{" ", "  ", ", ", " — ", "\t", " / ", "... "}

func (g *UnicodeGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *UnicodeGenerator) WriteLine(w io.Writer) error {
	var b strings.Builder

	words := 3 + g.rand.IntN(8)
	for i := range words {
		if i > 0 {
			b.WriteString(unicodeSeparators[g.rand.IntN(len(unicodeSeparators))])
		}
		b.WriteString(unicodeWords[g.rand.IntN(len(unicodeWords))])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func (g *UnicodeGenerator) Description() string {
	return "Mixed-script words with digits and assorted separators"
}

func (g *UnicodeGenerator) DefaultCount() int64 {
	return 1e4
}
