package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces lines of input text for wordfreq
type Generator interface {
	// Init gives the generator its own random source so output is reproducible per seed
	Init(r *rand.Rand)

	// WriteLine writes a single line of text to the writer
	WriteLine(w io.Writer) error

	Description() string

	// DefaultCount returns the suggested default number of lines to generate
	DefaultCount() int64
}
