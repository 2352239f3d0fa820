package generator

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Registry maps generator names to generator factory functions
var Registry = map[string]func() Generator{
	"prose":   func() Generator { return &ProseGenerator{Vocabulary: 2000} },
	"unicode": func() Generator { return &UnicodeGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, errors.Newf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := lo.Keys(Registry)
	slices.Sort(names)
	return names
}
