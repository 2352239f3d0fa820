// Package report orders a global frequency map and writes it out.
package report

import (
	"bufio"
	"cmp"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// Rank orders the map by descending count, ties broken by ascending token.
func Rank(freq wordfreq.FrequencyMap) []wordfreq.Pair {
	pairs := lo.MapToSlice(freq, func(token wordfreq.Token, count int) wordfreq.Pair {
		return wordfreq.Pair{Token: token, Count: count}
	})

	slices.SortFunc(pairs, func(a, b wordfreq.Pair) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Token, b.Token)
	})

	return pairs
}

// Write emits one "token count" line per pair.
func Write(w io.Writer, pairs []wordfreq.Pair) error {
	bw := bufio.NewWriter(w)

	var line []byte
	for _, pair := range pairs {
		line = append(line[:0], pair.Token...)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(pair.Count), 10)
		line = append(line, '\n')

		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes pairs to path, replacing any existing file. The report is
// written to a temporary file next to path and renamed into place, so path
// either holds the complete report or is left untouched.
func WriteFile(path string, pairs []wordfreq.Pair) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return wordfreq.IOError(err, "create output")
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, pairs); err != nil {
		return wordfreq.IOError(err, "write output %s", path)
	}
	if err := tmp.Sync(); err != nil {
		return wordfreq.IOError(err, "sync output %s", path)
	}
	if err := tmp.Close(); err != nil {
		return wordfreq.IOError(err, "close output %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return wordfreq.IOError(err, "chmod output %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return wordfreq.IOError(err, "replace output %s", path)
	}

	return nil
}
