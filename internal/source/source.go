// Package source reads the input text of a run.
package source

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"

	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// ReadFile reads the whole input at path. Paths ending in ".gz" are
// decompressed on the fly.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", wordfreq.IOError(err, "open input")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", wordfreq.IOError(err, "stat input %s", path)
	}
	if info.IsDir() {
		return "", errors.Mark(errors.Newf("input %s is a directory", path), wordfreq.ErrIO)
	}

	var b strings.Builder
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", wordfreq.IOError(err, "open gzip input %s", path)
		}
		defer zr.Close()
		r = zr
	} else {
		b.Grow(int(info.Size()))
	}

	if _, err := io.Copy(&b, r); err != nil {
		return "", wordfreq.IOError(err, "read input %s", path)
	}

	return b.String(), nil
}
