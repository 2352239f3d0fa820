package wordfreq

import "github.com/cockroachdb/errors"

// Sentinel errors classifying every failure the pipeline can report.
var (
	// ErrConfiguration covers invalid segment counts and inputs without words.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO covers unreadable input and unwritable output.
	ErrIO = errors.New("io failure")
	// ErrWorkerFailure covers a segment that could not be counted.
	ErrWorkerFailure = errors.New("worker failure")
)

// ConfigErrorf builds an error classified as ErrConfiguration.
func ConfigErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

// IOError wraps err and classifies it as ErrIO.
func IOError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}

// WorkerError wraps err and classifies it as ErrWorkerFailure.
func WorkerError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrWorkerFailure)
}
