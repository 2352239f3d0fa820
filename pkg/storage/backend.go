package storage

import (
	"github.com/cockroachdb/errors"
)

// Backend kinds accepted by Open.
const (
	KindMemory = "memory"
	KindBbolt  = "bbolt"
)

// ErrBucketNotFound is returned when operating on a bucket that was never created.
var ErrBucketNotFound = errors.New("bucket not found")

// Backend defines a key-value storage interface with bucket support.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Bucket operations
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	// KV operations within buckets
	Put(bucket, key, value []byte) error

	// ForEach visits every pair of a bucket. Values are only valid during fn.
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}

// Open creates the backend of the given kind. path is only used by bbolt.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryBackend(), nil
	case KindBbolt:
		return NewBboltBackend(path)
	default:
		return nil, errors.Newf("unknown storage backend %q", kind)
	}
}
