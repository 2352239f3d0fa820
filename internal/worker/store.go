package worker

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"

	"pkg.jsn.cam/wordfreq/pkg/storage"
	"pkg.jsn.cam/wordfreq/pkg/wordfreq"
)

// Store keeps the committed frequency map of every finished segment of a run.
// Only completed segments are ever written, so a run that is interrupted
// leaves nothing that could be merged by mistake.
type Store struct {
	backend storage.Backend
}

// NewStore wraps a storage backend
func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

func runBucket(runID string) []byte {
	return []byte(fmt.Sprintf("run_%s", runID))
}

func segmentKey(index int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(index))
	return key
}

// Begin prepares the bucket for a run
func (s *Store) Begin(runID string) error {
	return s.backend.CreateBucket(runBucket(runID))
}

// Commit records the frequency map of one completed segment
func (s *Store) Commit(runID string, index int, freq wordfreq.FrequencyMap) error {
	encoded, err := storage.EncodeJSON(freq)
	if err != nil {
		return err
	}

	if err := s.backend.Put(runBucket(runID), segmentKey(index), encoded); err != nil {
		return errors.Wrapf(err, "commit segment %d", index)
	}

	return nil
}

// ForEach decodes every committed segment of a run
func (s *Store) ForEach(runID string, fn func(index int, freq wordfreq.FrequencyMap) error) error {
	bucket := runBucket(runID)

	exists, err := s.backend.BucketExists(bucket)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	return s.backend.ForEach(bucket, func(k, v []byte) error {
		if len(k) != 8 {
			return errors.Newf("malformed segment key %x", k)
		}

		var freq wordfreq.FrequencyMap
		if err := storage.DecodeJSON(v, &freq); err != nil {
			return err
		}

		return fn(int(binary.BigEndian.Uint64(k)), freq)
	})
}

// Cleanup drops everything stored for a run
func (s *Store) Cleanup(runID string) error {
	return s.backend.DeleteBucket(runBucket(runID))
}
