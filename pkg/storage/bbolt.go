package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	bolt "go.etcd.io/bbolt"
)

var (
	metaBucket = []byte("meta")
	versionKey = []byte("version")
)

// BboltBackend implements Backend using bbolt (formerly bolt)
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) a bbolt database at dbPath and checks
// that it was written by a compatible store version.
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db directory")
		}
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bbolt database")
	}

	b := &BboltBackend{db: db}
	if err := b.checkVersion(); err != nil {
		db.Close()
		return nil, err
	}

	return b, nil
}

// checkVersion stamps a fresh database with StoreVersion, or verifies the
// stamp of an existing one.
func (b *BboltBackend) checkVersion() error {
	return b.db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}

		stored := meta.Get(versionKey)
		if stored == nil {
			return meta.Put(versionKey, []byte(StoreVersion))
		}

		ok, err := IsCompatibleVersion(string(stored), StoreVersion)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrIncompatibleVersion, "store written by %s, running %s", stored, StoreVersion)
		}

		return nil
	})
}

func (b *BboltBackend) CreateBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

func (b *BboltBackend) DeleteBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(name)
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil // Idempotent
		}
		return err
	})
}

func (b *BboltBackend) BucketExists(name []byte) (bool, error) {
	exists := false
	err := b.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(name) != nil
		return nil
	})
	return exists, err
}

func (b *BboltBackend) Put(bucket, key, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return errors.Wrapf(ErrBucketNotFound, "put %s", bucket)
		}
		return bkt.Put(key, value)
	})
}

// ForEach visits keys in byte order.
func (b *BboltBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return errors.Wrapf(ErrBucketNotFound, "iterate %s", bucket)
		}
		return bkt.ForEach(fn)
	})
}

func (b *BboltBackend) Close() error {
	return b.db.Close()
}
