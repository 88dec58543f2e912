// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"

	"github.com/Sanjay1766/OptiSearch-AI/storage"
	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

// SnapshotStore implements storage.SnapshotStore for BadgerDB.
// Snapshot blobs are zstd-compressed before writing; document vectors
// hold mostly zero cells and shrink to a fraction of their raw size.
type SnapshotStore struct {
	backend *Backend
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	logger  *slog.Logger
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore opens a snapshot store backed by a BadgerDB database
// at the given path. The store owns the database and closes it on Close.
func NewSnapshotStore(path string) (storage.SnapshotStore, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	store, err := newSnapshotStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return store, nil
}

func newSnapshotStore(backend *Backend) (*SnapshotStore, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &SnapshotStore{
		backend: backend,
		encoder: encoder,
		decoder: decoder,
		logger:  backend.logger,
	}, nil
}

// SaveSnapshot persists a snapshot under its corpus fingerprint.
// Snapshots stored for other fingerprints are removed in the same
// transaction, so at most one snapshot survives per store.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *tfidf.Snapshot) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	raw := storage.MarshalSnapshot(snapshot)
	value := s.encoder.EncodeAll(raw, nil)
	key := makeSnapshotKey(snapshot.Fingerprint)

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, staleKey := range staleSnapshotKeys(tx, key) {
			if err := tx.Delete(staleKey); err != nil {
				return err
			}
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	s.logger.Debug("saved model snapshot",
		"fingerprint", snapshot.Fingerprint,
		"raw_bytes", len(raw),
		"stored_bytes", len(value))
	return nil
}

// staleSnapshotKeys collects snapshot keys other than keep. Keys are
// copied out so they stay valid after the iterator is closed.
func staleSnapshotKeys(tx *badger.Txn, keep []byte) [][]byte {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(snapshotPrefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var stale [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		key := iter.Item().KeyCopy(nil)
		if !bytes.Equal(key, keep) {
			stale = append(stale, key)
		}
	}
	return stale
}

// LoadSnapshot retrieves the snapshot for a corpus fingerprint.
// Returns nil, nil if no snapshot exists for that fingerprint.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, fingerprint uint64) (*tfidf.Snapshot, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *tfidf.Snapshot
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(fingerprint))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			raw, err := s.decoder.DecodeAll(val, nil)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrTruncatedData, err)
			}
			snapshot, err = storage.UnmarshalSnapshot(raw)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Close releases the compression codecs and closes the database.
func (s *SnapshotStore) Close() error {
	s.encoder.Close()
	s.decoder.Close()
	return s.backend.Close()
}
