package storage

import (
	"context"

	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

// SnapshotStore persists built vector models so a restart can skip the
// vectorization pass when the corpus has not changed.
// Implementations must be safe for concurrent use.
type SnapshotStore interface {
	// SaveSnapshot persists a model snapshot, replacing any snapshot
	// stored for a different corpus fingerprint.
	SaveSnapshot(ctx context.Context, snapshot *tfidf.Snapshot) error

	// LoadSnapshot retrieves the snapshot for a corpus fingerprint.
	// Returns nil, nil if no snapshot exists for that fingerprint.
	LoadSnapshot(ctx context.Context, fingerprint uint64) (*tfidf.Snapshot, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
