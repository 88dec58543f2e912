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


// Package storage provides the persistence abstraction layer for OptiSearch.
//
// This package defines the SnapshotStore interface that decouples model
// persistence from the search engine. It allows different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Backend packages follow a "return interface" pattern for their public
// constructors to enforce abstraction:
//
//	store, err := badger.NewSnapshotStore(path)  // returns storage.SnapshotStore interface
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to BadgerDB specifics
//   - Swappability: Easy to add alternative backends (SQLite, S3, etc.)
//   - Testing: Consumers can use mock implementations without modification
//
// # Architecture
//
// Vectorizing a large corpus is the expensive part of startup. A snapshot
// captures the built model (vocabulary, idf weights, document vectors)
// keyed by the corpus fingerprint. On the next start the store is probed
// with the current fingerprint; a hit skips the build entirely, while any
// fingerprint mismatch means the corpus changed and forces a rebuild.
//
// Only one snapshot is retained per store. Saving a snapshot for a new
// fingerprint removes snapshots of older corpora in the same transaction.
//
// # Usage
//
// Create a store instance:
//
//	store, err := badger.NewSnapshotStore("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
// Use in tests with in-memory storage:
//
//	store, err := badger.NewMemorySnapshotStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
// # Thread Safety
//
// All store implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific
// timeout requirements.
package storage
