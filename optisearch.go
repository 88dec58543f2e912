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


// Package optisearch wires the corpus, vector model, geo lookup and result
// caches into a single search system.
package optisearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Sanjay1766/OptiSearch-AI/cache"
	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/corpus"
	"github.com/Sanjay1766/OptiSearch-AI/geo"
	"github.com/Sanjay1766/OptiSearch-AI/search"
	"github.com/Sanjay1766/OptiSearch-AI/storage"
	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

// System is the composed search service over one corpus. Queries are safe
// for concurrent use; Bootstrap and Rebuild may run concurrently with
// queries because the model swap is atomic.
type System struct {
	corpus    *corpus.Corpus
	engine    *search.Engine
	filter    *geo.ProximityFilter
	snapshots storage.SnapshotStore
	searches  *cache.Cache[[]core.SearchResult]
	locations *cache.Cache[[]LocationHit]
	radiusKm  float64
	logger    *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	logger     *slog.Logger
	snapshots  storage.SnapshotStore
	cacheTTL   time.Duration
	clk        clock.Clock
	radiusKm   float64
	engineOpts []search.Option
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) SystemOption {
	return func(o *systemOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSnapshotStore sets the store used to persist built models. Without
// one, every Bootstrap vectorizes from scratch. On success the system
// takes ownership of the store and closes it on Close.
func WithSnapshotStore(store storage.SnapshotStore) SystemOption {
	return func(o *systemOptions) {
		o.snapshots = store
	}
}

// WithCacheTTL sets the result cache entry lifetime.
// Default is cache.DefaultTTL.
func WithCacheTTL(ttl time.Duration) SystemOption {
	return func(o *systemOptions) {
		o.cacheTTL = ttl
	}
}

// WithClock sets the time source for the result caches, letting tests
// drive expiry. Default is the wall clock.
func WithClock(clk clock.Clock) SystemOption {
	return func(o *systemOptions) {
		o.clk = clk
	}
}

// WithDefaultRadius sets the proximity radius in kilometers used when a
// query does not specify one. Default is geo.DefaultRadiusKm.
func WithDefaultRadius(radiusKm float64) SystemOption {
	return func(o *systemOptions) {
		o.radiusKm = radiusKm
	}
}

// WithEngineOptions forwards options to the search engine, e.g. field
// weights, model options or a search monitor.
func WithEngineOptions(opts ...search.Option) SystemOption {
	return func(o *systemOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewSystem creates a system over the given corpus. The model is not
// built yet; call Bootstrap before serving queries.
func NewSystem(c *corpus.Corpus, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		logger:   slog.Default(),
		cacheTTL: cache.DefaultTTL,
		clk:      clock.New(),
		radiusKm: geo.DefaultRadiusKm,
	}
	for _, opt := range opts {
		opt(options)
	}

	registry, err := geo.NewRegistry()
	if err != nil {
		return nil, err
	}
	filter, err := geo.NewProximityFilter(registry,
		geo.WithDefaultRadius(options.radiusKm),
		geo.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	engineOpts := append([]search.Option{search.WithLogger(options.logger)}, options.engineOpts...)
	engine, err := search.NewEngine(c, engineOpts...)
	if err != nil {
		return nil, err
	}

	searches, err := cache.New[[]core.SearchResult](
		cache.WithTTL(options.cacheTTL), cache.WithClock(options.clk))
	if err != nil {
		return nil, err
	}
	locations, err := cache.New[[]LocationHit](
		cache.WithTTL(options.cacheTTL), cache.WithClock(options.clk))
	if err != nil {
		return nil, err
	}

	return &System{
		corpus:    c,
		engine:    engine,
		filter:    filter,
		snapshots: options.snapshots,
		searches:  searches,
		locations: locations,
		radiusKm:  options.radiusKm,
		logger:    options.logger,
	}, nil
}

// Bootstrap makes the system ready to serve: restore the model from a
// compatible snapshot when one exists, otherwise build it and save a
// snapshot best-effort. An empty corpus skips building; such a system
// serves empty results and reports the model as not ready.
func (s *System) Bootstrap(ctx context.Context) error {
	if s.corpus.Len() == 0 {
		s.logger.Warn("corpus is empty, skipping model build")
		return nil
	}

	if s.snapshots != nil && s.restoreFromSnapshot(ctx) {
		return nil
	}

	start := time.Now()
	if err := s.engine.Build(); err != nil {
		return err
	}
	s.logger.Info("model built",
		"records", s.corpus.Len(),
		"vocabulary", s.engine.Model().VocabularySize(),
		"took", time.Since(start))

	s.saveSnapshot(ctx)
	return nil
}

// restoreFromSnapshot tries to serve from a stored snapshot. Any failure
// is logged and reported as false so the caller falls back to a build.
func (s *System) restoreFromSnapshot(ctx context.Context) bool {
	fingerprint := s.corpus.Fingerprint()
	snapshot, err := s.snapshots.LoadSnapshot(ctx, fingerprint)
	if err != nil {
		s.logger.Warn("snapshot load failed, rebuilding", "err", err)
		return false
	}
	if snapshot == nil {
		return false
	}
	if !snapshot.CompatibleWith(fingerprint, s.corpus.Len()) {
		s.logger.Warn("snapshot incompatible with corpus, rebuilding",
			"snapshot_fingerprint", snapshot.Fingerprint,
			"corpus_fingerprint", fingerprint)
		return false
	}

	model, err := tfidf.FromSnapshot(snapshot)
	if err != nil {
		s.logger.Warn("snapshot rejected, rebuilding", "err", err)
		return false
	}

	s.engine.ReplaceModel(model)
	s.logger.Info("model restored from snapshot",
		"records", model.CorpusSize(),
		"vocabulary", model.VocabularySize())
	return true
}

// saveSnapshot persists the current model best-effort. Serving does not
// depend on the snapshot, so failures only log.
func (s *System) saveSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	model := s.engine.Model()
	if model == nil {
		return
	}
	if err := s.snapshots.SaveSnapshot(ctx, model.Snapshot()); err != nil {
		s.logger.Warn("snapshot save failed", "err", err)
	}
}

// Rebuild vectorizes the corpus again, swaps the model in atomically and
// drops all cached results.
func (s *System) Rebuild(ctx context.Context) error {
	if err := s.engine.Build(); err != nil {
		return err
	}
	s.searches.Clear()
	s.locations.Clear()
	s.saveSnapshot(ctx)
	s.logger.Info("model rebuilt", "records", s.corpus.Len())
	return nil
}

// Close releases the snapshot store if the system owns one.
func (s *System) Close() error {
	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.Close(); err != nil {
		s.logger.Error("error closing snapshot store", "err", err)
		return err
	}
	return nil
}

// Corpus returns the corpus the system serves.
func (s *System) Corpus() *corpus.Corpus {
	return s.corpus
}

// Engine returns the underlying search engine.
func (s *System) Engine() *search.Engine {
	return s.engine
}

// Health is a point-in-time snapshot of service readiness.
type Health struct {
	Status         string
	TotalRecords   int
	ModelReady     bool
	ModelBuilding  bool
	VocabularySize int
	SearchCache    cache.Stats
	LocationCache  cache.Stats
}

// HealthStatusOK is the Status value of a serving system.
const HealthStatusOK = "healthy"

// Health reports readiness and cache effectiveness.
func (s *System) Health() Health {
	h := Health{
		Status:        HealthStatusOK,
		TotalRecords:  s.corpus.Len(),
		ModelReady:    s.engine.Ready(),
		ModelBuilding: s.engine.Building(),
		SearchCache:   s.searches.Stats(),
		LocationCache: s.locations.Stats(),
	}
	if m := s.engine.Model(); m != nil {
		h.VocabularySize = m.VocabularySize()
	}
	return h
}
