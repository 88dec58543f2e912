package tfidf

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Sanjay1766/OptiSearch-AI/core"
)

const (
	// DefaultMaxFeatures caps the vocabulary size.
	DefaultMaxFeatures = 3000

	// DefaultMinDocFreq is the minimum number of documents a term must
	// appear in.
	DefaultMinDocFreq = 1

	// DefaultMaxDocFreqRatio drops terms appearing in more than this
	// fraction of all documents.
	DefaultMaxDocFreqRatio = 0.95
)

// Model is an immutable TF-IDF vector space over one corpus.
// All fields are fixed at build time; concurrent reads are safe.
type Model struct {
	fingerprint uint64
	corpusSize  int
	terms       []string       // column order, sorted alphabetically
	index       map[string]int // term -> column
	idf         []float64
	vectors     [][]float32 // one L2-normalized row per document
}

type config struct {
	maxFeatures     int
	minDocFreq      int
	maxDocFreqRatio float64
	poolSize        int
	logger          *slog.Logger
}

// Option configures a model build.
type Option func(*config) error

// WithMaxFeatures caps the vocabulary at n terms.
// Default is DefaultMaxFeatures.
func WithMaxFeatures(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidMaxFeatures, n)
		}
		c.maxFeatures = n
		return nil
	}
}

// WithMinDocFreq requires terms to appear in at least n documents.
// Default is DefaultMinDocFreq.
func WithMinDocFreq(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: min doc freq %d", ErrInvalidDocFreq, n)
		}
		c.minDocFreq = n
		return nil
	}
}

// WithMaxDocFreqRatio drops terms appearing in more than ratio of all
// documents. Default is DefaultMaxDocFreqRatio.
func WithMaxDocFreqRatio(ratio float64) Option {
	return func(c *config) error {
		if ratio <= 0 || ratio > 1 {
			return fmt.Errorf("%w: max doc freq ratio %v", ErrInvalidDocFreq, ratio)
		}
		c.maxDocFreqRatio = ratio
		return nil
	}
}

// WithPoolSize sets the worker pool size for the parallel build steps.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			size = 1
		}
		c.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// Build constructs a model over the given records. The returned model is
// complete and immutable; on error no model is returned at all.
func Build(records []core.Internship, opts ...Option) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	cfg := &config{
		maxFeatures:     DefaultMaxFeatures,
		minDocFreq:      DefaultMinDocFreq,
		maxDocFreqRatio: DefaultMaxDocFreqRatio,
		poolSize:        poolSize,
		logger:          slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	n := len(records)

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	// Tokenize and count every document in parallel. Each slot is written
	// by exactly one worker.
	docCounts := make([]map[string]int, n)
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			docCounts[i] = countTerms(Analyze(records[i].SearchText()))
		}
		if err := pool.Submit(task); err != nil {
			// Run inline if the pool rejects the task
			task()
		}
	}
	wg.Wait()

	// Document frequency and corpus-wide counts per term
	df := make(map[string]int)
	totals := make(map[string]int)
	for _, counts := range docCounts {
		for term, count := range counts {
			df[term]++
			totals[term] += count
		}
	}

	// Prune by document frequency bounds
	maxDocCount := cfg.maxDocFreqRatio * float64(n)
	kept := make([]string, 0, len(df))
	for term, freq := range df {
		if freq >= cfg.minDocFreq && float64(freq) <= maxDocCount {
			kept = append(kept, term)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %d raw terms over %d documents", ErrNoVocabulary, len(df), n)
	}

	// Cap the vocabulary, keeping the most frequent terms
	if len(kept) > cfg.maxFeatures {
		slices.SortFunc(kept, func(a, b string) int {
			if totals[a] != totals[b] {
				return totals[b] - totals[a]
			}
			return strings.Compare(a, b)
		})
		kept = kept[:cfg.maxFeatures]
	}

	// Alphabetical column order keeps identical corpora bit-identical
	sort.Strings(kept)

	dims := len(kept)
	index := make(map[string]int, dims)
	idf := make([]float64, dims)
	for i, term := range kept {
		index[term] = i
		idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	// Materialize normalized rows in parallel
	vectors := make([][]float32, n)
	for i := range records {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			vectors[i] = vectorizeCounts(docCounts[i], index, idf, dims)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	m := &Model{
		fingerprint: core.Fingerprint(records),
		corpusSize:  n,
		terms:       kept,
		index:       index,
		idf:         idf,
		vectors:     vectors,
	}

	cfg.logger.Debug("built vector model",
		"documents", n,
		"vocabulary", dims,
		"raw_terms", len(df),
		"duration", time.Since(start),
	)

	return m, nil
}

// Fingerprint returns the corpus fingerprint the model was built from.
func (m *Model) Fingerprint() uint64 {
	return m.fingerprint
}

// CorpusSize returns the number of documents in the model.
func (m *Model) CorpusSize() int {
	return m.corpusSize
}

// VocabularySize returns the number of vocabulary terms.
func (m *Model) VocabularySize() int {
	return len(m.terms)
}

// Terms returns a copy of the vocabulary in column order.
func (m *Model) Terms() []string {
	return slices.Clone(m.terms)
}

// HasTerm reports whether a term is part of the vocabulary.
func (m *Model) HasTerm(term string) bool {
	_, ok := m.index[term]
	return ok
}

// IDF returns the inverse document frequency of a term, if present.
func (m *Model) IDF(term string) (float64, bool) {
	i, ok := m.index[term]
	if !ok {
		return 0, false
	}
	return m.idf[i], true
}

// Vector returns the normalized vector of document doc.
// The returned slice is the model's backing row; treat it as read-only.
func (m *Model) Vector(doc int) []float32 {
	return m.vectors[doc]
}

// Transform maps query text into the model's vector space. Terms outside
// the vocabulary contribute nothing; blank text yields a zero vector.
func (m *Model) Transform(text string) []float32 {
	return vectorizeCounts(countTerms(Analyze(text)), m.index, m.idf, len(m.terms))
}

// Similarity computes the cosine similarity between a transformed query
// and document doc. Rows are L2-normalized, so this is a dot product; a
// zero vector on either side yields 0.
func (m *Model) Similarity(query []float32, doc int) float64 {
	return dotProduct(query, m.vectors[doc])
}

// vectorizeCounts turns per-term counts into a normalized dense row.
// Weights accumulate in float64, in column order so the sum does not
// depend on map iteration, and are cast to float32 only after
// normalization.
func vectorizeCounts(counts map[string]int, index map[string]int, idf []float64, dims int) []float32 {
	row := make([]float32, dims)

	type colWeight struct {
		col int
		w   float64
	}
	pairs := make([]colWeight, 0, len(counts))
	for term, count := range counts {
		j, ok := index[term]
		if !ok {
			continue
		}
		pairs = append(pairs, colWeight{col: j, w: float64(count) * idf[j]})
	}
	slices.SortFunc(pairs, func(a, b colWeight) int { return a.col - b.col })

	var sq float64
	for _, p := range pairs {
		sq += p.w * p.w
	}

	if sq > 0 {
		norm := math.Sqrt(sq)
		for _, p := range pairs {
			row[p.col] = float32(p.w / norm)
		}
	}
	return row
}

// dotProduct computes the dot product of two vectors in float64.
func dotProduct(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	var sum float64
	for i := 0; i < minLen; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
