package search

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/corpus"
	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

const (
	// minSimilarity is the inclusion threshold for unfiltered search.
	minSimilarity = 0.001

	// minCategorySimilarity is the stricter threshold for category search,
	// where the candidate pool is already narrowed.
	minCategorySimilarity = 0.01

	// fallbackCount is how many records the last-resort fallback returns
	// when the inclusion policy collected nothing.
	fallbackCount = 5
)

// Engine ranks corpus records against queries using a TF-IDF model.
type Engine struct {
	corpus    *corpus.Corpus
	model     atomic.Pointer[tfidf.Model]
	building  atomic.Bool
	weights   FieldWeights
	modelOpts []tfidf.Option
	monitor   SearchMonitor
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each search stage.
// A nil monitor restores the no-op default.
func WithMonitor(monitor SearchMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// WithFieldWeights sets the default weights for multi-field re-ranking.
func WithFieldWeights(weights FieldWeights) Option {
	return func(e *Engine) error {
		e.weights = weights
		return nil
	}
}

// WithModelOptions sets the options passed to every model build.
func WithModelOptions(opts ...tfidf.Option) Option {
	return func(e *Engine) error {
		e.modelOpts = opts
		return nil
	}
}

// NewEngine creates a new ranking engine over the corpus. The engine starts
// without a model; call Build or ReplaceModel before serving queries.
func NewEngine(c *corpus.Corpus, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}

	e := &Engine{
		corpus:  c,
		weights: DefaultFieldWeights(),
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Build constructs a fresh model from the corpus and swaps it in. The old
// model keeps serving until the swap; queries never observe a partial build.
func (e *Engine) Build() error {
	e.building.Store(true)
	defer e.building.Store(false)

	opts := append([]tfidf.Option{tfidf.WithLogger(e.logger)}, e.modelOpts...)
	m, err := tfidf.Build(e.corpus.Records(), opts...)
	if err != nil {
		return err
	}

	e.model.Store(m)
	return nil
}

// ReplaceModel atomically swaps the served model. Used when a model is
// restored from a snapshot instead of built.
func (e *Engine) ReplaceModel(m *tfidf.Model) {
	e.model.Store(m)
}

// Model returns the currently served model, or nil before the first build.
func (e *Engine) Model() *tfidf.Model {
	return e.model.Load()
}

// Ready reports whether a model is installed and queries can be served.
func (e *Engine) Ready() bool {
	return e.model.Load() != nil
}

// Building reports whether a build is in flight. The previous model, if
// any, keeps serving while this is true.
func (e *Engine) Building() bool {
	return e.building.Load()
}

// scored pairs a corpus position with its similarity.
type scored struct {
	position   int
	similarity float64
}

// orderCandidates sorts candidates by similarity descending, ties broken by
// ascending record id so equal scores order deterministically.
func (e *Engine) orderCandidates(candidates []scored) {
	slices.SortFunc(candidates, func(a, b scored) int {
		if a.similarity != b.similarity {
			if a.similarity > b.similarity {
				return -1
			}
			return 1
		}
		idA, idB := e.corpus.At(a.position).Id, e.corpus.At(b.position).Id
		switch {
		case idA < idB:
			return -1
		case idA > idB:
			return 1
		default:
			return 0
		}
	})
}

// rank scores every document against the query vector and returns the
// candidates in order.
func (e *Engine) rank(m *tfidf.Model, query []float32) []scored {
	n := e.corpus.Len()
	ranked := make([]scored, n)
	for i := 0; i < n; i++ {
		ranked[i] = scored{position: i, similarity: m.Similarity(query, i)}
	}
	e.orderCandidates(ranked)
	return ranked
}

// Search ranks the whole corpus against a free-text query and returns up to
// topK results. A blank query or an empty corpus yields an empty result with
// no error; a missing model yields ErrModelNotReady.
func (e *Engine) Search(query string, topK int) ([]core.SearchResult, error) {
	if e.corpus.Len() == 0 || strings.TrimSpace(query) == "" {
		return []core.SearchResult{}, nil
	}

	m := e.model.Load()
	if m == nil {
		return nil, ErrModelNotReady
	}

	e.monitor.Start(query)

	ranked := e.rank(m, m.Transform(query))

	// Keep candidates above the similarity threshold, but admit low scorers
	// until a minimum count is reached, and stop once 2*topK are collected.
	minKeep := max(fallbackCount, topK/2)
	collected := make([]scored, 0, min(len(ranked), max(2*topK, minKeep)))
	for _, cand := range ranked {
		if cand.similarity > minSimilarity || len(collected) < minKeep {
			collected = append(collected, cand)
			if len(collected) >= 2*topK {
				break
			}
		} else {
			// Similarity only decreases from here; nothing further qualifies.
			break
		}
	}

	if len(collected) == 0 {
		// Pathological query: every similarity is zero and the floor is
		// filled. Return the top 5 regardless of score.
		e.monitor.Fallback(query)
		e.logger.Debug("similarity fallback engaged", "query", query)
		collected = ranked[:min(fallbackCount, len(ranked))]
	}

	ids := make([]core.ID, len(collected))
	for i, cand := range collected {
		ids[i] = e.corpus.At(cand.position).Id
	}
	e.monitor.Candidates(ids)

	if topK < 0 {
		topK = 0
	}
	if len(collected) > topK {
		collected = collected[:topK]
	}

	results := make([]core.SearchResult, len(collected))
	for i, cand := range collected {
		results[i] = core.SearchResult{
			Internship: e.corpus.At(cand.position),
			Score:      cand.similarity,
		}
	}
	e.monitor.Finish(results)

	return results, nil
}

// MultiFieldSearch ranks like Search, then adds substring bonuses for the
// query appearing verbatim in the title, skills or category fields. Zero
// weights fall back to the engine defaults. Scores are clamped to 1.0 and
// re-sorted with a stable sort, so equal scores keep their prior order.
func (e *Engine) MultiFieldSearch(query string, weights FieldWeights, topK int) ([]core.SearchResult, error) {
	if weights.IsZero() {
		weights = e.weights
	}

	// Inflate the candidate pool before re-ranking.
	results, err := e.Search(query, min(2*topK, e.corpus.Len()))
	if err != nil || len(results) == 0 {
		return results, err
	}

	lowered := strings.ToLower(query)
	for i := range results {
		bonus := fieldBonus(lowered, results[i].Internship, weights)
		results[i].Score = min(results[i].Score+bonus, 1.0)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// CategorySearch ranks only the records of one category, matched
// case-insensitively. Results must clear a stricter similarity threshold;
// an unknown category yields an empty result with no error.
func (e *Engine) CategorySearch(query, category string, topK int) ([]core.SearchResult, error) {
	if e.corpus.Len() == 0 || strings.TrimSpace(query) == "" {
		return []core.SearchResult{}, nil
	}

	subset := e.corpus.CategorySet(category)
	if subset == nil || subset.IsEmpty() {
		return []core.SearchResult{}, nil
	}

	m := e.model.Load()
	if m == nil {
		return nil, ErrModelNotReady
	}

	qv := m.Transform(query)
	collected := make([]scored, 0, subset.GetCardinality())
	it := subset.Iterator()
	for it.HasNext() {
		position := int(it.Next())
		sim := m.Similarity(qv, position)
		if sim > minCategorySimilarity {
			collected = append(collected, scored{position: position, similarity: sim})
		}
	}

	e.orderCandidates(collected)

	if topK < 0 {
		topK = 0
	}
	if len(collected) > topK {
		collected = collected[:topK]
	}

	results := make([]core.SearchResult, len(collected))
	for i, cand := range collected {
		results[i] = core.SearchResult{
			Internship: e.corpus.At(cand.position),
			Score:      cand.similarity,
		}
	}
	return results, nil
}

// SkillSearch joins the skill list into a single query and delegates to
// Search. An empty skill list behaves like a blank query.
func (e *Engine) SkillSearch(skills []string, topK int) ([]core.SearchResult, error) {
	return e.Search(strings.Join(skills, " "), topK)
}
