package optisearch

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/corpus"
	"github.com/Sanjay1766/OptiSearch-AI/search"
)

func TestNormalizeTopK(t *testing.T) {
	assert.Equal(t, DefaultTopK, normalizeTopK(0))
	assert.Equal(t, DefaultTopK, normalizeTopK(-3))
	assert.Equal(t, 1, normalizeTopK(1))
	assert.Equal(t, 50, normalizeTopK(50))
	assert.Equal(t, MaxTopK, normalizeTopK(100))
	assert.Equal(t, MaxTopK, normalizeTopK(5000))
}

func TestSystem_Search(t *testing.T) {
	sys := scenarioSystem(t)
	ctx := context.Background()

	t.Run("ranked query", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "Python"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, core.ID(1), results[0].Internship.Id)
		assert.Equal(t, core.ID(2), results[1].Internship.Id)
		assert.Greater(t, results[0].Score, results[1].Score)
		assert.InDelta(t, 0, results[1].Score, 1e-12)
	})

	t.Run("blank query", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "   "})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("top k truncates", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "Python", TopK: 1})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
	})

	t.Run("multi-field type", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "Python", Type: SearchTypeMultiField})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
		// Title and skills substring bonuses lift the top score
		plain, err := sys.Search(ctx, SearchQuery{Query: "Python"})
		require.NoError(t, err)
		assert.Greater(t, results[0].Score, plain[0].Score)
	})

	t.Run("unknown type behaves as semantic", func(t *testing.T) {
		odd, err := sys.Search(ctx, SearchQuery{Query: "Python", Type: SearchType("cosmic")})
		require.NoError(t, err)
		plain, err := sys.Search(ctx, SearchQuery{Query: "Python"})
		require.NoError(t, err)
		assert.Equal(t, plain, odd)
	})
}

func TestSystem_Search_ModelNotReady(t *testing.T) {
	sys, err := NewSystem(scenarioCorpus(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = sys.Search(ctx, SearchQuery{Query: "python"})
	assert.ErrorIs(t, err, search.ErrModelNotReady)

	// The failure is not cached; the same query works after Bootstrap.
	require.NoError(t, sys.Bootstrap(ctx))
	results, err := sys.Search(ctx, SearchQuery{Query: "python"})
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestSystem_Search_Location(t *testing.T) {
	sys := scenarioSystem(t)
	ctx := context.Background()

	t.Run("exact matches win", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "developer", Location: "Mumbai"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
	})

	t.Run("case-insensitive place", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "developer", Location: "  mUmBaI "})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
	})

	t.Run("nearby fallback", func(t *testing.T) {
		// No posting is located in Gurgaon; the Delhi record sits well
		// within the default radius.
		results, err := sys.Search(ctx, SearchQuery{Query: "developer", Location: "Gurgaon"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(2), results[0].Internship.Id)
	})

	t.Run("unknown place", func(t *testing.T) {
		results, err := sys.Search(ctx, SearchQuery{Query: "developer", Location: "Atlantis"})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

// countingMonitor counts how many ranked searches actually ran.
type countingMonitor struct {
	starts int
}

var _ search.SearchMonitor = (*countingMonitor)(nil)

func (m *countingMonitor) Start(_ string)               { m.starts++ }
func (m *countingMonitor) Candidates(_ []core.ID)       {}
func (m *countingMonitor) Fallback(_ string)            {}
func (m *countingMonitor) Finish(_ []core.SearchResult) {}

func TestSystem_Search_Cached(t *testing.T) {
	mock := clock.NewMock()
	monitor := &countingMonitor{}
	sys := scenarioSystem(t,
		WithClock(mock),
		WithEngineOptions(search.WithMonitor(monitor)))
	ctx := context.Background()

	q := SearchQuery{Query: "python developer", Location: "Mumbai"}

	first, err := sys.Search(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, monitor.starts)

	second, err := sys.Search(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, monitor.starts)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, sys.Health().SearchCache.Hits, int64(1))

	// A different tuple misses.
	_, err = sys.Search(ctx, SearchQuery{Query: "python developer", Location: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, 2, monitor.starts)

	// Expiry recomputes.
	mock.Add(61 * time.Minute)
	third, err := sys.Search(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, monitor.starts)
	assert.Equal(t, first, third)
}

func TestSystem_SearchByLocation(t *testing.T) {
	sys := scenarioSystem(t)
	ctx := context.Background()

	t.Run("exact match only", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "Mumbai", 0, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1)

		assert.Equal(t, core.ID(1), hits[0].Internship.Id)
		assert.False(t, hits[0].Nearby)
		assert.Zero(t, hits[0].DistanceKm)
	})

	t.Run("nearby backfill", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "Gurgaon", 0, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1)

		assert.Equal(t, core.ID(2), hits[0].Internship.Id)
		assert.True(t, hits[0].Nearby)
		assert.Greater(t, hits[0].DistanceKm, 20.0)
		assert.Less(t, hits[0].DistanceKm, 40.0)
	})

	t.Run("radius narrows backfill", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "Gurgaon", 5, 10)
		require.NoError(t, err)
		assert.NotNil(t, hits)
		assert.Empty(t, hits)
	})

	t.Run("unknown place", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "Atlantis", 0, 10)
		require.NoError(t, err)
		assert.NotNil(t, hits)
		assert.Empty(t, hits)
	})

	t.Run("blank place", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "   ", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("top k caps the list", func(t *testing.T) {
		hits, err := sys.SearchByLocation(ctx, "Delhi", 2000, 1)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, core.ID(2), hits[0].Internship.Id)
	})

	t.Run("case variants share a cache entry", func(t *testing.T) {
		before := sys.Health().LocationCache.Hits
		_, err := sys.SearchByLocation(ctx, "MUMBAI", 0, 10)
		require.NoError(t, err)
		assert.Greater(t, sys.Health().LocationCache.Hits, before)
	})
}

func TestSystem_SearchBySkills(t *testing.T) {
	sys := scenarioSystem(t)
	ctx := context.Background()

	results, err := sys.SearchBySkills(ctx, []string{"Python", "Flask"}, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, core.ID(1), results[0].Internship.Id)
	assert.Greater(t, results[0].Score, 0.0)

	empty, err := sys.SearchBySkills(ctx, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSystem_SearchByCategory(t *testing.T) {
	sys := scenarioSystem(t)
	ctx := context.Background()

	t.Run("browse without query", func(t *testing.T) {
		results, err := sys.SearchByCategory(ctx, "technology", "", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
		assert.Equal(t, core.ID(2), results[1].Internship.Id)
		assert.Zero(t, results[0].Score)
	})

	t.Run("browse honors top k", func(t *testing.T) {
		results, err := sys.SearchByCategory(ctx, "Technology", "", 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
	})

	t.Run("ranked within category", func(t *testing.T) {
		results, err := sys.SearchByCategory(ctx, "Technology", "python", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(1), results[0].Internship.Id)
		assert.Greater(t, results[0].Score, 0.01)
	})

	t.Run("unknown category", func(t *testing.T) {
		results, err := sys.SearchByCategory(ctx, "Quantum", "", 10)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestSystem_Locations(t *testing.T) {
	sys := scenarioSystem(t)
	assert.Equal(t, []string{"Mumbai", "Delhi"}, sys.Locations())
	assert.Equal(t, []string{"Technology"}, sys.Categories())
}

func TestSystem_NearbyPlaces(t *testing.T) {
	sys := scenarioSystem(t)

	places := sys.NearbyPlaces("Delhi", 0)
	require.NotEmpty(t, places)

	names := make([]string, 0, len(places))
	for i, p := range places {
		names = append(names, p.Name)
		assert.Greater(t, p.DistanceKm, 0.0)
		assert.LessOrEqual(t, p.DistanceKm, 100.0)
		if i > 0 {
			assert.GreaterOrEqual(t, p.DistanceKm, places[i-1].DistanceKm)
		}
	}
	assert.ElementsMatch(t, []string{"gurgaon", "noida"}, names)

	assert.Empty(t, sys.NearbyPlaces("Atlantis", 0))
}

func TestSystem_Search_LargerCorpus(t *testing.T) {
	c, err := corpus.New(corpus.Sample())
	require.NoError(t, err)
	sys, err := NewSystem(c)
	require.NoError(t, err)
	require.NoError(t, sys.Bootstrap(context.Background()))

	results, err := sys.Search(context.Background(), SearchQuery{Query: "python data analysis"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), DefaultTopK)

	// Scores arrive in non-increasing order.
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
	}
}
