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


package optisearch

import (
	"context"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Sanjay1766/OptiSearch-AI/cache"
	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/geo"
	"github.com/Sanjay1766/OptiSearch-AI/search"
)

// SearchType selects the ranking strategy for composed searches.
type SearchType string

const (
	// SearchTypeSemantic ranks purely by cosine similarity.
	SearchTypeSemantic SearchType = "semantic"
	// SearchTypeMultiField adds field match bonuses on top of similarity.
	SearchTypeMultiField SearchType = "multi-field"
)

const (
	// DefaultTopK is used when a query does not specify a result count.
	DefaultTopK = 10
	// MaxTopK bounds the result count of any single query.
	MaxTopK = 100
)

// SearchQuery describes one composed search request.
type SearchQuery struct {
	Query    string
	Location string     // optional place narrowing
	Type     SearchType // semantic unless set to multi-field
	TopK     int        // DefaultTopK when zero or negative, capped at MaxTopK
}

// LocationHit is one record of a place query. Nearby marks records
// backfilled from the surrounding radius instead of matching the place
// exactly; only those carry a distance.
type LocationHit struct {
	Internship *core.Internship
	DistanceKm float64
	Nearby     bool
}

// normalizeTopK applies the default and the upper bound.
func normalizeTopK(topK int) int {
	if topK <= 0 {
		return DefaultTopK
	}
	if topK > MaxTopK {
		return MaxTopK
	}
	return topK
}

// Search runs a ranked query, optionally narrowed to a place. Results are
// served from the cache when an identical query was answered recently.
// A blank query or an unknown place yields an empty result, never an
// error; search.ErrModelNotReady is returned until Bootstrap completes.
func (s *System) Search(ctx context.Context, q SearchQuery) ([]core.SearchResult, error) {
	topK := normalizeTopK(q.TopK)
	searchType := q.Type
	if searchType != SearchTypeMultiField {
		searchType = SearchTypeSemantic
	}

	key := cache.SearchKey(q.Query, q.Location, string(searchType), topK)
	return s.searches.GetOrCompute(key, func() ([]core.SearchResult, error) {
		return s.composeSearch(q.Query, q.Location, searchType, topK)
	})
}

func (s *System) composeSearch(query, location string, searchType SearchType, topK int) ([]core.SearchResult, error) {
	var (
		results []core.SearchResult
		err     error
	)
	if searchType == SearchTypeMultiField {
		results, err = s.engine.MultiFieldSearch(query, search.FieldWeights{}, topK)
	} else {
		results, err = s.engine.Search(query, topK)
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(location) == "" || len(results) == 0 {
		return results, nil
	}
	return s.narrowToLocation(results, location, topK), nil
}

// narrowToLocation keeps ranked results tied to a place. Exact location
// matches win and keep relevance order; without any, results within the
// default radius survive, closest first.
func (s *System) narrowToLocation(results []core.SearchResult, location string, topK int) []core.SearchResult {
	if exact := s.corpus.LocationSet(location); exact != nil {
		kept := make([]core.SearchResult, 0, len(results))
		for _, r := range results {
			if pos, ok := s.corpus.PositionOf(r.Internship.Id); ok && exact.Contains(uint32(pos)) {
				kept = append(kept, r)
			}
		}
		if len(kept) > 0 {
			return truncate(kept, topK)
		}
	}

	matches := s.filter.Nearby(s.corpus.Records(), location, 0)
	if len(matches) == 0 {
		return []core.SearchResult{}
	}
	nearby := roaring.New()
	distances := make(map[uint32]float64, len(matches))
	for _, m := range matches {
		nearby.Add(uint32(m.Position))
		distances[uint32(m.Position)] = m.DistanceKm
	}

	type locatedResult struct {
		result     core.SearchResult
		distanceKm float64
	}
	located := make([]locatedResult, 0, len(results))
	for _, r := range results {
		pos, ok := s.corpus.PositionOf(r.Internship.Id)
		if !ok || !nearby.Contains(uint32(pos)) {
			continue
		}
		located = append(located, locatedResult{result: r, distanceKm: distances[uint32(pos)]})
	}

	// Closest first; equal distances keep relevance order
	sort.SliceStable(located, func(i, j int) bool {
		return located[i].distanceKm < located[j].distanceKm
	})

	kept := make([]core.SearchResult, 0, len(located))
	for _, l := range located {
		kept = append(kept, l.result)
	}
	return truncate(kept, topK)
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// SearchByLocation lists postings for a place: exact location matches in
// corpus order, then records within radiusKm of the place, closest first,
// until topK. A non-positive radius uses the configured default. Unknown
// places yield an empty result, never an error.
func (s *System) SearchByLocation(ctx context.Context, location string, radiusKm float64, topK int) ([]LocationHit, error) {
	topK = normalizeTopK(topK)
	if radiusKm <= 0 {
		radiusKm = s.radiusKm
	}
	if strings.TrimSpace(location) == "" {
		return []LocationHit{}, nil
	}

	key := cache.ProximityKey(strings.ToLower(strings.TrimSpace(location)), radiusKm)
	hits, err := s.locations.GetOrCompute(key, func() ([]LocationHit, error) {
		return s.locationHits(location, radiusKm), nil
	})
	if err != nil {
		return nil, err
	}

	hits = truncate(hits, topK)
	// Copy so callers never alias the cached slice
	out := make([]LocationHit, len(hits))
	copy(out, hits)
	return out, nil
}

// locationHits lists exact matches for the place in corpus order followed
// by other records within the radius, closest first.
func (s *System) locationHits(location string, radiusKm float64) []LocationHit {
	hits := make([]LocationHit, 0)
	seen := roaring.New()

	if exact := s.corpus.LocationSet(location); exact != nil {
		iter := exact.Iterator()
		for iter.HasNext() {
			pos := iter.Next()
			hits = append(hits, LocationHit{Internship: s.corpus.At(int(pos))})
			seen.Add(pos)
		}
	}

	for _, m := range s.filter.Nearby(s.corpus.Records(), location, radiusKm) {
		if seen.Contains(uint32(m.Position)) {
			continue
		}
		hits = append(hits, LocationHit{
			Internship: m.Internship,
			DistanceKm: m.DistanceKm,
			Nearby:     true,
		})
	}
	return hits
}

// SearchBySkills ranks postings against the joined skill list.
func (s *System) SearchBySkills(ctx context.Context, skills []string, topK int) ([]core.SearchResult, error) {
	return s.engine.SkillSearch(skills, normalizeTopK(topK))
}

// SearchByCategory serves postings of one category. With a query the
// engine ranks within the category; without one the category's postings
// are returned in corpus order with zero scores.
func (s *System) SearchByCategory(ctx context.Context, category, query string, topK int) ([]core.SearchResult, error) {
	topK = normalizeTopK(topK)
	if strings.TrimSpace(query) != "" {
		return s.engine.CategorySearch(query, category, topK)
	}

	set := s.corpus.CategorySet(category)
	if set == nil {
		return []core.SearchResult{}, nil
	}
	results := make([]core.SearchResult, 0, topK)
	iter := set.Iterator()
	for iter.HasNext() && len(results) < topK {
		results = append(results, core.SearchResult{Internship: s.corpus.At(int(iter.Next()))})
	}
	return results, nil
}

// Locations returns the distinct posting locations in first-appearance order.
func (s *System) Locations() []string {
	return s.corpus.Locations()
}

// Categories returns the distinct posting categories in first-appearance order.
func (s *System) Categories() []string {
	return s.corpus.Categories()
}

// NearbyPlaces returns known places within radiusKm of the named place,
// excluding the place itself, closest first.
func (s *System) NearbyPlaces(location string, radiusKm float64) []geo.PlaceDistance {
	return s.filter.NearbyPlaces(location, radiusKm)
}
