package geo

import (
	"log/slog"
	"slices"

	"github.com/Sanjay1766/OptiSearch-AI/core"
)

// DefaultRadiusKm is the radius used when a proximity query does not
// specify one.
const DefaultRadiusKm = 100.0

// Match pairs an internship with its distance from the query origin.
// Position is the record's index in the input slice.
type Match struct {
	Internship *core.Internship
	Position   int
	DistanceKm float64
}

// PlaceDistance pairs a registry place with its distance from the origin.
type PlaceDistance struct {
	Name       string
	DistanceKm float64
}

// ProximityFilter narrows record sets to postings near a named place.
type ProximityFilter struct {
	registry *Registry
	radiusKm float64
	logger   *slog.Logger
}

// FilterOption configures a ProximityFilter.
type FilterOption func(*ProximityFilter) error

// WithDefaultRadius sets the radius used when a query passes a
// non-positive one. Default is DefaultRadiusKm.
func WithDefaultRadius(radiusKm float64) FilterOption {
	return func(f *ProximityFilter) error {
		if radiusKm <= 0 {
			return ErrInvalidRadius
		}
		f.radiusKm = radiusKm
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) FilterOption {
	return func(f *ProximityFilter) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewProximityFilter creates a proximity filter over the given registry.
func NewProximityFilter(registry *Registry, opts ...FilterOption) (*ProximityFilter, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}

	f := &ProximityFilter{
		registry: registry,
		radiusKm: DefaultRadiusKm,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Registry returns the registry the filter resolves places against.
func (f *ProximityFilter) Registry() *Registry {
	return f.registry
}

// Nearby returns the records within radiusKm of the named origin, closest
// first. Records at equal distance keep their input order. An unknown
// origin yields an empty result, never an error. A non-positive radius
// falls back to the configured default.
func (f *ProximityFilter) Nearby(records []core.Internship, origin string, radiusKm float64) []Match {
	if radiusKm <= 0 {
		radiusKm = f.radiusKm
	}

	coord, ok := f.registry.Lookup(origin)
	if !ok {
		f.logger.Debug("unknown place in proximity query", "place", origin)
		return []Match{}
	}

	lats := make([]float64, len(records))
	lons := make([]float64, len(records))
	for i := range records {
		lats[i] = records[i].Latitude
		lons[i] = records[i].Longitude
	}
	distances := BatchDistanceKm(coord.Latitude, coord.Longitude, lats, lons)

	matches := make([]Match, 0, len(records))
	for i := range records {
		if distances[i] <= radiusKm {
			matches = append(matches, Match{
				Internship: &records[i],
				Position:   i,
				DistanceKm: distances[i],
			})
		}
	}

	// Stable: equal distances preserve corpus order
	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.DistanceKm < b.DistanceKm {
			return -1
		}
		if a.DistanceKm > b.DistanceKm {
			return 1
		}
		return 0
	})

	return matches
}

// NearbyPlaces returns registry places within radiusKm of the origin,
// excluding the origin itself, closest first. An unknown origin yields an
// empty result.
func (f *ProximityFilter) NearbyPlaces(origin string, radiusKm float64) []PlaceDistance {
	if radiusKm <= 0 {
		radiusKm = f.radiusKm
	}

	coord, ok := f.registry.Lookup(origin)
	if !ok {
		f.logger.Debug("unknown place in nearby-places query", "place", origin)
		return []PlaceDistance{}
	}

	places := f.registry.Places()
	out := make([]PlaceDistance, 0, len(places))
	for _, name := range places {
		other, _ := f.registry.Lookup(name)
		d := DistanceKm(coord.Latitude, coord.Longitude, other.Latitude, other.Longitude)
		// Zero distance is the origin itself
		if d > 0 && d <= radiusKm {
			out = append(out, PlaceDistance{Name: name, DistanceKm: d})
		}
	}

	slices.SortStableFunc(out, func(a, b PlaceDistance) int {
		if a.DistanceKm < b.DistanceKm {
			return -1
		}
		if a.DistanceKm > b.DistanceKm {
			return 1
		}
		return 0
	})

	return out
}
