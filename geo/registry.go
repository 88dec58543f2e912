package geo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sanjay1766/OptiSearch-AI/core"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// builtinPlaces covers the major Indian internship hubs the dataset uses.
var builtinPlaces = map[string]Coordinate{
	"bangalore": {12.9716, 77.5946},
	"mumbai":    {19.0760, 72.8777},
	"delhi":     {28.7041, 77.1025},
	"hyderabad": {17.3850, 78.4867},
	"pune":      {18.5204, 73.8567},
	"chennai":   {13.0827, 80.2707},
	"kolkata":   {22.5726, 88.3639},
	"jaipur":    {26.9124, 75.7873},
	"lucknow":   {26.8467, 80.9462},
	"ahmedabad": {23.0225, 72.5714},
	"gurgaon":   {28.4595, 77.0266},
	"noida":     {28.5721, 77.3565},
}

// Registry resolves place names to coordinates.
// Lookups are case-insensitive and ignore surrounding whitespace.
type Registry struct {
	places map[string]Coordinate
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry) error

// WithPlace registers an additional place or overrides a built-in one.
func WithPlace(name string, lat, lon float64) RegistryOption {
	return func(r *Registry) error {
		key := normalizePlace(name)
		if key == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidPlace)
		}
		if !core.IsValidCoordinate(lat, lon) {
			return fmt.Errorf("%w: %q at (%v, %v)", ErrInvalidPlace, name, lat, lon)
		}
		r.places[key] = Coordinate{Latitude: lat, Longitude: lon}
		return nil
	}
}

// NewRegistry creates a registry preloaded with the built-in places.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		places: make(map[string]Coordinate, len(builtinPlaces)),
	}
	for name, coord := range builtinPlaces {
		r.places[name] = coord
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Lookup resolves a place name to its coordinates.
// The second return value reports whether the place is known.
func (r *Registry) Lookup(name string) (Coordinate, bool) {
	coord, ok := r.places[normalizePlace(name)]
	return coord, ok
}

// Places returns the known place names in sorted order.
func (r *Registry) Places() []string {
	names := make([]string, 0, len(r.places))
	for name := range r.places {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered places.
func (r *Registry) Len() int {
	return len(r.places)
}

func normalizePlace(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
