package cache

import (
	"strconv"
	"strings"
)

// keySeparator joins key parts. The unit-separator control byte does not
// occur in natural query or place text, so distinct parameter tuples
// always build distinct keys.
const keySeparator = "\x1f"

// SearchKey builds the cache key for a composed search request.
func SearchKey(query, location, searchType string, topK int) string {
	return strings.Join([]string{
		"search", query, location, searchType, strconv.Itoa(topK),
	}, keySeparator)
}

// ProximityKey builds the cache key for a location/radius lookup.
func ProximityKey(location string, radiusKm float64) string {
	return strings.Join([]string{
		"proximity", location, strconv.FormatFloat(radiusKm, 'f', -1, 64),
	}, keySeparator)
}
