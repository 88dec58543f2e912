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


package core

import (
	"fmt"
	"strings"
)

// ValidateInternship validates an Internship according to domain rules.
//
// Validation rules:
//   - Id must be non-zero
//   - At least one of the text fields must be non-blank
//   - Latitude must be within [-90, 90], longitude within [-180, 180]
//
// NOT validated:
//   - Location (records without a known place simply never match
//     proximity queries)
//   - Stipend and DurationMonths (display-only fields)
//
// Loaders treat a validation failure as a warning, not a rejection; a
// degraded record still participates in search with whatever text it has.
func ValidateInternship(internship *Internship) error {
	if internship == nil {
		return fmt.Errorf("%w: internship is nil", ErrInvalidInternship)
	}

	if internship.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInternship, ErrMissingID)
	}

	if strings.TrimSpace(internship.SearchText()) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInternship, ErrNoSearchableText)
	}

	if !IsValidCoordinate(internship.Latitude, internship.Longitude) {
		return fmt.Errorf("%w: %w", ErrInvalidInternship, ErrInvalidCoordinates)
	}

	return nil
}

// IsValidCoordinate checks that a latitude/longitude pair is within range.
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
