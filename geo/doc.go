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


// Package geo provides place resolution and proximity filtering for
// internship postings.
//
// The package has three parts:
//   - Registry: a gazetteer mapping place names to coordinates, with
//     case-insensitive lookup
//   - DistanceKm / BatchDistanceKm: great-circle distance via the
//     haversine formula
//   - ProximityFilter: narrows a record set to postings within a radius
//     of a named place, ordered nearest first
//
// Unknown places are not errors. A lookup against an unregistered name
// reports a not-found flag and proximity queries over it return empty
// results, so callers can treat geography as a best-effort narrowing
// step rather than a precondition.
package geo
