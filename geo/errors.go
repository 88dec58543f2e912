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


package geo

import "errors"

var (
	// ErrRegistryRequired is returned when a place registry is not provided.
	ErrRegistryRequired = errors.New("place registry required")

	// ErrInvalidPlace is returned when registering a place with a blank
	// name or out-of-range coordinates.
	ErrInvalidPlace = errors.New("invalid place")

	// ErrInvalidRadius is returned when configuring a non-positive
	// default radius.
	ErrInvalidRadius = errors.New("radius must be positive")
)
