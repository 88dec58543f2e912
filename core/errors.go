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

import "errors"

// Domain validation errors
var (
	// ErrInvalidInternship indicates an Internship failed validation.
	ErrInvalidInternship = errors.New("invalid internship")

	// ErrMissingID indicates the Id field is zero.
	ErrMissingID = errors.New("internship id is missing")

	// ErrNoSearchableText indicates every text field is blank, so the
	// record can never match a query.
	ErrNoSearchableText = errors.New("internship has no searchable text")

	// ErrInvalidCoordinates indicates latitude or longitude is outside
	// the valid range.
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)
