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


package tfidf

import "errors"

var (
	// ErrEmptyCorpus is returned when building over zero records.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrNoVocabulary is returned when no terms survive tokenization and
	// document-frequency pruning.
	ErrNoVocabulary = errors.New("no vocabulary terms survive pruning")

	// ErrInvalidSnapshot is returned when a snapshot's internal shape is
	// inconsistent and cannot back a model.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidMaxFeatures is returned when configuring a non-positive
	// vocabulary cap.
	ErrInvalidMaxFeatures = errors.New("max features must be positive")

	// ErrInvalidDocFreq is returned when document-frequency bounds are out
	// of range.
	ErrInvalidDocFreq = errors.New("invalid document frequency bound")
)
