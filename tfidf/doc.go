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


// Package tfidf builds the term-frequency/inverse-document-frequency
// vector space used for semantic ranking.
//
// A Model is built once over the full corpus and is immutable afterwards:
// callers either hold a complete model or none, never a partially built
// one. Building tokenizes each posting's searchable text into lowercase
// unigrams and bigrams, selects a bounded vocabulary, and materializes one
// L2-normalized vector per document.
//
// Vocabulary selection rules:
//   - a term must appear in at least MinDocFreq documents (default 1)
//   - a term appearing in more than MaxDocFreqRatio of all documents
//     (default 0.95) is dropped as near-universal
//   - if more terms survive than MaxFeatures (default 3000), the highest
//     corpus-wide term counts win, ties broken alphabetically
//   - final column order is alphabetical, so identical corpora always
//     produce identical models
//
// Transform maps arbitrary query text into the fixed vocabulary; terms
// outside it contribute nothing. Because document vectors and transformed
// queries are both L2-normalized, cosine similarity reduces to a dot
// product.
//
// A built model can be captured as a Snapshot and later reconstituted
// with FromSnapshot, skipping tokenization entirely. Snapshots carry the
// corpus fingerprint they were built from; loading code must discard a
// snapshot whose fingerprint or shape no longer matches.
package tfidf
