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


// Package search ranks internship records against free-text queries.
//
// The Engine type scores every document of an immutable TF-IDF model by
// cosine similarity and applies a layered inclusion policy: results above a
// minimum similarity are kept, a floor of low scorers is admitted so short
// corpora still answer, and a final top-5 fallback guarantees a non-blank
// query against a non-empty corpus never comes back empty.
//
// On top of plain ranking the engine offers multi-field re-ranking with
// substring bonuses, category-restricted search over the corpus posting
// sets, and skill-list search.
//
// The served model sits behind an atomic pointer. Queries are pure reads
// and run concurrently without locks; a rebuild swaps the pointer so
// readers observe either the old model or the new one, never a mix.
package search
