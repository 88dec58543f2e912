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


// Package corpus loads internship records and owns the derived views the
// search layers work from.
//
// A Corpus holds records in load order and builds its views once at
// construction: the distinct location and category lists (first-appearance
// order, matching the source data), roaring posting sets mapping lowercased
// categories and locations to record positions, and the cached corpus
// fingerprint that keys model snapshots.
//
// Records are loaded from CSV with a header row. Column order is free and
// unknown columns are ignored. A malformed cell never rejects a row: numeric
// fields default to zero, text fields to empty, and records that fail
// validation are kept with a logged warning. The corpus is immutable after
// construction; incorporating new data means loading a fresh Corpus and
// rebuilding the model.
package corpus
