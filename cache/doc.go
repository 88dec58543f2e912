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


// Package cache provides a TTL cache for computed search results.
//
// Entries become stale a fixed duration after insertion and are evicted
// lazily, on the next lookup that touches them. There is no background
// sweeper and no size bound: between Clear calls the cache grows with the
// number of distinct keys. This is a known limitation, acceptable because
// the key space (queries actually issued) is small in practice and the
// whole cache is cleared on every corpus reload.
//
// Time is read through an injected clock so tests can expire entries
// deterministically. GetOrCompute collapses concurrent misses for the
// same key into a single computation via singleflight.
package cache
