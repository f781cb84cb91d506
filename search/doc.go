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


// Package search provides keyword search and context expansion over a
// single long document.
//
// The Engine type implements two ranking strategies:
//   - Proximity search: boolean AND requiring every keyword within a
//     token-distance window of a base occurrence, scored by how tightly
//     the matches cluster.
//   - Fuzzy search: substring-based approximate matching, used as a
//     lower-confidence fallback when proximity search under-returns.
//
// Both strategies bound their work on very common terms by subsampling
// occurrence positions with an even stride, so a search over a pathological
// document stays fast at the cost of completeness.
//
// Every result carries a cursor (a character offset into the document)
// that can be fed back to ContextAt to read more surrounding text without
// re-running the search.
package search
