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


// Package index builds the word-position index for a document.
//
// A document is tokenized once into lowercased word tokens that record
// their exact character offsets, and each distinct word is mapped to the
// ascending set of token ordinals where it occurs. Position sets are
// stored as roaring bitmaps, which gives cheap rank queries for the
// proximity-window checks used by search.
//
// Construction is O(document length). The index is immutable after Build
// returns and is safe for unlimited concurrent readers.
package index
