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


package rolling

import "errors"

var (
	// ErrSummarizerRequired is returned when a summarizer is not provided.
	ErrSummarizerRequired = errors.New("summarizer required")

	// ErrCompressorRequired is returned when a compressor is not provided.
	ErrCompressorRequired = errors.New("compressor required")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidContextSize is returned when the window capacity is not positive.
	ErrInvalidContextSize = errors.New("context size must be positive")

	// ErrSummarize wraps a failure from the external summarize call.
	ErrSummarize = errors.New("summarize failed")

	// ErrCompress wraps a failure from the external compress call.
	ErrCompress = errors.New("compress failed")

	// ErrCompressorNoShrink is returned when the compressor does not
	// strictly shrink the window content. Appending after a non-shrinking
	// compression would let the window grow without bound, so the run
	// fails fast instead.
	ErrCompressorNoShrink = errors.New("compressor did not shrink content")
)
