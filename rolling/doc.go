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


// Package rolling implements bounded rolling-context compression over a
// long document.
//
// The document is cut into sequential, non-overlapping chunks. Each chunk
// is summarized against the context accumulated so far; when the context
// window cannot fit the next summary, the whole window is compressed
// first, then the summary is appended. After the last chunk the window's
// content is the bounded representation of the entire document.
//
// The pipeline is a strictly ordered single-pass fold: chunk i's summary
// depends on the window state left by chunk i-1, so chunks cannot be
// processed in parallel without changing the semantics. Summarization and
// compression are blocking calls to an external service; the pipeline
// honors context cancellation around each call and aborts the run on the
// first failure.
package rolling
