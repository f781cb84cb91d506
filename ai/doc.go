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

// Package ai provides abstractions for the language-model services longdoc
// consumes.
//
// The core engine never talks to a model directly; it depends on three
// narrow interfaces:
//
//   - Summarizer: produce a context-aware summary of one document chunk
//   - Compressor: shrink accumulated context while preserving salient facts
//   - Answerer: select a final answer given question, context and choices
//
// Provider aggregates the three. Summarizers and compressors are scoped to
// a question because both prompts steer the model toward question-relevant
// information.
//
// Implementation packages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// All calls are blocking and honor context cancellation; failures are
// returned to the caller, never retried here.
package ai
