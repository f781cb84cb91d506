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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidTask indicates a Task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrEmptyQuestion indicates the task question is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyContext indicates the task context is empty.
	ErrEmptyContext = errors.New("context cannot be empty")

	// ErrChoiceCount indicates the task does not carry exactly four choices.
	ErrChoiceCount = errors.New("task must have exactly 4 choices")

	// ErrInvalidSessionRecord indicates a SessionRecord failed validation.
	ErrInvalidSessionRecord = errors.New("invalid session record")

	// ErrEmptySessionContext indicates the cached context is empty.
	ErrEmptySessionContext = errors.New("session context cannot be empty")
)
