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

import "fmt"

// ValidateTask validates a Task according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//   - Context must not be empty
//   - Choices must contain exactly 4 entries
//
// NOT validated:
//   - ID, Domain, SubDomain, Difficulty, Length (informational only)
//   - Answer (present only for evaluation)
func ValidateTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}

	if task.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyQuestion)
	}

	if task.Context == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyContext)
	}

	if len(task.Choices) != 4 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidTask, ErrChoiceCount, len(task.Choices))
	}

	return nil
}

// ValidateSessionRecord validates a SessionRecord according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//   - Context must not be empty
//   - DocumentLength must be positive
func ValidateSessionRecord(record *SessionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSessionRecord)
	}

	if record.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSessionRecord, ErrEmptyQuestion)
	}

	if record.Context == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSessionRecord, ErrEmptySessionContext)
	}

	if record.DocumentLength <= 0 {
		return fmt.Errorf("%w: document length must be positive", ErrInvalidSessionRecord)
	}

	return nil
}
