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

package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/longdoc/core"
)

// Load reads and validates a task from a JSON file.
func Load(path string) (*core.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadTask, err)
	}

	var t core.Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadTask, path, err)
	}

	if err := core.ValidateTask(&t); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadTask, path, err)
	}

	return &t, nil
}

// LoadDir loads every *.json task in a directory, sorted by filename.
func LoadDir(dir string) ([]*core.Task, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadTask, err)
	}

	tasks := make([]*core.Task, 0, len(paths))
	for _, path := range paths {
		t, err := Load(path)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// WriteResult writes a prediction result as indented JSON, creating parent
// directories as needed.
func WriteResult(path string, result *core.TaskResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteResult, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteResult, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteResult, err)
	}
	return nil
}
