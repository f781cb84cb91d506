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

package longdoc

import (
	"log/slog"

	"github.com/poiesic/longdoc/ai"
	"github.com/poiesic/longdoc/ai/openai"
	"github.com/poiesic/longdoc/batch"
	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/search"
	"github.com/poiesic/longdoc/solver"
	"github.com/poiesic/longdoc/storage"
	"github.com/poiesic/longdoc/storage/badger"
)

// Workbench wires the session cache and AI provider together and hands
// out solvers, batch runners and search engines built on them.
type Workbench struct {
	backend  *badger.Backend
	sessions storage.SessionRepository
	provider ai.Provider
	logger   *slog.Logger
}

// WorkbenchOption configures a Workbench.
type WorkbenchOption func(*workbenchOptions)

type workbenchOptions struct {
	aiConfig ai.Config
	inMemory bool
}

// WithAIConfig sets the AI endpoint configuration.
func WithAIConfig(config ai.Config) WorkbenchOption {
	return func(o *workbenchOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage keeps the session cache in memory, discarding it
// on Close.
func WithInMemoryStorage() WorkbenchOption {
	return func(o *workbenchOptions) {
		o.inMemory = true
	}
}

// NewWorkbench opens the session cache at filePath and connects the AI
// provider. Close releases both.
func NewWorkbench(filePath string, opts ...WorkbenchOption) (*Workbench, error) {
	options := &workbenchOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	sessions, err := badger.NewSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		sessions.Close()
		backend.Close()
		return nil, err
	}

	return &Workbench{
		backend:  backend,
		sessions: sessions,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close shuts down the AI provider and the session cache.
func (w *Workbench) Close() error {
	if err := w.provider.Close(); err != nil {
		w.logger.Error("error closing AI provider", "err", err)
	}

	if err := w.sessions.Close(); err != nil {
		w.logger.Error("error closing session repository", "err", err)
		return err
	}

	if err := w.backend.Close(); err != nil {
		w.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SessionRepository returns the session cache.
func (w *Workbench) SessionRepository() storage.SessionRepository {
	return w.sessions
}

// Provider returns the AI provider.
func (w *Workbench) Provider() ai.Provider {
	return w.provider
}

// NewSolver creates a solver wired to the workbench's provider and
// session cache.
func (w *Workbench) NewSolver(opts ...solver.Option) (*solver.Solver, error) {
	opts = append([]solver.Option{solver.WithSessionRepository(w.sessions)}, opts...)
	return solver.NewSolver(w.provider, opts...)
}

// NewBatchRunner creates a batch runner around a workbench solver.
func (w *Workbench) NewBatchRunner(solverOpts []solver.Option, opts ...batch.Option) (*batch.Runner, error) {
	s, err := w.NewSolver(solverOpts...)
	if err != nil {
		return nil, err
	}
	return batch.NewRunner(s, opts...)
}

// NewSearchEngine creates a search engine over a document. The engine is
// independent of the workbench's storage and provider.
func (w *Workbench) NewSearchEngine(document *core.Document, opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(document, opts...)
}
