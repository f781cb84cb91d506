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

package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/solver"
)

// TaskOutcome is the per-task result of a batch run. Exactly one of
// Result and Err is set.
type TaskOutcome struct {
	Task   *core.Task
	Result *core.TaskResult
	Err    error
}

// Runner solves many tasks concurrently on a bounded worker pool.
type Runner struct {
	solver *solver.Solver
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a batch runner around a solver.
func NewRunner(s *solver.Solver, opts ...Option) (*Runner, error) {
	if s == nil {
		return nil, ErrSolverRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		solver: s,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.pool.Release()
			return nil, err
		}
	}

	return r, nil
}

// Run solves all tasks and returns one outcome per task, in input order.
// A failing task records its error and does not affect the others. Run
// blocks until every submitted task has finished.
func (r *Runner) Run(ctx context.Context, tasks []*core.Task) []TaskOutcome {
	outcomes := make([]TaskOutcome, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		outcomes[i].Task = t

		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()
			result, err := r.solver.Solve(ctx, t)
			if err != nil {
				r.logger.Error("task failed", "task", taskID(t), "err", err)
				outcomes[i].Err = err
				return
			}
			outcomes[i].Result = result
		})
		if submitErr != nil {
			outcomes[i].Err = submitErr
			wg.Done()
		}
	}
	wg.Wait()

	return outcomes
}

// Release shuts down the worker pool. The runner must not be used after
// Release.
func (r *Runner) Release() {
	r.pool.Release()
}

func taskID(t *core.Task) string {
	if t == nil {
		return ""
	}
	return t.ID
}
