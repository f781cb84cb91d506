package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/longdoc/ai"
	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/rolling"
	"github.com/poiesic/longdoc/storage"
)

const (
	// DefaultChunkSize is the document stride in characters.
	DefaultChunkSize = 1_000_000

	// DefaultContextSize is the rolling window capacity in characters.
	DefaultContextSize = 500_000
)

// Solver answers multiple-choice questions over long documents.
type Solver struct {
	provider    ai.Provider
	sessions    storage.SessionRepository
	chunkSize   int
	contextSize int
	logger      *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithChunkSize sets the document stride in characters.
func WithChunkSize(size int) Option {
	return func(s *Solver) error {
		if size <= 0 {
			return rolling.ErrInvalidChunkSize
		}
		s.chunkSize = size
		return nil
	}
}

// WithContextSize sets the rolling window capacity in characters.
func WithContextSize(size int) Option {
	return func(s *Solver) error {
		if size <= 0 {
			return rolling.ErrInvalidContextSize
		}
		s.contextSize = size
		return nil
	}
}

// WithSessionRepository enables context caching. Without a repository
// every Solve runs the full document pass.
func WithSessionRepository(sessions storage.SessionRepository) Option {
	return func(s *Solver) error {
		s.sessions = sessions
		return nil
	}
}

// NewSolver creates a solver backed by the given AI provider.
func NewSolver(provider ai.Provider, opts ...Option) (*Solver, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	s := &Solver{
		provider:    provider,
		chunkSize:   DefaultChunkSize,
		contextSize: DefaultContextSize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Solve answers a task. The task is validated, its document is reduced to
// a bounded context (cached when a session repository is configured), and
// the answer service picks a choice letter.
func (s *Solver) Solve(ctx context.Context, task *core.Task) (*core.TaskResult, error) {
	if task == nil {
		return nil, ErrTaskRequired
	}
	if err := core.ValidateTask(task); err != nil {
		return nil, err
	}

	logger := s.logger.With("task", task.ID)
	logger.Info("solving task",
		"documentSize", len(task.Context),
		"chunkSize", s.chunkSize,
		"contextSize", s.contextSize)

	contextText, err := s.buildContext(ctx, task, logger)
	if err != nil {
		return nil, err
	}

	answer, err := s.provider.Answerer().Answer(ctx, task.Question, contextText, task.Choices)
	if err != nil {
		return nil, fmt.Errorf("answer selection failed: %w", err)
	}

	logger.Info("task solved", "answer", answer)
	return &core.TaskResult{
		TaskID:          task.ID,
		PredictedAnswer: answer,
		Choices:         task.Choices,
	}, nil
}

// buildContext returns the bounded context for the task document, from
// cache when possible. Cache failures are logged and otherwise ignored;
// the pipeline result always wins.
func (s *Solver) buildContext(ctx context.Context, task *core.Task, logger *slog.Logger) (string, error) {
	sessionID := core.SessionID(task.Question, task.Context)

	if s.sessions != nil {
		record, err := s.sessions.GetSession(ctx, sessionID)
		if err != nil {
			logger.Warn("session cache lookup failed", "err", err)
		} else if record != nil {
			logger.Info("using cached context", "contextSize", len(record.Context))
			return record.Context, nil
		}
	}

	pipeline, err := rolling.NewPipeline(
		s.provider.ChunkSummarizer(task.Question),
		s.provider.ContextCompressor(task.Question),
		s.chunkSize,
		s.contextSize,
		rolling.WithLogger(logger),
	)
	if err != nil {
		return "", err
	}

	contextText, err := pipeline.Run(ctx, task.Context)
	if err != nil {
		return "", err
	}

	if s.sessions != nil && contextText != "" {
		record := &core.SessionRecord{
			Id:             sessionID,
			Question:       task.Question,
			DocumentLength: len(task.Context),
			Context:        contextText,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.sessions.PutSession(ctx, record); err != nil {
			logger.Warn("session cache store failed", "err", err)
		}
	}

	return contextText, nil
}
