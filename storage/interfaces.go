package storage

import (
	"context"

	"github.com/poiesic/longdoc/core"
)

// SessionRepository persists the final rolling context produced for a
// (question, document) pair, keyed by core.SessionID. Implementations
// must be safe for concurrent use.
type SessionRepository interface {
	// PutSession stores a session record, replacing any existing record
	// with the same ID.
	PutSession(ctx context.Context, record *core.SessionRecord) error

	// GetSession retrieves a session record by ID.
	// Returns (nil, nil) if no record exists.
	GetSession(ctx context.Context, id core.ID) (*core.SessionRecord, error)

	// DeleteSession removes a session record. Deleting a missing record
	// is not an error.
	DeleteSession(ctx context.Context, id core.ID) error

	// Close releases resources held by the repository.
	Close() error
}
