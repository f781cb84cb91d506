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

package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	return &SessionRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SessionRepository has no resources to release;
// the shared backend is closed by its owner.
func (r *SessionRepository) Close() error {
	return nil
}

// PutSession stores a session record, replacing any existing record with
// the same ID. The record is validated first; a zero CreatedAt is set to
// the current time.
func (r *SessionRepository) PutSession(ctx context.Context, record *core.SessionRecord) error {
	if err := core.ValidateSessionRecord(record); err != nil {
		return err
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(record.Id)
		value := storage.MarshalSessionRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a session record by ID.
// Returns (nil, nil) if no record exists.
func (r *SessionRepository) GetSession(ctx context.Context, id core.ID) (*core.SessionRecord, error) {
	var record *core.SessionRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSessionKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			record, err = storage.UnmarshalSessionRecord(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteSession removes a session record. Deleting a missing record is
// not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSessionKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
