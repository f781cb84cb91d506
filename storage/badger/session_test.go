package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/storage"
)

func newTestRepo(t *testing.T) storage.SessionRepository {
	t.Helper()
	repo, backend, err := NewMemorySessionRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testRecord(question string) *core.SessionRecord {
	return &core.SessionRecord{
		Id:             core.SessionID(question, "the document body"),
		Question:       question,
		DocumentLength: 17,
		Context:        "accumulated context",
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		repo := newTestRepo(t)
		record := testRecord("who wrote the letter?")

		require.NoError(t, repo.PutSession(ctx, record))

		got, err := repo.GetSession(ctx, record.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.Id, got.Id)
		assert.Equal(t, record.Question, got.Question)
		assert.Equal(t, record.DocumentLength, got.DocumentLength)
		assert.Equal(t, record.Context, got.Context)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get missing returns nil nil", func(t *testing.T) {
		repo := newTestRepo(t)

		got, err := repo.GetSession(ctx, core.ID(12345))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put replaces existing", func(t *testing.T) {
		repo := newTestRepo(t)
		record := testRecord("same question")
		require.NoError(t, repo.PutSession(ctx, record))

		updated := testRecord("same question")
		updated.Context = "a fresher context"
		require.NoError(t, repo.PutSession(ctx, updated))

		got, err := repo.GetSession(ctx, record.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "a fresher context", got.Context)
	})

	t.Run("invalid record rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		record := testRecord("q")
		record.Context = ""

		err := repo.PutSession(ctx, record)
		assert.ErrorIs(t, err, core.ErrInvalidSessionRecord)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newTestRepo(t)
		record := testRecord("to be deleted")
		require.NoError(t, repo.PutSession(ctx, record))

		require.NoError(t, repo.DeleteSession(ctx, record.Id))

		got, err := repo.GetSession(ctx, record.Id)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Deleting again is fine.
		require.NoError(t, repo.DeleteSession(ctx, record.Id))
	})
}
