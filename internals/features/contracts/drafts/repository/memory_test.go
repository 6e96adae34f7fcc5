// file: internals/features/contracts/drafts/repository/memory_test.go
package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ithra_backend/internals/features/contracts/drafts/model"
)

func TestMemoryDraftRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDraftRepository()
	session := uuid.New()

	t.Run("get missing key returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, session, model.DraftKeyGuardian)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get", func(t *testing.T) {
		val := json.RawMessage(`{"name":"محمد"}`)
		require.NoError(t, repo.Set(ctx, session, model.DraftKeyGuardian, val))

		got, err := repo.Get(ctx, session, model.DraftKeyGuardian)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"محمد"}`, string(got))
	})

	t.Run("set overwrites the whole value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, session, model.DraftKeyGuardian, json.RawMessage(`{"name":"خالد"}`)))

		got, err := repo.Get(ctx, session, model.DraftKeyGuardian)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"خالد"}`, string(got))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		other := uuid.New()
		got, err := repo.Get(ctx, other, model.DraftKeyGuardian)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get all returns only written keys", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, session, model.DraftKeyStudent, json.RawMessage(`{"name":"أحمد"}`)))

		all, err := repo.GetAll(ctx, session)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Contains(t, all, model.DraftKeyGuardian)
		assert.Contains(t, all, model.DraftKeyStudent)
		assert.NotContains(t, all, model.DraftKeyPayment)
	})

	t.Run("clear removes listed keys", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, session, model.AllDraftKeys...))

		all, err := repo.GetAll(ctx, session)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
