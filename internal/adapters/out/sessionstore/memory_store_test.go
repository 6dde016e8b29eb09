package sessionstore_test

import (
	"testing"
	"time"

	"parcels/internal/adapters/out/sessionstore"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(*testing.T) ports.SessionStore {
		return sessionstore.NewMemoryStore()
	})
}

func TestMemoryStore_Clear(t *testing.T) {
	store, ctx := sessionstore.NewMemoryStore(), t.Context()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
		Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(time.Minute),
	}))

	store.Clear()

	require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "123456", now), session.ErrCodeNotFound)
}
