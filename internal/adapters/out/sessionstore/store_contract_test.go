package sessionstore_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour shared by every ports.SessionStore.
// Times are anchored on the wall clock so that stores with server-side
// expiry keep the entries alive for the duration of the test.
func runStoreContract(t *testing.T, newStore func(t *testing.T) ports.SessionStore) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("code is consumed once", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
			Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(5 * time.Minute),
		}))

		require.NoError(t, store.ConsumeCode(ctx, "ana@example.com", "123456", now))
		require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "123456", now), session.ErrCodeNotFound)
	})

	t.Run("mismatch keeps the code", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
			Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(5 * time.Minute),
		}))

		require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "123457", now), session.ErrCodeMismatch)
		require.NoError(t, store.ConsumeCode(ctx, "ana@example.com", "123456", now))
	})

	t.Run("expired code is cleared", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
			Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(5 * time.Minute),
		}))

		later := now.Add(5 * time.Minute)
		require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "123456", later), session.ErrCodeExpired)
		require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "123456", now), session.ErrCodeNotFound)
	})

	t.Run("a new code replaces the pending one", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		for _, code := range []string{"111111", "222222"} {
			require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
				Email: "ana@example.com", Code: code, ExpiresAt: now.Add(5 * time.Minute),
			}))
		}

		require.ErrorIs(t, store.ConsumeCode(ctx, "ana@example.com", "111111", now), session.ErrCodeMismatch)
		require.NoError(t, store.ConsumeCode(ctx, "ana@example.com", "222222", now))
	})

	t.Run("concurrent consumers: exactly one wins", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
			Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(5 * time.Minute),
		}))

		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if store.ConsumeCode(ctx, "ana@example.com", "123456", now) == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("temporary session", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		ts := session.TemporarySession{ID: "tmp-1", Email: "ana@example.com", ExpiresAt: now.Add(time.Hour)}
		require.NoError(t, store.SaveTemporarySession(ctx, ts))

		got, err := store.GetTemporarySession(ctx, "tmp-1", now)
		require.NoError(t, err)
		assert.Equal(t, ts.Email, got.Email)
		assert.True(t, ts.ExpiresAt.Equal(got.ExpiresAt))

		_, err = store.GetTemporarySession(ctx, "tmp-1", now.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = store.GetTemporarySession(ctx, "unknown", now)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("revoked token until its expiry", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.RevokeToken(ctx, "jti-1", now.Add(time.Hour)))

		revoked, err := store.IsTokenRevoked(ctx, "jti-1", now)
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = store.IsTokenRevoked(ctx, "jti-1", now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, revoked)

		revoked, err = store.IsTokenRevoked(ctx, "jti-2", now)
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("purge drops only expired entries", func(t *testing.T) {
		store, ctx := newStore(t), t.Context()
		require.NoError(t, store.SaveCode(ctx, session.OneTimeCode{
			Email: "ana@example.com", Code: "123456", ExpiresAt: now.Add(2 * time.Minute),
		}))
		require.NoError(t, store.SaveTemporarySession(ctx, session.TemporarySession{
			ID: "tmp-1", Email: "ana@example.com", ExpiresAt: now.Add(time.Hour),
		}))
		require.NoError(t, store.RevokeToken(ctx, "jti-1", now.Add(3*time.Minute)))

		purged, err := store.PurgeExpired(ctx, now.Add(10*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2, purged)

		_, err = store.GetTemporarySession(ctx, "tmp-1", now)
		require.NoError(t, err)
	})
}
