package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by RedisStore.
const DefaultNamespace = "parcels:session"

const (
	fieldCode      = "code"
	fieldEmail     = "email"
	fieldExpiresAt = "expires_at"
)

// consumeScript checks and deletes a pending code atomically. It returns
// 0 when no code is pending, 1 when the code expired (and was deleted),
// 2 on mismatch (the code is kept) and 3 on success.
var consumeScript = redis.NewScript(`
local code = redis.call("HGET", KEYS[1], "code")
if not code then
  return 0
end
local expires = tonumber(redis.call("HGET", KEYS[1], "expires_at"))
if expires <= tonumber(ARGV[2]) then
  redis.call("DEL", KEYS[1])
  return 1
end
if code ~= ARGV[1] then
  return 2
end
redis.call("DEL", KEYS[1])
return 3
`)

// RedisStore is a ports.SessionStore shared through Redis. Every entry is a
// hash holding its own expiry, so reads honour the injected clock, and Redis
// evicts the key once that instant passes.
type RedisStore struct {
	client    redis.UniversalClient
	namespace string
}

func NewRedisStore(client redis.UniversalClient, namespace string) *RedisStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisStore{client: client, namespace: namespace}
}

func (s *RedisStore) SaveCode(ctx context.Context, code session.OneTimeCode) error {
	return s.put(ctx, s.key("otp", code.Email), code.ExpiresAt, map[string]any{
		fieldCode: code.Code,
	})
}

func (s *RedisStore) ConsumeCode(ctx context.Context, email, code string, now time.Time) error {
	result, err := consumeScript.Run(ctx, s.client, []string{s.key("otp", email)}, code, now.UnixMilli()).Int()
	if err != nil {
		return fmt.Errorf("consume one-time code: %w", err)
	}

	switch result {
	case 0:
		return session.ErrCodeNotFound
	case 1:
		return session.ErrCodeExpired
	case 2:
		return session.ErrCodeMismatch
	default:
		return nil
	}
}

func (s *RedisStore) SaveTemporarySession(ctx context.Context, ts session.TemporarySession) error {
	return s.put(ctx, s.key("tmp", ts.ID), ts.ExpiresAt, map[string]any{
		fieldEmail: ts.Email,
	})
}

func (s *RedisStore) GetTemporarySession(ctx context.Context, id string, now time.Time) (session.TemporarySession, error) {
	values, err := s.client.HGetAll(ctx, s.key("tmp", id)).Result()
	if err != nil {
		return session.TemporarySession{}, err
	}

	expiresAt, ok := parseExpiry(values)
	if !ok || !now.Before(expiresAt) {
		return session.TemporarySession{}, errs.NewObjectNotFoundError("temporary_session", id)
	}

	return session.TemporarySession{ID: id, Email: values[fieldEmail], ExpiresAt: expiresAt}, nil
}

func (s *RedisStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.put(ctx, s.key("revoked", tokenID), expiresAt, nil)
}

func (s *RedisStore) IsTokenRevoked(ctx context.Context, tokenID string, now time.Time) (bool, error) {
	raw, err := s.client.HGet(ctx, s.key("revoked", tokenID), fieldExpiresAt).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, err
	}
	return now.Before(time.UnixMilli(ms)), nil
}

// PurgeExpired walks the namespace and deletes entries expired at now.
// Redis already evicts them at their own expiry; this catches clock skew
// between the application and the server.
func (s *RedisStore) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	purged := 0
	iter := s.client.Scan(ctx, 0, s.namespace+":*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		values, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return purged, err
		}
		expiresAt, ok := parseExpiry(values)
		if ok && now.Before(expiresAt) {
			continue
		}
		n, err := s.client.Del(ctx, key).Result()
		if err != nil {
			return purged, err
		}
		purged += int(n)
	}
	return purged, iter.Err()
}

func (s *RedisStore) put(ctx context.Context, key string, expiresAt time.Time, fields map[string]any) error {
	values := map[string]any{fieldExpiresAt: expiresAt.UnixMilli()}
	for k, v := range fields {
		values[k] = v
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		pipe.PExpireAt(ctx, key, expiresAt)
		return nil
	})
	return err
}

func (s *RedisStore) key(kind, id string) string {
	return s.namespace + ":" + kind + ":" + id
}

func parseExpiry(values map[string]string) (time.Time, bool) {
	raw, ok := values[fieldExpiresAt]
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
