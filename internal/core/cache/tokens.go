package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

const refreshPrefix = "refresh:"

// TokenStore persists refresh tokens in redis so logout and rotation actually
// revoke them server-side. Keys expire with the refresh TTL.
type TokenStore struct {
	c   *Cache
	ttl time.Duration
}

func NewTokenStore(c *Cache, ttl time.Duration) *TokenStore {
	return &TokenStore{c: c, ttl: ttl}
}

// Issue stores a fresh opaque token mapped to the user id.
func (s *TokenStore) Issue(ctx context.Context, uid string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	tok := hex.EncodeToString(buf)
	if err := s.c.RDB.Set(ctx, refreshPrefix+tok, uid, s.ttl).Err(); err != nil {
		return "", err
	}
	return tok, nil
}

// Resolve returns the user id for a live token, or "" when unknown/expired.
func (s *TokenStore) Resolve(ctx context.Context, tok string) (string, error) {
	uid, err := s.c.RDB.Get(ctx, refreshPrefix+tok).Result()
	if err != nil {
		return "", nil // treat miss and redis errors alike: token not valid
	}
	return uid, nil
}

// Revoke deletes the token; idempotent.
func (s *TokenStore) Revoke(ctx context.Context, tok string) error {
	return s.c.RDB.Del(ctx, refreshPrefix+tok).Err()
}

// Rotate revokes the old token and issues a replacement for the same user.
func (s *TokenStore) Rotate(ctx context.Context, old string) (uid, fresh string, err error) {
	uid, err = s.Resolve(ctx, old)
	if err != nil || uid == "" {
		return "", "", err
	}
	_ = s.Revoke(ctx, old)
	fresh, err = s.Issue(ctx, uid)
	return uid, fresh, err
}
