package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist stores revoked JWTs until their natural expiry. Tokens are
// keyed by their SHA-256 digest so raw tokens never land in Redis.
// Key format: denylist:<sha256(token)>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks the token as revoked for ttl.
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(sum[:])
}
