package auth

import (
	"context"
	"time"

	"rentdesk/server/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Blacklist revokes tokens on sign-out. It is backed by redis when an
// address is configured and becomes a no-op otherwise, so single-node
// deployments can run without redis at the cost of sign-out being purely
// client-side.
type Blacklist struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewBlacklist(cfg *config.Config, logger *logrus.Logger) *Blacklist {
	bl := &Blacklist{logger: logger}
	if cfg.Redis.Addr == "" {
		return bl
	}

	bl.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return bl
}

// Revoke stores the token until its natural expiry.
func (b *Blacklist) Revoke(ctx context.Context, token string, ttl time.Duration) {
	if b.client == nil || ttl <= 0 {
		return
	}
	if err := b.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		b.logger.WithError(err).Warn("Failed to blacklist token")
	}
}

// IsRevoked reports whether the token was revoked. Redis errors fail open
// with a warning; an unreachable blacklist must not lock every user out.
func (b *Blacklist) IsRevoked(ctx context.Context, token string) bool {
	if b.client == nil {
		return false
	}
	_, err := b.client.Get(ctx, blacklistKey(token)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		b.logger.WithError(err).Warn("Blacklist lookup failed")
		return false
	}
	return true
}

func blacklistKey(token string) string {
	return "auth:blacklist:" + token
}
