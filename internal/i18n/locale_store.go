package i18n

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const preferenceTTL = 30 * 24 * time.Hour

// Preferences persists the visitor's chosen locale between sessions.
// Writes are best-effort: the caller logs failures and moves on.
type Preferences interface {
	Set(ctx context.Context, sessionID, locale string) error
	Get(ctx context.Context, sessionID string) (string, error)
}

type redisPreferences struct {
	client *redis.Client
}

func NewRedisPreferences(client *redis.Client) Preferences {
	return &redisPreferences{client: client}
}

func preferenceKey(sessionID string) string {
	return fmt.Sprintf("preferred_locale:%s", sessionID)
}

func (p *redisPreferences) Set(ctx context.Context, sessionID, locale string) error {
	return p.client.Set(ctx, preferenceKey(sessionID), locale, preferenceTTL).Err()
}

// Get returns "" without error when no preference is stored.
func (p *redisPreferences) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := p.client.Get(ctx, preferenceKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
