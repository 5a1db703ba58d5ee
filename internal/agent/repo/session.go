package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/proraahi-core/server/internal/agent/model"
	errx "github.com/proraahi-core/server/internal/core/error"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// RedisSessionStore keeps the SessionContext of each session as one JSON value.
// The last Put wins.
type RedisSessionStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSessionStore(rdb redis.Cmdable, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:context", sessionID)
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*model.SessionContext, error) {
	key := s.sessionKey(sessionID)
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session context")
		return nil, errx.WrapRedis(err)
	}

	var sc model.SessionContext
	if err := json.Unmarshal(raw, &sc); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("discarding unreadable session context")
		return nil, nil
	}
	return &sc, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID string, sc *model.SessionContext) error {
	if sc == nil {
		return nil
	}
	b, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshal session context: %w", err)
	}
	key := s.sessionKey(sessionID)
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save session context")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.SessionStore = (*RedisSessionStore)(nil)
