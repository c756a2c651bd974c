package cache

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

const keyPrefix = "flarewebs:user:%d"

func userKey(id int64) string {
	return fmt.Sprintf(keyPrefix, id)
}

// New returns a Redis backed user cache when redisURL is set and an
// in-process one otherwise.
func New(redisURL string, ttl time.Duration, l *logger.Logger) (model.UserCache, error) {
	if redisURL == "" {
		return NewMemory(ttl), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return NewRedis(redis.NewClient(opts), ttl, l), nil
}
