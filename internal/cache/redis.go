package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.UserCache = (*Redis)(nil)

// Redis shares cached users between server instances. Redis failures
// degrade to cache misses.
type Redis struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedis(rdb *redis.Client, ttl time.Duration, l *logger.Logger) *Redis {
	return &Redis{rdb: rdb, ttl: ttl, logger: l}
}

// entry carries the password hash, which model.User hides from JSON.
type entry struct {
	model.User
	HashedPassword string `json:"hashed_password"`
}

func (r *Redis) Get(ctx context.Context, id int64) (model.User, bool) {
	key := userKey(id)

	cacheBytes, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Cache: failed to read user", "key", key, "error", err.Error())
		}
		return model.User{}, false
	}

	var e entry
	if err := json.Unmarshal(cacheBytes, &e); err != nil {
		r.logger.Warn("Cache: dropping corrupt entry", "key", key, "error", err.Error())
		r.rdb.Del(ctx, key)
		return model.User{}, false
	}

	u := e.User
	u.HashedPassword = e.HashedPassword
	return u, true
}

func (r *Redis) Set(ctx context.Context, user model.User) {
	key := userKey(user.ID)

	cacheBytes, err := json.Marshal(entry{User: user, HashedPassword: user.HashedPassword})
	if err != nil {
		r.logger.Warn("Cache: failed to encode user", "key", key, "error", err.Error())
		return
	}

	if err := r.rdb.Set(ctx, key, cacheBytes, r.ttl).Err(); err != nil {
		r.logger.Warn("Cache: failed to store user", "key", key, "error", err.Error())
	}
}

func (r *Redis) Delete(ctx context.Context, id int64) {
	if err := r.rdb.Del(ctx, userKey(id)).Err(); err != nil {
		r.logger.Warn("Cache: failed to evict user", "id", id, "error", err.Error())
	}
}
