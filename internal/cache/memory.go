package cache

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.UserCache = (*Memory)(nil)

// Memory keeps users in process.
type Memory struct {
	c *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, time.Minute)}
}

func (m *Memory) Get(_ context.Context, id int64) (model.User, bool) {
	v, ok := m.c.Get(strconv.FormatInt(id, 10))
	if !ok {
		return model.User{}, false
	}
	u, ok := v.(model.User)
	return u, ok
}

func (m *Memory) Set(_ context.Context, user model.User) {
	m.c.SetDefault(strconv.FormatInt(user.ID, 10), user)
}

func (m *Memory) Delete(_ context.Context, id int64) {
	m.c.Delete(strconv.FormatInt(id, 10))
}
