package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

func TestManager(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)

	ctx := m.SetUserToContext(context.Background(), model.User{ID: 3, Email: "a@b.com"})
	user, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), user.ID)

	ctx = m.SetUserToContext(ctx, model.User{ID: 4})
	user, _ = m.GetUserFromContext(ctx)
	assert.Equal(t, int64(4), user.ID)
}
