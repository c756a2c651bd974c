package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/testutil"
	"github.com/flarewebs/flarewebs-server/internal/token"
)

func newAuth(t *testing.T, d authDeps) *Auth {
	return NewAuth(d.users, d.cache, d.hasher, newTokens(d.tokens), newNotifier(t, d.scheduler, d.mailer), testutil.MakeNoopLogger())
}

func activeUser() model.User {
	return model.User{ID: 1, Email: "a@b.com", HashedPassword: "hash", IsActive: true}
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newAuthDeps(t)
		a := newAuth(t, d)
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		a.now = func() time.Time { return fixed }

		d.users.On("GetByEmail", mock.Anything, "a@b.com").Return(activeUser(), nil)
		d.hasher.On("Verify", "pw", "hash").Return(true)
		d.users.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p model.UserPatch) bool {
			return p.LastLogin != nil && p.LastLogin.Equal(fixed) && p.HashedPassword == nil
		})).Return(activeUser(), activeUser(), nil)
		d.cache.On("Delete", mock.Anything, int64(1)).Return()
		d.tokens.On("Generate", "1", testSecret, time.Hour).Return("access", nil)

		tok, err := a.Login(ctx, "a@b.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "access", tok)
	})

	t.Run("unknown email", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("GetByEmail", mock.Anything, "x@b.com").Return(model.User{}, model.ErrNotFound)

		_, err := newAuth(t, d).Login(ctx, "x@b.com", "pw")
		assertAPIError(t, err, http.StatusBadRequest, "Incorrect email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("GetByEmail", mock.Anything, "a@b.com").Return(activeUser(), nil)
		d.hasher.On("Verify", "bad", "hash").Return(false)

		_, err := newAuth(t, d).Login(ctx, "a@b.com", "bad")
		assertAPIError(t, err, http.StatusBadRequest, "Incorrect email or password")
	})

	t.Run("inactive", func(t *testing.T) {
		d := newAuthDeps(t)
		u := activeUser()
		u.IsActive = false
		d.users.On("GetByEmail", mock.Anything, "a@b.com").Return(u, nil)
		d.hasher.On("Verify", "pw", "hash").Return(true)

		_, err := newAuth(t, d).Login(ctx, "a@b.com", "pw")
		assertAPIError(t, err, http.StatusBadRequest, "Inactive user")
	})

	t.Run("store failure", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{}, errors.New("db down"))

		_, err := newAuth(t, d).Login(ctx, "a@b.com", "pw")
		require.Error(t, err)
		var apiErr *model.APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestAuth_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.On("Verify", "bad", testSecret).Return("", false)

		_, err := newAuth(t, d).Authenticate(ctx, "bad")
		assertAPIError(t, err, http.StatusForbidden, "Could not validate credentials")
	})

	t.Run("cache hit", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.On("Verify", "tok", testSecret).Return("1", true)
		d.cache.On("Get", mock.Anything, int64(1)).Return(activeUser(), true)

		u, err := newAuth(t, d).Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		d.users.AssertNotCalled(t, "ReadOne", mock.Anything, mock.Anything)
	})

	t.Run("cache miss", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.On("Verify", "tok", testSecret).Return("1", true)
		d.cache.On("Get", mock.Anything, int64(1)).Return(model.User{}, false)
		d.users.On("ReadOne", mock.Anything, int64(1)).Return(activeUser(), nil)
		d.cache.On("Set", mock.Anything, activeUser()).Return()

		u, err := newAuth(t, d).Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", u.Email)
	})

	t.Run("user gone", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.On("Verify", "tok", testSecret).Return("9", true)
		d.cache.On("Get", mock.Anything, int64(9)).Return(model.User{}, false)
		d.users.On("ReadOne", mock.Anything, int64(9)).Return(model.User{}, model.ErrNotFound)

		_, err := newAuth(t, d).Authenticate(ctx, "tok")
		assertAPIError(t, err, http.StatusNotFound, "User not found")
	})
}

func TestAuth_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("no account", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("GetByEmail", mock.Anything, "x@b.com").Return(model.User{}, model.ErrNotFound)

		_, err := newAuth(t, d).RequestPasswordReset(ctx, "x@b.com")
		assertAPIError(t, err, http.StatusForbidden, "Account does not exist")
		assert.Empty(t, d.scheduler.names)
	})

	t.Run("mails a reset link after the response", func(t *testing.T) {
		d := newAuthDeps(t)
		u := activeUser()
		key := token.UserKey(testSecret, u.ID, u.HashedPassword)

		d.users.On("GetByEmail", mock.Anything, "a@b.com").Return(u, nil)
		d.tokens.On("Generate", "a@b.com", key, 48*time.Hour).Return("reset", nil)

		got, err := newAuth(t, d).RequestPasswordReset(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		require.Equal(t, []string{"send_reset_password_email"}, d.scheduler.names)

		d.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m model.Mail) bool {
			return m.To == "a@b.com" && assert.Contains(t, m.Text, "/1/reset-password?token=reset")
		})).Return(nil)
		assert.Equal(t, []error{nil}, d.scheduler.run(t))
	})
}

func TestAuth_CompletePasswordReset(t *testing.T) {
	ctx := context.Background()
	u := activeUser()
	key := token.UserKey(testSecret, u.ID, u.HashedPassword)

	t.Run("unknown account", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("ReadOne", mock.Anything, int64(3)).Return(model.User{}, model.ErrNotFound)

		_, err := newAuth(t, d).CompletePasswordReset(ctx, 3, "t", "new")
		assertAPIError(t, err, http.StatusNotFound, "This account does not exist")
	})

	t.Run("inactive account", func(t *testing.T) {
		d := newAuthDeps(t)
		inactive := u
		inactive.IsActive = false
		d.users.On("ReadOne", mock.Anything, int64(1)).Return(inactive, nil)

		_, err := newAuth(t, d).CompletePasswordReset(ctx, 1, "t", "new")
		assertAPIError(t, err, http.StatusBadRequest, "This account is inactive")
	})

	t.Run("invalid token", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("ReadOne", mock.Anything, int64(1)).Return(u, nil)
		d.tokens.On("Verify", "t", key).Return("", false)

		_, err := newAuth(t, d).CompletePasswordReset(ctx, 1, "t", "new")
		assertAPIError(t, err, http.StatusBadRequest, "Invalid token")
	})

	t.Run("token for another email", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("ReadOne", mock.Anything, int64(1)).Return(u, nil)
		d.tokens.On("Verify", "t", key).Return("other@b.com", true)

		_, err := newAuth(t, d).CompletePasswordReset(ctx, 1, "t", "new")
		assertAPIError(t, err, http.StatusBadRequest, "Invalid token")
	})

	t.Run("success updates by id", func(t *testing.T) {
		d := newAuthDeps(t)
		d.users.On("ReadOne", mock.Anything, int64(1)).Return(u, nil)
		d.tokens.On("Verify", "t", key).Return("a@b.com", true)
		d.hasher.On("Hash", "new").Return("newhash", nil)
		d.users.On("Update", mock.Anything, int64(1), model.UserPatch{HashedPassword: model.Ptr("newhash")}).
			Return(model.User{ID: 1, Email: "a@b.com", HashedPassword: "newhash", IsActive: true}, u, nil)
		d.cache.On("Delete", mock.Anything, int64(1)).Return()

		got, err := newAuth(t, d).CompletePasswordReset(ctx, 1, "t", "new")
		require.NoError(t, err)
		assert.Equal(t, "newhash", got.HashedPassword)
	})
}
