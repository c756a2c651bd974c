package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/flarewebs/flarewebs-server/internal/api/http/context"
	"github.com/flarewebs/flarewebs-server/internal/mocks"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/testutil"
)

func echoUser(cm model.ContextManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := cm.GetUserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(user.Email))
	})
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		mockToken  string
		mockUser   model.User
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing authorization header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwdw==",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:       "empty bearer",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:       "invalid token",
			header:     "Bearer broken",
			mockToken:  "broken",
			mockErr:    model.NewErrPermissionDenied("Could not validate credentials"),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"detail":"Could not validate credentials"}`,
		},
		{
			name:       "valid token",
			header:     "bearer good",
			mockToken:  "good",
			mockUser:   model.User{ID: 1, Email: "ann@example.com"},
			wantStatus: http.StatusOK,
			wantBody:   "ann@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authn := mocks.NewAuthenticator(t)
			if tt.mockToken != "" {
				authn.On("Authenticate", mock.Anything, tt.mockToken).Return(tt.mockUser, tt.mockErr)
			}
			cm := httpctx.NewManager()
			m := NewAuthenticate(authn, cm, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Handle(echoUser(cm)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_Gates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user       *model.User
		superuser  bool
		wantStatus int
		wantBody   string
	}{
		{name: "no user", user: nil, wantStatus: http.StatusUnauthorized, wantBody: `{"detail":"Not authenticated"}`},
		{name: "inactive", user: &model.User{IsActive: false}, wantStatus: http.StatusBadRequest, wantBody: `{"detail":"Inactive user"}`},
		{name: "active", user: &model.User{IsActive: true}, wantStatus: http.StatusNoContent},
		{name: "not superuser", user: &model.User{IsActive: true}, superuser: true, wantStatus: http.StatusBadRequest, wantBody: `{"detail":"The user doesn't have enough privileges"}`},
		{name: "superuser", user: &model.User{IsActive: true, IsSuperuser: true}, superuser: true, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := httpctx.NewManager()
			m := NewAuthenticate(mocks.NewAuthenticator(t), cm, testutil.MakeNoopLogger())

			ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
			h := m.RequireActive(ok)
			if tt.superuser {
				h = m.RequireSuperuser(ok)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(cm.SetUserToContext(req.Context(), *tt.user))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
