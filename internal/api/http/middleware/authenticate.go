package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/flarewebs/flarewebs-server/internal/api/http/handler"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

// Authenticator resolves the user behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			handler.WriteError(w, r, model.NewErrNotAuthenticated(), m.logger)
			return
		}

		user, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("Authenticate middleware: rejected token",
				"path", r.URL.Path,
				"error", err.Error())
			handler.WriteError(w, r, err, m.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserToContext(r.Context(), user)))
	})
}

// RequireActive rejects deactivated users. It must run after Handle.
func (m *Authenticate) RequireActive(next http.Handler) http.Handler {
	return m.require(func(u model.User) bool { return u.IsActive }, "Inactive user", next)
}

// RequireSuperuser rejects users without the superuser flag. It must run after Handle.
func (m *Authenticate) RequireSuperuser(next http.Handler) http.Handler {
	return m.require(func(u model.User) bool { return u.IsSuperuser }, "The user doesn't have enough privileges", next)
}

func (m *Authenticate) require(allow func(model.User) bool, msg string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.contextManager.GetUserFromContext(r.Context())
		if !ok {
			handler.WriteError(w, r, model.NewErrNotAuthenticated(), m.logger)
			return
		}
		if !allow(user) {
			handler.WriteError(w, r, model.NewErrBadRequest(msg), m.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
