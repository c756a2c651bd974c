package handler

import (
	"fmt"
	"net/http"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

type accessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Auth handles the /auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// AccessToken exchanges form credentials for a bearer token.
func (h *Auth) AccessToken(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	if err := r.ParseForm(); err != nil {
		p.body["__root__"] = "invalid form body"
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" {
		p.body["username"] = msgRequired
	}
	if password == "" {
		p.body["password"] = msgRequired
	}
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", username,
			"error", err.Error())
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, accessToken{AccessToken: token, TokenType: "bearer"})
}

// ResetPassword sends a recovery e-mail.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in model.EmailInput
	p := newParams(r)
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.authService.RequestPasswordReset(r.Context(), in.Email)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeMessage(w, fmt.Sprintf("%s password reset successfully", user.Email))
}

// ResetPasswordComplete sets a new password from a recovery link.
func (h *Auth) ResetPasswordComplete(w http.ResponseWriter, r *http.Request) {
	var in model.ResetPassword
	p := newParams(r)
	token := p.requiredString("token")
	uid := p.requiredInt64("uid")
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	if _, err := h.authService.CompletePasswordReset(r.Context(), uid, token, in.Password); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeMessage(w, "Password updated successfully")
}
