package handler

import (
	"fmt"
	"net/http"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

// Users handles the /users endpoints.
type Users struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{userService: userService, contextManager: contextManager, logger: logger}
}

func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	skip, limit := p.pagination()
	filter := model.UserFilter{
		Search:     p.queryString("search", ""),
		IsVerified: p.queryBool("is_verified"),
		IsActive:   p.queryBool("is_active"),
		OrderBy:    model.UserOrder(p.queryString("order_by", string(model.OrderByDateJoined))),
	}
	if desc := p.queryBool("desc"); desc != nil {
		filter.Desc = *desc
	}
	if filter.OrderBy != model.OrderByDateJoined && filter.OrderBy != model.OrderByEmail {
		p.fail("query", "order_by", "value is not a valid enumeration member; permitted: 'date_joined', 'email'")
	}
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	page, err := h.userService.List(r.Context(), skip, limit, filter)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Me returns the authenticated user.
func (h *Users) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, r, model.NewErrNotAuthenticated(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Users) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, r, model.NewErrNotAuthenticated(), h.logger)
		return
	}

	var in model.ChangePassword
	p := newParams(r)
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	updated, err := h.userService.UpdatePassword(r.Context(), user, in)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("Users handler: password changed",
		"user_id", user.ID)

	writeJSON(w, http.StatusOK, updated)
}

// TestEmail sends a test message to the calling superuser.
func (h *Users) TestEmail(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, r, model.NewErrNotAuthenticated(), h.logger)
		return
	}

	if err := h.userService.SendTestEmail(r.Context(), user.Email); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeMessage(w, "ok")
}

func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	id := p.pathID("id")
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	var in model.UpdateUser
	p := newParams(r)
	id := p.pathID("id")
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ToggleStatus flips the active flag of a user.
func (h *Users) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	id := p.pathID("id")
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.ToggleStatus(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("Users handler: status toggled",
		"user_id", user.ID,
		"is_active", user.IsActive)

	writeJSON(w, http.StatusOK, user)
}

// CreateAdmin provisions an account and mails the activation link.
func (h *Users) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var in model.CreateAdmin
	p := newParams(r)
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.CreateAdmin(r.Context(), in)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// CreateAdminComplete activates an account from the invitation link.
func (h *Users) CreateAdminComplete(w http.ResponseWriter, r *http.Request) {
	var in model.RegisterUser
	p := newParams(r)
	uid := p.requiredInt64("uid")
	token := p.requiredString("token")
	p.decode(w, &in)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	user, err := h.userService.CompleteAdminRegistration(r.Context(), uid, token, in)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeMessage(w, fmt.Sprintf("%s registered successfully", user.Email))
}
