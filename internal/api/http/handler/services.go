package handler

import (
	"context"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

// AuthService defines token issuance and password recovery.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) (model.User, error)
	CompletePasswordReset(ctx context.Context, userID int64, resetToken, newPassword string) (model.User, error)
}

// UserService defines user administration.
type UserService interface {
	List(ctx context.Context, skip, limit int, filter model.UserFilter) (model.Page[model.User], error)
	Get(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, in model.UpdateUser) (model.User, error)
	ToggleStatus(ctx context.Context, id int64) (model.User, error)
	UpdatePassword(ctx context.Context, user model.User, in model.ChangePassword) (model.User, error)
	CreateAdmin(ctx context.Context, in model.CreateAdmin) (model.User, error)
	CompleteAdminRegistration(ctx context.Context, userID int64, activationToken string, in model.RegisterUser) (model.User, error)
	SendTestEmail(ctx context.Context, to string) error
}

// StoreService defines uploaded object management.
type StoreService interface {
	Upload(ctx context.Context, file model.Upload, loc string) (model.StoreLinks, error)
	Create(ctx context.Context, file model.Upload, loc string) (model.Store, error)
	List(ctx context.Context, skip, limit int) (model.Page[model.Store], error)
	Get(ctx context.Context, id int64) (model.Store, error)
	Update(ctx context.Context, id int64, file model.Upload, loc string) (model.Store, error)
	Destroy(ctx context.Context, id int64) (model.Store, error)
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
