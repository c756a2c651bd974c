package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/password"
)

const defaultPageSize = 100

type Users struct {
	userStore model.UserStore
	cache     model.UserCache
	hasher    model.PasswordHasher
	tokens    *TokenService
	notifier  *Notifier
	logger    *logger.Logger
}

func NewUsers(
	userStore model.UserStore,
	cache model.UserCache,
	hasher model.PasswordHasher,
	tokens *TokenService,
	notifier *Notifier,
	logger *logger.Logger,
) *Users {
	return &Users{
		userStore: userStore,
		cache:     cache,
		hasher:    hasher,
		tokens:    tokens,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *Users) List(ctx context.Context, skip, limit int, filter model.UserFilter) (model.Page[model.User], error) {
	skip, limit = pageBounds(skip, limit)

	page, err := s.userStore.ReadList(ctx, skip, limit, filter)
	if err != nil {
		return model.Page[model.User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	return page, nil
}

func (s *Users) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := s.userStore.ReadOne(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrRecordNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// Update changes the user's names.
func (s *Users) Update(ctx context.Context, id int64, in model.UpdateUser) (model.User, error) {
	return s.update(ctx, id, in.Patch())
}

// ToggleStatus flips is_active.
func (s *Users) ToggleStatus(ctx context.Context, id int64) (model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	active := !user.IsActive
	updated, err := s.update(ctx, id, model.UserPatch{IsActive: &active})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("Users service: status toggled",
		"user_id", id,
		"is_active", active)

	return updated, nil
}

// UpdatePassword replaces the password of user after checking the old one.
func (s *Users) UpdatePassword(ctx context.Context, user model.User, in model.ChangePassword) (model.User, error) {
	if !s.hasher.Verify(in.OldPassword, user.HashedPassword) {
		return model.User{}, model.NewErrPermissionDenied("You don't have permission to access this resource")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.update(ctx, user.ID, model.UserPatch{HashedPassword: &hash})
}

// CreateAdmin stores an account with a random password and mails the
// invitee a link to complete the registration.
func (s *Users) CreateAdmin(ctx context.Context, in model.CreateAdmin) (model.User, error) {
	_, err := s.userStore.GetByEmail(ctx, in.Email)
	if err == nil {
		return model.User{}, model.NewErrBadRequest("User already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(password.Random())
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	user, err := s.userStore.Create(ctx, model.UserPatch{
		Email:          &in.Email,
		Role:           &role,
		HashedPassword: &hash,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.User{}, model.NewErrBadRequest("User already exists")
	}
	if err != nil {
		s.logger.Error("Users service: failed to create admin",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	activationToken, err := s.tokens.IssueUserToken(user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to issue activation token: %w", err)
	}
	if err := s.notifier.NewAccount(ctx, user, activationToken, s.tokens.UserTokenHours()); err != nil {
		return model.User{}, err
	}

	s.logger.Info("Users service: admin invited",
		"user_id", user.ID,
		"role", role)

	return user, nil
}

// CompleteAdminRegistration activates an invited account.
func (s *Users) CompleteAdminRegistration(ctx context.Context, userID int64, activationToken string, in model.RegisterUser) (model.User, error) {
	user, err := s.userStore.ReadOne(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrBadRequest("Account does not exist")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !s.tokens.VerifyUserToken(user, activationToken) {
		return model.User{}, model.NewErrBadRequest(msgInvalidToken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.update(ctx, user.ID, model.UserPatch{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: &hash,
		IsActive:       model.Ptr(true),
		IsVerified:     model.Ptr(true),
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("Users service: registration completed",
		"user_id", user.ID)

	return updated, nil
}

// SendTestEmail mails a test message to the given address.
func (s *Users) SendTestEmail(ctx context.Context, to string) error {
	return s.notifier.TestEmail(ctx, to)
}

// EnsureSuperuser creates an active, verified superuser unless the e-mail is
// already registered. It reports whether a user was created.
func (s *Users) EnsureSuperuser(ctx context.Context, email, pass string) (model.User, bool, error) {
	existing, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.UserPatch{
		Email:          &email,
		HashedPassword: &hash,
		IsSuperuser:    model.Ptr(true),
		IsActive:       model.Ptr(true),
		IsVerified:     model.Ptr(true),
	})
	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to create superuser: %w", err)
	}

	s.logger.Info("Users service: superuser created",
		"user_id", user.ID,
		"email", email)

	return user, true, nil
}

func (s *Users) update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	updated, _, err := s.userStore.Update(ctx, id, patch)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrRecordNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	s.cache.Delete(ctx, id)

	return updated, nil
}

func pageBounds(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if skip > model.MaxPageIndex {
		skip = model.MaxPageIndex
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > model.MaxPageSize {
		limit = model.MaxPageSize
	}
	return skip, limit
}
