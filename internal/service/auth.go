package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

const (
	msgIncorrectCredentials = "Incorrect email or password"
	msgInactiveUser         = "Inactive user"
	msgInvalidCredentials   = "Could not validate credentials"
	msgInvalidToken         = "Invalid token"
)

type Auth struct {
	userStore model.UserStore
	cache     model.UserCache
	hasher    model.PasswordHasher
	tokens    *TokenService
	notifier  *Notifier
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	cache model.UserCache,
	hasher model.PasswordHasher,
	tokens *TokenService,
	notifier *Notifier,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		cache:     cache,
		hasher:    hasher,
		tokens:    tokens,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Login checks the credentials, records the login time and returns an access token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.NewErrBadRequest(msgIncorrectCredentials)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.HashedPassword) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return "", model.NewErrBadRequest(msgIncorrectCredentials)
	}

	if !user.IsActive {
		return "", model.NewErrBadRequest(msgInactiveUser)
	}

	now := a.now().UTC()
	if _, _, err := a.userStore.Update(ctx, user.ID, model.UserPatch{LastLogin: &now}); err != nil {
		a.logger.Error("Auth service: failed to update last login",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to update last login: %w", err)
	}
	a.cache.Delete(ctx, user.ID)

	accessToken, err := a.tokens.IssueAccess(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return accessToken, nil
}

// Authenticate resolves an access token into its user.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	id, ok := a.tokens.ParseAccess(accessToken)
	if !ok {
		return model.User{}, model.NewErrPermissionDenied(msgInvalidCredentials)
	}

	if user, ok := a.cache.Get(ctx, id); ok {
		return user, nil
	}

	user, err := a.userStore.ReadOne(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrNotFound("User not found")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	a.cache.Set(ctx, user)

	return user, nil
}

// RequestPasswordReset mails a reset link to the account owner.
func (a *Auth) RequestPasswordReset(ctx context.Context, email string) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrPermissionDenied("Account does not exist")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := a.tokens.IssueUserToken(user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := a.notifier.ResetPassword(ctx, user, resetToken, a.tokens.UserTokenHours()); err != nil {
		return model.User{}, err
	}

	a.logger.Info("Auth service: password reset requested",
		"user_id", user.ID)

	return user, nil
}

// CompletePasswordReset sets a new password when the reset token matches
// the user's current key. The new hash revokes every earlier token.
func (a *Auth) CompletePasswordReset(ctx context.Context, userID int64, resetToken, newPassword string) (model.User, error) {
	user, err := a.userStore.ReadOne(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrNotFound("This account does not exist")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.IsActive {
		return model.User{}, model.NewErrBadRequest("This account is inactive")
	}

	if !a.tokens.VerifyUserToken(user, resetToken) {
		a.logger.Info("Auth service: invalid reset token",
			"user_id", user.ID)
		return model.User{}, model.NewErrBadRequest(msgInvalidToken)
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, _, err := a.userStore.Update(ctx, user.ID, model.UserPatch{HashedPassword: &hash})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update password: %w", err)
	}
	a.cache.Delete(ctx, user.ID)

	a.logger.Info("Auth service: password reset completed",
		"user_id", user.ID)

	return updated, nil
}
