package service

import (
	"strconv"
	"time"

	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/token"
)

// TokenConfig holds the signing secret and token lifetimes.
type TokenConfig struct {
	Secret         string
	AccessTTL      time.Duration
	UserTokenHours int
}

// TokenService issues access tokens signed with the process secret and
// single purpose user tokens (password reset, account activation) signed
// with a per-user key.
type TokenService struct {
	manager model.TokenManager
	cfg     TokenConfig
}

func NewTokenService(manager model.TokenManager, cfg TokenConfig) *TokenService {
	return &TokenService{manager: manager, cfg: cfg}
}

func (s *TokenService) IssueAccess(userID int64) (string, error) {
	return s.manager.Generate(strconv.FormatInt(userID, 10), s.cfg.Secret, s.cfg.AccessTTL)
}

// ParseAccess returns the user id carried by an access token.
func (s *TokenService) ParseAccess(tok string) (int64, bool) {
	sub, ok := s.manager.Verify(tok, s.cfg.Secret)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IssueUserToken signs the user's email with a key bound to the current
// password hash.
func (s *TokenService) IssueUserToken(user model.User) (string, error) {
	return s.manager.Generate(user.Email, s.userKey(user), time.Duration(s.cfg.UserTokenHours)*time.Hour)
}

func (s *TokenService) VerifyUserToken(user model.User, tok string) bool {
	sub, ok := s.manager.Verify(tok, s.userKey(user))
	return ok && sub == user.Email
}

// UserTokenHours is how long user tokens stay valid.
func (s *TokenService) UserTokenHours() int {
	return s.cfg.UserTokenHours
}

func (s *TokenService) userKey(user model.User) string {
	return token.UserKey(s.cfg.Secret, user.ID, user.HashedPassword)
}
