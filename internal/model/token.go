package model

import "time"

// TokenManager signs and verifies subject tokens.
type TokenManager interface {
	Generate(subject, key string, ttl time.Duration) (string, error)
	Verify(token, key string) (string, bool)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
