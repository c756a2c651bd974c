package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.PasswordHasher = (*Argon2)(nil)

// Argon2 hashes passwords with argon2id.
type Argon2 struct {
	params *argon2id.Params
}

// NewArgon2 creates a hasher. Zero values fall back to argon2id.DefaultParams.
func NewArgon2(time, memKiB uint32, par uint8) *Argon2 {
	params := *argon2id.DefaultParams
	if time > 0 {
		params.Iterations = time
	}
	if memKiB > 0 {
		params.Memory = memKiB
	}
	if par > 0 {
		params.Parallelism = par
	}

	return &Argon2{params: &params}
}

func (a *Argon2) Hash(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, a.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func (a *Argon2) Verify(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false
	}
	return match
}

// Random returns a throwaway password for accounts that are activated later.
func Random() string {
	return uuid.NewString()
}
