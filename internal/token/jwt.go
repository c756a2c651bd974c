package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager with HS256 signed tokens carrying exp, nbf and sub.
type JWT struct {
	now func() time.Time
}

// NewJWT creates a new JWT token manager.
func NewJWT() *JWT {
	return &JWT{now: time.Now}
}

// Generate signs a token for subject with key that expires after ttl.
func (j *JWT) Generate(subject, key string, ttl time.Duration) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify returns the subject of a valid token. Expired, forged and malformed
// tokens all yield false.
func (j *JWT) Verify(tokenString, key string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(key), nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}

// GenerateToken signs subject with key for expiryHours hours.
func GenerateToken(subject, key string, expiryHours int) (string, error) {
	return NewJWT().Generate(subject, key, time.Duration(expiryHours)*time.Hour)
}

// VerifyToken returns the subject of a valid token or an empty string.
func VerifyToken(tokenString, key string) string {
	sub, _ := NewJWT().Verify(tokenString, key)
	return sub
}
