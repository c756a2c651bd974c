package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT()

	tok, err := j.Generate("a@b.com", "key", time.Hour)
	require.NoError(t, err)

	sub, ok := j.Verify(tok, "key")
	require.True(t, ok)
	require.Equal(t, "a@b.com", sub)
}

func TestGenerateToken_VerifyToken(t *testing.T) {
	tok, err := GenerateToken("a@b.com", "key", 1)
	require.NoError(t, err)

	require.Equal(t, "a@b.com", VerifyToken(tok, "key"))
	require.Equal(t, "", VerifyToken(tok, "other-key"))
}

func TestJWT_WrongKey(t *testing.T) {
	j := NewJWT()

	tok, err := j.Generate("a@b.com", "key1", time.Hour)
	require.NoError(t, err)

	sub, ok := j.Verify(tok, "key2")
	require.False(t, ok)
	require.Empty(t, sub)
}

func TestJWT_ZeroExpiry(t *testing.T) {
	issued := time.Now()
	j := &JWT{now: func() time.Time { return issued }}

	tok, err := j.Generate("a@b.com", "key", 0)
	require.NoError(t, err)

	j.now = func() time.Time { return issued.Add(time.Second) }
	_, ok := j.Verify(tok, "key")
	require.False(t, ok)
}

func TestJWT_Expired(t *testing.T) {
	issued := time.Now()
	j := &JWT{now: func() time.Time { return issued }}

	tok, err := j.Generate("a@b.com", "key", time.Hour)
	require.NoError(t, err)

	j.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, ok := j.Verify(tok, "key")
	require.False(t, ok)
}

func TestJWT_Rejects(t *testing.T) {
	j := NewJWT()

	t.Run("garbage", func(t *testing.T) {
		_, ok := j.Verify("not-a-token", "key")
		require.False(t, ok)
	})

	t.Run("tampered", func(t *testing.T) {
		tok, err := j.Generate("a@b.com", "key", time.Hour)
		require.NoError(t, err)
		_, ok := j.Verify(tok[:len(tok)-2]+"xx", "key")
		require.False(t, ok)
	})

	t.Run("none algorithm", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "a@b.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, ok := j.Verify(tok, "key")
		require.False(t, ok)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := j.Generate("", "key", time.Hour)
		require.NoError(t, err)
		_, ok := j.Verify(tok, "key")
		require.False(t, ok)
	})
}

func TestUserKey(t *testing.T) {
	k1 := UserKey("secret", 1, "hash-1")

	require.Equal(t, k1, UserKey("secret", 1, "hash-1"))
	require.NotEqual(t, k1, UserKey("secret", 1, "hash-2"))
	require.NotEqual(t, k1, UserKey("secret", 2, "hash-1"))
	require.NotEqual(t, k1, UserKey("other", 1, "hash-1"))
}

func TestUserKey_PasswordChangeRevokesResetToken(t *testing.T) {
	j := NewJWT()
	oldKey := UserKey("secret", 7, "old-hash")

	tok, err := j.Generate("a@b.com", oldKey, 48*time.Hour)
	require.NoError(t, err)

	_, ok := j.Verify(tok, UserKey("secret", 7, "new-hash"))
	require.False(t, ok)
}
