package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2_HashAndVerify(t *testing.T) {
	h := NewArgon2(1, 8*1024, 1)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestArgon2_SaltedHashesDiffer(t *testing.T) {
	h := NewArgon2(1, 8*1024, 1)

	h1, err := h.Hash("same")
	require.NoError(t, err)
	h2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgon2_MalformedHash(t *testing.T) {
	h := NewArgon2(0, 0, 0)
	assert.False(t, h.Verify("x", "not-a-hash"))
}

func TestRandom(t *testing.T) {
	assert.NotEqual(t, Random(), Random())
	assert.Len(t, Random(), 36)
}
