package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash, "hash must not be the plaintext")

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrPasswordMismatch)
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	_, err := NewPasswordHasherWithCost(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestPasswordHasher_MalformedHashNeverMatches(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	// a plaintext value left in storage must not authenticate
	assert.ErrorIs(t, h.Compare("plaintext", "plaintext"), ErrPasswordMismatch)
}

func TestNewPasswordHasherWithCost_OutOfRange(t *testing.T) {
	h := NewPasswordHasherWithCost(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	long := strings.Repeat("p", 80)
	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, long))
	assert.ErrorIs(t, h.Compare(hash, long[:79]), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare(hash, long[:72]), ErrPasswordMismatch, "bytes past bcrypt's limit must count")
}

func TestPasswordHasher_ShortPasswordHashIsPlainBcrypt(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
