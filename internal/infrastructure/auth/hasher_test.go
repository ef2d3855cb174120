package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.NoError(t, hasher.Verify("correct horse battery staple", hash))
	assert.Error(t, hasher.Verify("wrong password", hash))
}

func TestBcryptPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	err := hasher.Verify("anything", "not-a-bcrypt-hash")
	require.Error(t, err)
	// The error must not reveal whether the hash or the password was bad.
	assert.EqualError(t, err, "password verification failed")
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than
	// panicking or producing weak hashes.
	hasher := NewBcryptPasswordHasher(99)
	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("pw", hash))
}
