package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	stored, err := v.Store("correct-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-password", stored)

	assert.True(t, v.Verify("correct-password", stored))
	assert.False(t, v.Verify("wrong-password", stored))
}

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}

	stored, err := v.Store("secret")
	assert.NoError(t, err)
	assert.Equal(t, "secret", stored)

	assert.True(t, v.Verify("secret", stored))
	assert.False(t, v.Verify("Secret", stored), "plaintext comparison is exact")
}

func TestNewVerifier(t *testing.T) {
	assert.IsType(t, PlaintextVerifier{}, NewVerifier("plaintext"))
	assert.IsType(t, BcryptVerifier{}, NewVerifier("bcrypt"))
	assert.IsType(t, BcryptVerifier{}, NewVerifier(""), "unknown names fall back to bcrypt")
}

func TestAuthorize(t *testing.T) {
	assert.True(t, Authorize("admin", "admin"))
	assert.True(t, Authorize("user", "user"))
	assert.True(t, Authorize("user", ""), "no required role means allow")
	assert.False(t, Authorize("user", "admin"))
	assert.False(t, Authorize("admin", "user"))
}
