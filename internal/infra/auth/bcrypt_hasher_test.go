package auth

import (
	"testing"

	"forum/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps the suite fast; correctness does not depend on the work factor.
const testCost = bcrypt.MinCost

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "secret123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// Two hashes of the same plaintext must differ (random salt), and
	// both must still verify.
	first, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret123", first))
	assert.True(t, hasher.Check("secret123", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)
	password := "secret123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// A mismatch is a plain false, even against garbage hashes.
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 6},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Out-of-range or absent configuration falls back to bcrypt's default.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_HashOversizedPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// bcrypt rejects inputs above 72 bytes; the hasher surfaces that as
	// a hashing error rather than silently truncating.
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := hasher.Hash(string(long))
	assert.Error(t, err)
}
