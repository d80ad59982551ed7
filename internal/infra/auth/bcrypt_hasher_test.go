package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	password := "12345678901"
	hash, err := hasher.Hash(password, 6)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := hasher.Hash("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-input", first))
	assert.True(t, hasher.Check("same-input", second))
}

func TestBcryptHasher_HashRejectsCostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		_, err := hasher.Hash("12345678901", cost)
		assert.Error(t, err, "cost %d", cost)
	}
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	passwords := []string{
		"a",
		"12345678901",
		"Pässphräse123!",
		"with spaces and\ttabs",
	}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			hash, err := hasher.Hash(password, bcrypt.MinCost)
			require.NoError(t, err)

			assert.True(t, hasher.Check(password, hash))
			assert.False(t, hasher.Check(password+"x", hash))
		})
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "12345678901"

	hash, err := hasher.Hash(password, 6)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("10987654321", hash))
	assert.False(t, hasher.Check("", hash))

	// Malformed hashes never panic.
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
	assert.False(t, hasher.Check(password, "$2a$06$short"))
}
