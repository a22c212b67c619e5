package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidjulakidze/lolly-law-assessment/internal/auth"
	_ "github.com/davidjulakidze/lolly-law-assessment/testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, hasher.Verify("hunter22", hash))
	assert.False(t, hasher.Verify("hunter23", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasherCustomCost(t *testing.T) {
	hasher := auth.NewPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("quick")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}
