package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("dealer")
	require.NoError(t, err)
	assert.NotEqual(t, "dealer", hash)

	assert.NoError(t, CheckPassword(hash, "dealer"))
	assert.ErrorIs(t, CheckPassword(hash, "Dealer"), bcrypt.ErrMismatchedHashAndPassword)
}
