package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hashed)

	assert.True(t, VerifyPassword(hashed, "s3cretpass"))
	assert.False(t, VerifyPassword(hashed, "S3cretpass"))
	assert.False(t, VerifyPassword(hashed, ""))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "same-input"))
	assert.True(t, VerifyPassword(second, "same-input"))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "anything"))
}
