package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	return c
}

func TestNewCodec_RejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("secret", "ES999")
	require.Error(t, err)

	_, err = NewCodec("secret", "RS256")
	require.Error(t, err)
}

func TestCodec_EmployeeRoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, err := c.IssueEmployee("1098765432", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := c.VerifyEmployee(token)
	require.NoError(t, err)
	assert.Equal(t, "1098765432", sub)
}

func TestCodec_OwnerRoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, err := c.IssueOwner("52123456", 30*time.Minute)
	require.NoError(t, err)

	sub, err := c.VerifyOwner(token)
	require.NoError(t, err)
	assert.Equal(t, "52123456", sub)
}

func TestCodec_ExpiredToken(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, err := c.IssueEmployee("1098765432", -time.Minute)
	require.NoError(t, err)

	_, err = c.VerifyEmployee(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpired)

	ownerToken, err := c.IssueOwner("52123456", -time.Minute)
	require.NoError(t, err)

	_, err = c.VerifyOwner(ownerToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	other, err := NewCodec("another-secret", "HS256")
	require.NoError(t, err)

	token, err := other.IssueEmployee("1098765432", time.Hour)
	require.NoError(t, err)

	_, err = c.VerifyEmployee(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodec_MalformedToken(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := c.VerifyEmployee(raw)
		require.Error(t, err, "token %q", raw)
		assert.ErrorIs(t, err, ErrMalformedClaims)
	}
}

func TestCodec_RejectsForeignSigningMethod(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)

	// Same secret, different HMAC variant: the pinned algorithm must win.
	claims := jwt.RegisteredClaims{
		Subject:   "1098765432",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = c.VerifyEmployee(foreign)
	require.Error(t, err)
}

func TestCodec_OwnerTokenRequiresExpiry(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)

	// Hand-rolled token with a subject but no exp claim.
	claims := jwt.RegisteredClaims{Subject: "52123456"}
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// The employee path tolerates it, the owner path must not.
	_, err = c.VerifyEmployee(noExpiry)
	require.NoError(t, err)

	_, err = c.VerifyOwner(noExpiry)
	require.Error(t, err)
}

func TestCodec_RejectsEmptySubject(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, err := c.IssueEmployee("", time.Hour)
	require.NoError(t, err)

	_, err = c.VerifyEmployee(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedClaims)
}
