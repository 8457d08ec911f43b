// Package tokens signs and verifies the bearer tokens the gateway issues.
// Two claim shapes exist: employee tokens carry {sub, jti, exp, iat} and
// owner tokens carry {sub, exp} where exp is mandatory and checked on its
// own in addition to the library-level expiry check.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
	ErrMalformedClaims  = errors.New("malformed token claims")
)

type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewCodec builds a codec for the given shared secret and algorithm name
// (HS256, HS384 or HS512). Tokens signed with any other method are
// rejected on verification.
func NewCodec(secret, algorithm string) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token algorithm %q is not an HMAC method", algorithm)
	}
	return &Codec{secret: []byte(secret), method: method}, nil
}

func (c *Codec) IssueEmployee(identityCard string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   identityCard,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

func (c *Codec) IssueOwner(identityCard string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   identityCard,
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// VerifyEmployee checks signature and expiry and returns the subject
// identity card.
func (c *Codec) VerifyEmployee(token string) (string, error) {
	return c.verify(token, false)
}

// VerifyOwner is VerifyEmployee plus the owner-token rule that the exp
// claim must be present.
func (c *Codec) VerifyOwner(token string) (string, error) {
	return c.verify(token, true)
}

func (c *Codec) verify(token string, requireExpiry bool) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{c.method.Alg()})}
	if requireExpiry {
		opts = append(opts, jwt.WithExpirationRequired())
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return "", mapError(err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrMalformedClaims
	}
	return claims.Subject, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
}
