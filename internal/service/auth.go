package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/tokens"
	"github.com/DanielSantaR/final-web-auth/pkg/hash"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

const (
	codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

type AuthService struct {
	Backend  *backend.Client
	Codec    *tokens.Codec
	Mail     Mailer
	Resolver OwnerResolver
	TokenTTL time.Duration
}

// EmployeeLogin verifies the password against the backend's auth record
// and issues an employee bearer token.
func (s *AuthService) EmployeeLogin(ctx context.Context, username, password string) (*models.Token, error) {
	l := logging.FromContext(ctx).With("svc", "auth.employee_login", "username", username)

	auth, err := s.Backend.EmployeeAuth(ctx, username)
	if err != nil {
		l.Warn("login failed", "reason", "auth record not found", "error", err)
		return nil, ErrInvalidCredentials
	}
	if !hash.VerifyPassword(auth.Password, password) {
		l.Warn("login failed", "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}
	if !auth.IsActive {
		l.Warn("login failed", "reason", "inactive employee")
		return nil, ErrInactiveEmployee
	}

	token, err := s.Codec.IssueEmployee(auth.IdentityCard, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue employee token: %w", err)
	}
	l.Info("login successful")
	return &models.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// InitiateOwnerLogin mints a one-time code for the owner, persists it
// remotely keyed by the code and emails it. Persistence or delivery
// failure fails the whole initiation.
func (s *AuthService) InitiateOwnerLogin(ctx context.Context, identityCard string) error {
	l := logging.FromContext(ctx).With("svc", "auth.owner_login_init", "owner_id", identityCard)

	owner, err := s.Backend.OwnerByID(ctx, identityCard)
	if err != nil {
		l.Warn("owner login refused", "reason", "owner not found", "error", err)
		return ErrNoOwner
	}

	code, err := s.freeCode(ctx)
	if err != nil {
		l.Error("owner login failed", "reason", "code generation", "error", err)
		return ErrLoginUnavailable
	}

	token, err := s.Codec.IssueOwner(owner.IdentityCard, s.TokenTTL)
	if err != nil {
		return fmt.Errorf("issue owner token: %w", err)
	}

	rec := models.OwnerCode{
		Code:      code,
		OwnerID:   owner.IdentityCard,
		Token:     token,
		TokenType: "bearer",
	}
	if _, err := s.Backend.CreateOwnerCode(ctx, rec); err != nil {
		l.Error("owner login failed", "reason", "code persistence", "error", err)
		return ErrLoginUnavailable
	}
	if !s.Mail.SecurityCode(owner.Email, code) {
		l.Error("owner login failed", "reason", "code delivery")
		return ErrLoginUnavailable
	}

	l.Info("owner code issued")
	return nil
}

// ExchangeOwnerCode trades a one-time code for its embedded bearer token.
// The code record is deleted only after the embedded token verifies and
// its owner resolves, so a failed validation leaves the record intact to
// expire with the token.
func (s *AuthService) ExchangeOwnerCode(ctx context.Context, code string) (*models.Token, error) {
	l := logging.FromContext(ctx).With("svc", "auth.owner_login_exchange")

	rec, err := s.Backend.OwnerCodeByCode(ctx, code)
	if err != nil {
		l.Warn("code exchange refused", "reason", "unknown code", "error", err)
		return nil, ErrRetryLogin
	}
	if _, err := s.Resolver.ResolveOwner(ctx, rec.Token); err != nil {
		l.Warn("code exchange refused", "reason", "embedded token invalid", "error", err)
		return nil, ErrRetryLogin
	}
	if err := s.Backend.DeleteOwnerCode(ctx, code); err != nil {
		// The token is already validated; a replayable leftover record is
		// bounded by the token's own expiry.
		l.Error("code record not deleted", "error", err)
	}

	l.Info("owner logged in", "owner_id", rec.OwnerID)
	return &models.Token{AccessToken: rec.Token, TokenType: rec.TokenType}, nil
}

// freeCode generates random codes until one has no live record, bounded
// only by the code space. A backend outage aborts instead of treating
// silence as a free slot.
func (s *AuthService) freeCode(ctx context.Context) (string, error) {
	for {
		code, err := randomCode(codeLength)
		if err != nil {
			return "", err
		}
		_, err = s.Backend.OwnerCodeByCode(ctx, code)
		if err == nil {
			continue // collision, regenerate
		}
		if errors.Is(err, backend.ErrUnexpectedStatus) {
			return code, nil
		}
		return "", err
	}
}

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
