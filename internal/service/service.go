// Package service translates typed API requests into backend calls. There
// is no business logic beyond DTO shaping, duplicate-key pre-checks and
// best-effort notification emails; the backend owns every record.
package service

import (
	"context"
	"errors"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveEmployee   = errors.New("inactive employee")
	ErrNoOwner            = errors.New("there is no owner with this document")
	ErrLoginUnavailable   = errors.New("owner login initiation failed")
	ErrRetryLogin         = errors.New("owner code not valid, retry login")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrIdentityCardTaken  = errors.New("identity card already exists")
	ErrPlateTaken         = errors.New("plate already exists")
	ErrAlreadyAssigned    = errors.New("vehicle already assigned to owner")
	ErrNotFound           = errors.New("not found")
)

// Mailer is the notification surface the services need. Implemented by
// mail.Notifier; faked in tests. Every send is best-effort: a false
// return never rolls back the backend write that preceded it.
type Mailer interface {
	SecurityCode(to, code string) bool
	NewAccount(to, username string) bool
	NewOwner(to, names string) bool
	VehicleAssigned(to, names string, v models.Vehicle) bool
	VehicleUpdated(to string, v models.Vehicle) bool
	ReparationDetail(to, description string, cost *float64) bool
}

// OwnerResolver is the owner half of the authorization gate, used by the
// code exchange as its defense-in-depth validation.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, token string) (*models.Owner, error)
}
