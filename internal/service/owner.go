package service

import (
	"context"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type OwnerService struct {
	Backend *backend.Client
	Mail    Mailer
}

// Create stamps the acting employee on both audit references and sends a
// welcome notice best-effort.
func (s *OwnerService) Create(ctx context.Context, in models.BaseOwner, employeeID string) (*models.Owner, error) {
	l := logging.FromContext(ctx).With("svc", "owner.create", "owner_id", in.IdentityCard)

	if existing, _ := s.Backend.OwnerByID(ctx, in.IdentityCard); existing != nil {
		return nil, ErrIdentityCardTaken
	}

	owner, err := s.Backend.CreateOwner(ctx, models.CreateOwner{
		BaseOwner:          in,
		CreationEmployeeID: employeeID,
		UpdateEmployeeID:   employeeID,
	})
	if err != nil {
		l.Error("create failed", "error", err)
		return nil, err
	}

	if !s.Mail.NewOwner(owner.Email, owner.Names) {
		l.Warn("new owner notice not delivered", "email", owner.Email)
	}
	l.Info("owner created")
	return owner, nil
}

func (s *OwnerService) ByID(ctx context.Context, identityCard string) (*models.Owner, error) {
	owner, err := s.Backend.OwnerByID(ctx, identityCard)
	if err != nil {
		return nil, ErrNotFound
	}
	return owner, nil
}

func (s *OwnerService) List(ctx context.Context, filter models.OwnerFilter) ([]models.Owner, error) {
	owners, err := s.Backend.Owners(ctx, filter)
	if err != nil {
		return []models.Owner{}, nil
	}
	return owners, nil
}

func (s *OwnerService) Update(ctx context.Context, identityCard string, in models.UpdateOwner, employeeID string) (*models.Owner, error) {
	in.UpdateEmployeeID = &employeeID
	owner, err := s.Backend.UpdateOwner(ctx, identityCard, in)
	if err != nil {
		return nil, ErrNotFound
	}
	return owner, nil
}

// Vehicles lists the vehicles assigned to an owner.
func (s *OwnerService) Vehicles(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	vehicles, err := s.Backend.VehiclesByOwner(ctx, ownerID)
	if err != nil {
		return []models.Vehicle{}, nil
	}
	return vehicles, nil
}
