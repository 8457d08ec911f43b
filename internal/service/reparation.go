package service

import (
	"context"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type ReparationService struct {
	Backend *backend.Client
	Mail    Mailer
}

// Create registers the detail, then walks vehicle → owner to send the
// notice. The walk is best-effort; a break anywhere leaves the created
// detail in place.
func (s *ReparationService) Create(ctx context.Context, vehicleID string, in models.BaseReparationDetail, employeeID string) (*models.ReparationDetail, error) {
	l := logging.FromContext(ctx).With("svc", "reparation.create", "vehicle_id", vehicleID)

	detail, err := s.Backend.CreateReparationDetail(ctx, models.CreateReparationDetail{
		BaseReparationDetail: in,
		EmployeeID:           employeeID,
		VehicleID:            vehicleID,
	})
	if err != nil {
		l.Error("create failed", "error", err)
		return nil, ErrNotFound
	}

	s.notifyOwners(ctx, vehicleID, detail.Description, detail.Cost)
	return detail, nil
}

func (s *ReparationService) ByID(ctx context.Context, id int64) (*models.ReparationDetail, error) {
	detail, err := s.Backend.ReparationDetailByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return detail, nil
}

func (s *ReparationService) ByVehicle(ctx context.Context, vehicleID string) ([]models.ReparationDetail, error) {
	details, err := s.Backend.ReparationDetails(ctx, models.ReparationDetailFilter{VehicleID: vehicleID})
	if err != nil {
		return []models.ReparationDetail{}, nil
	}
	return details, nil
}

// ByVehicleForOwner narrows the vehicle listing to details visible to one
// owner, for the owner-facing route.
func (s *ReparationService) ByVehicleForOwner(ctx context.Context, vehicleID, ownerID string) ([]models.ReparationDetail, error) {
	details, err := s.Backend.ReparationDetails(ctx, models.ReparationDetailFilter{VehicleID: vehicleID, OwnerID: ownerID})
	if err != nil {
		return []models.ReparationDetail{}, nil
	}
	return details, nil
}

func (s *ReparationService) Update(ctx context.Context, id int64, in models.UpdateReparationDetail, employeeID string) (*models.ReparationDetail, error) {
	in.EmployeeID = &employeeID
	detail, err := s.Backend.UpdateReparationDetail(ctx, id, in)
	if err != nil {
		return nil, ErrNotFound
	}
	return detail, nil
}

func (s *ReparationService) Delete(ctx context.Context, id int64) error {
	if err := s.Backend.DeleteReparationDetail(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *ReparationService) notifyOwners(ctx context.Context, vehicleID, description string, cost *float64) {
	l := logging.FromContext(ctx).With("svc", "reparation.notify_owners", "vehicle_id", vehicleID)

	owners, err := s.Backend.OwnersByVehicle(ctx, vehicleID)
	if err != nil {
		l.Warn("owner lookup for notices failed", "error", err)
		return
	}
	for _, owner := range owners {
		if !s.Mail.ReparationDetail(owner.Email, description, cost) {
			l.Warn("reparation notice not delivered", "email", owner.Email)
		}
	}
}
