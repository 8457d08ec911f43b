package service

import (
	"context"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type VehicleService struct {
	Backend *backend.Client
	Mail    Mailer
}

func (s *VehicleService) Create(ctx context.Context, in models.BaseVehicle, employeeID string) (*models.Vehicle, error) {
	l := logging.FromContext(ctx).With("svc", "vehicle.create", "plate", in.Plate)

	if existing, _ := s.Backend.VehicleByPlate(ctx, in.Plate); existing != nil {
		return nil, ErrPlateTaken
	}

	vehicle, err := s.Backend.CreateVehicle(ctx, models.CreateVehicle{
		BaseVehicle:        in,
		CreationEmployeeID: employeeID,
		UpdateEmployeeID:   employeeID,
	})
	if err != nil {
		l.Error("create failed", "error", err)
		return nil, err
	}
	l.Info("vehicle created")
	return vehicle, nil
}

func (s *VehicleService) ByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	vehicle, err := s.Backend.VehicleByPlate(ctx, plate)
	if err != nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	vehicles, err := s.Backend.Vehicles(ctx, filter)
	if err != nil {
		return []models.Vehicle{}, nil
	}
	return vehicles, nil
}

// Update patches the vehicle and notifies each assigned owner
// best-effort; a failed notice does not undo the update.
func (s *VehicleService) Update(ctx context.Context, plate string, in models.UpdateVehicle, employeeID string) (*models.Vehicle, error) {
	l := logging.FromContext(ctx).With("svc", "vehicle.update", "plate", plate)

	in.UpdateEmployeeID = &employeeID
	vehicle, err := s.Backend.UpdateVehicle(ctx, plate, in)
	if err != nil {
		l.Warn("update failed", "error", err)
		return nil, ErrNotFound
	}

	s.notifyOwners(ctx, *vehicle)
	return vehicle, nil
}

// AssignOwner is the best-effort sequence create assignment → fetch
// vehicle → fetch owner → email. There is no rollback: a failed email
// leaves the assignment in place.
func (s *VehicleService) AssignOwner(ctx context.Context, plate, ownerID string) (*models.VehicleXOwner, error) {
	l := logging.FromContext(ctx).With("svc", "vehicle.assign_owner", "plate", plate, "owner_id", ownerID)

	if existing, _ := s.Backend.AssignmentByPair(ctx, plate, ownerID); existing != nil {
		return nil, ErrAlreadyAssigned
	}

	assignment, err := s.Backend.CreateAssignment(ctx, models.CreateVehicleXOwner{
		VehicleID: plate,
		OwnerID:   ownerID,
	})
	if err != nil {
		l.Error("assignment failed", "error", err)
		return nil, ErrNotFound
	}

	vehicle, err := s.Backend.VehicleByPlate(ctx, plate)
	if err != nil {
		l.Warn("assignment notice skipped", "reason", "vehicle fetch failed", "error", err)
		return assignment, nil
	}
	owner, err := s.Backend.OwnerByID(ctx, ownerID)
	if err != nil {
		l.Warn("assignment notice skipped", "reason", "owner fetch failed", "error", err)
		return assignment, nil
	}
	if !s.Mail.VehicleAssigned(owner.Email, owner.Names, *vehicle) {
		l.Warn("assignment notice not delivered", "email", owner.Email)
	}
	return assignment, nil
}

func (s *VehicleService) UnassignOwner(ctx context.Context, plate, ownerID string) error {
	if err := s.Backend.DeleteAssignment(ctx, plate, ownerID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *VehicleService) notifyOwners(ctx context.Context, vehicle models.Vehicle) {
	l := logging.FromContext(ctx).With("svc", "vehicle.notify_owners", "plate", vehicle.Plate)

	owners, err := s.Backend.OwnersByVehicle(ctx, vehicle.Plate)
	if err != nil {
		l.Warn("owner lookup for notices failed", "error", err)
		return
	}
	for _, owner := range owners {
		if !s.Mail.VehicleUpdated(owner.Email, vehicle) {
			l.Warn("update notice not delivered", "email", owner.Email)
		}
	}
}
