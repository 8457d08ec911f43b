package backend

import (
	"context"
	"net/http"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

func (c *Client) VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles/"+plate, nil, nil, &vehicle, http.StatusOK); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) CreateVehicle(ctx context.Context, in models.CreateVehicle) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.doJSON(ctx, http.MethodPost, "/api/vehicles", nil, in, &vehicle, http.StatusCreated); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, plate string, in models.UpdateVehicle) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.doJSON(ctx, http.MethodPatch, "/api/vehicles/"+plate, nil, in, &vehicle, http.StatusOK); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) Vehicles(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles", filter.Values(), nil, &vehicles, http.StatusOK); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// VehiclesByOwner lists the vehicles joined to an owner through the
// vehicles-x-owners relation.
func (c *Client) VehiclesByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles-x-owners/owner/"+ownerID+"/vehicles", nil, nil, &vehicles, http.StatusOK); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// OwnersByVehicle is the inverse join: every owner a vehicle is
// assigned to.
func (c *Client) OwnersByVehicle(ctx context.Context, plate string) ([]models.Owner, error) {
	var owners []models.Owner
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles-x-owners/vehicle/"+plate+"/owners", nil, nil, &owners, http.StatusOK); err != nil {
		return nil, err
	}
	return owners, nil
}

func (c *Client) CreateAssignment(ctx context.Context, in models.CreateVehicleXOwner) (*models.VehicleXOwner, error) {
	var assignment models.VehicleXOwner
	if err := c.doJSON(ctx, http.MethodPost, "/api/vehicles-x-owners", nil, in, &assignment, http.StatusCreated); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (c *Client) AssignmentByPair(ctx context.Context, vehicleID, ownerID string) (*models.VehicleXOwner, error) {
	var assignment models.VehicleXOwner
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles-x-owners/"+vehicleID+"/"+ownerID, nil, nil, &assignment, http.StatusOK); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (c *Client) DeleteAssignment(ctx context.Context, vehicleID, ownerID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/vehicles-x-owners/"+vehicleID+"/"+ownerID, nil, nil, http.StatusNoContent)
	return err
}
