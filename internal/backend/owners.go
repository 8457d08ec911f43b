package backend

import (
	"context"
	"net/http"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

func (c *Client) OwnerByID(ctx context.Context, identityCard string) (*models.Owner, error) {
	var owner models.Owner
	if err := c.doJSON(ctx, http.MethodGet, "/api/owners/"+identityCard, nil, nil, &owner, http.StatusOK); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (c *Client) CreateOwner(ctx context.Context, in models.CreateOwner) (*models.Owner, error) {
	var owner models.Owner
	if err := c.doJSON(ctx, http.MethodPost, "/api/owners", nil, in, &owner, http.StatusCreated); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (c *Client) UpdateOwner(ctx context.Context, identityCard string, in models.UpdateOwner) (*models.Owner, error) {
	var owner models.Owner
	if err := c.doJSON(ctx, http.MethodPatch, "/api/owners/"+identityCard, nil, in, &owner, http.StatusOK); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (c *Client) Owners(ctx context.Context, filter models.OwnerFilter) ([]models.Owner, error) {
	var owners []models.Owner
	if err := c.doJSON(ctx, http.MethodGet, "/api/owners", filter.Values(), nil, &owners, http.StatusOK); err != nil {
		return nil, err
	}
	return owners, nil
}
