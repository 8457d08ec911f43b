package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

func (c *Client) CreateReparationDetail(ctx context.Context, in models.CreateReparationDetail) (*models.ReparationDetail, error) {
	var detail models.ReparationDetail
	if err := c.doJSON(ctx, http.MethodPost, "/api/details", nil, in, &detail, http.StatusCreated); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) ReparationDetailByID(ctx context.Context, id int64) (*models.ReparationDetail, error) {
	var detail models.ReparationDetail
	if err := c.doJSON(ctx, http.MethodGet, "/api/details/"+strconv.FormatInt(id, 10), nil, nil, &detail, http.StatusOK); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) ReparationDetails(ctx context.Context, filter models.ReparationDetailFilter) ([]models.ReparationDetail, error) {
	var details []models.ReparationDetail
	if err := c.doJSON(ctx, http.MethodGet, "/api/details", filter.Values(), nil, &details, http.StatusOK); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) UpdateReparationDetail(ctx context.Context, id int64, in models.UpdateReparationDetail) (*models.ReparationDetail, error) {
	var detail models.ReparationDetail
	if err := c.doJSON(ctx, http.MethodPatch, "/api/details/"+strconv.FormatInt(id, 10), nil, in, &detail, http.StatusOK); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) DeleteReparationDetail(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/details/"+strconv.FormatInt(id, 10), nil, nil, http.StatusNoContent)
	return err
}
