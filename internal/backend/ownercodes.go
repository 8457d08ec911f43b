package backend

import (
	"context"
	"net/http"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

// OwnerCodeByCode looks up a live one-time login code. An
// ErrUnexpectedStatus result means no record exists under the code.
func (c *Client) OwnerCodeByCode(ctx context.Context, code string) (*models.OwnerCode, error) {
	var rec models.OwnerCode
	if err := c.doJSON(ctx, http.MethodGet, "/api/owner-tokens/"+code, nil, nil, &rec, http.StatusOK); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) CreateOwnerCode(ctx context.Context, in models.OwnerCode) (*models.OwnerCode, error) {
	var rec models.OwnerCode
	if err := c.doJSON(ctx, http.MethodPost, "/api/owner-tokens", nil, in, &rec, http.StatusCreated); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteOwnerCode(ctx context.Context, code string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/owner-tokens/"+code, nil, nil, http.StatusNoContent)
	return err
}
