package backend

import (
	"context"
	"net/http"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

func (c *Client) EmployeeByID(ctx context.Context, identityCard string) (*models.Employee, error) {
	var emp models.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/"+identityCard, nil, nil, &emp, http.StatusOK); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *Client) EmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var emp models.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/username/"+username, nil, nil, &emp, http.StatusOK); err != nil {
		return nil, err
	}
	return &emp, nil
}

// EmployeeAuth fetches the authentication record, password hash included.
func (c *Client) EmployeeAuth(ctx context.Context, username string) (*models.EmployeeAuth, error) {
	var auth models.EmployeeAuth
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/auth/"+username, nil, nil, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in models.CreateEmployee) (*models.Employee, error) {
	var emp models.Employee
	if err := c.doJSON(ctx, http.MethodPost, "/api/employees", nil, in, &emp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, identityCard string, in models.UpdateEmployee) (*models.Employee, error) {
	var emp models.Employee
	if err := c.doJSON(ctx, http.MethodPatch, "/api/employees/"+identityCard, nil, in, &emp, http.StatusOK); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *Client) Employees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees", filter.Values(), nil, &employees, http.StatusOK); err != nil {
		return nil, err
	}
	return employees, nil
}
