package service

import (
	"context"
	"fmt"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/hash"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type EmployeeService struct {
	Backend *backend.Client
	Mail    Mailer
}

// Create pre-checks both unique keys before forwarding, hashes the
// password so it never crosses the wire in clear, and sends a new-account
// notice best-effort.
func (s *EmployeeService) Create(ctx context.Context, in models.CreateEmployee) (*models.Employee, error) {
	l := logging.FromContext(ctx).With("svc", "employee.create", "username", in.Username)

	if existing, _ := s.Backend.EmployeeByUsername(ctx, in.Username); existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, _ := s.Backend.EmployeeByID(ctx, in.IdentityCard); existing != nil {
		return nil, ErrIdentityCardTaken
	}

	hashed, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	in.Password = hashed

	emp, err := s.Backend.CreateEmployee(ctx, in)
	if err != nil {
		l.Error("create failed", "error", err)
		return nil, err
	}

	if !s.Mail.NewAccount(emp.Email, emp.Username) {
		l.Warn("new account notice not delivered", "email", emp.Email)
	}
	l.Info("employee created", "identity_card", emp.IdentityCard)
	return emp, nil
}

func (s *EmployeeService) ByID(ctx context.Context, identityCard string) (*models.Employee, error) {
	emp, err := s.Backend.EmployeeByID(ctx, identityCard)
	if err != nil {
		return nil, ErrNotFound
	}
	return emp, nil
}

func (s *EmployeeService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	employees, err := s.Backend.Employees(ctx, filter)
	if err != nil {
		return []models.Employee{}, nil
	}
	return employees, nil
}

func (s *EmployeeService) Update(ctx context.Context, identityCard string, in models.UpdateEmployee) (*models.Employee, error) {
	if in.Password != nil {
		hashed, err := hash.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		in.Password = &hashed
	}
	emp, err := s.Backend.UpdateEmployee(ctx, identityCard, in)
	if err != nil {
		return nil, ErrNotFound
	}
	return emp, nil
}
