package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

var ErrBootstrapAlready = errors.New("system already bootstrapped")

type BootstrapService struct {
	Store     store.Store
	Employees *EmployeeService
}

type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates an admin from acct when no employee exists yet. It
// returns ErrBootstrapAlready otherwise.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, acct AdminAccount) (domain.Employee, error) {
	n, err := s.Store.Employees().Count(ctx)
	if err != nil {
		return domain.Employee{}, err
	}
	if n > 0 {
		return domain.Employee{}, ErrBootstrapAlready
	}
	return s.CreateAdmin(ctx, acct)
}

// CreateAdmin creates an active admin regardless of existing data.
func (s *BootstrapService) CreateAdmin(ctx context.Context, acct AdminAccount) (domain.Employee, error) {
	if acct.Name == "" {
		acct.Name = "Administrator"
	}
	e, err := s.Employees.Create(ctx, Actor{ID: "bootstrap", Role: domain.RoleAdmin}, CreateEmployeeInput{
		Name:       acct.Name,
		Email:      acct.Email,
		Password:   acct.Password,
		Role:       domain.RoleAdmin,
		Department: "Administration",
		Position:   "Administrator",
		Status:     domain.EmployeeActive,
	})
	if err != nil {
		return domain.Employee{}, err
	}
	slogx.FromContext(ctx).Info("admin account created", "employee", e.ID, "email", e.Email)
	return e, nil
}
