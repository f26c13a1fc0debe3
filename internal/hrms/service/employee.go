package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/cryptox"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

// MinPasswordLength applies to every password set through the API.
const MinPasswordLength = 8

type EmployeeService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Now    func() time.Time
}

type CreateEmployeeInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Position   string
	Phone      string
	Salary     int64
	Status     domain.EmployeeStatus
	JoinedAt   string // YYYY-MM-DD, defaults to today
}

// UpdateEmployeeInput changes only the non-nil fields.
type UpdateEmployeeInput struct {
	Name       *string
	Email      *string
	Password   *string
	Role       *string
	Department *string
	Position   *string
	Phone      *string
	Salary     *int64
	Status     *domain.EmployeeStatus
	JoinedAt   *string
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email %q is not valid", email)
	}
	return nil
}

func validatePassword(p string) error {
	if len(p) < MinPasswordLength {
		return invalid("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (domain.Employee, error) {
	e, err := s.Store.Employees().GetByID(ctx, id)
	return e, mapStoreErr(err, "employee")
}

func (s *EmployeeService) List(ctx context.Context, f store.EmployeeFilter) ([]domain.Employee, error) {
	if f.Role != "" && !domain.ValidRole(f.Role) {
		return nil, invalid("unknown role %q", f.Role)
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("unknown status %q", f.Status)
	}
	return s.Store.Employees().List(ctx, f)
}

// Create adds an employee. Only an admin may create another admin.
func (s *EmployeeService) Create(ctx context.Context, actor Actor, in CreateEmployeeInput) (domain.Employee, error) {
	now := clockOrNow(s.Now)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	if in.Role == "" {
		in.Role = domain.RoleEmployee
	}
	if in.Status == "" {
		in.Status = domain.EmployeeActive
	}

	if in.Name == "" {
		return domain.Employee{}, invalid("name is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return domain.Employee{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.Employee{}, err
	}
	if !domain.ValidRole(in.Role) {
		return domain.Employee{}, invalid("unknown role %q", in.Role)
	}
	if in.Role == domain.RoleAdmin && actor.Role != domain.RoleAdmin {
		return domain.Employee{}, newError(ErrForbidden, "only an admin can create an admin")
	}
	if !in.Status.Valid() {
		return domain.Employee{}, invalid("unknown status %q", in.Status)
	}
	if in.Salary < 0 {
		return domain.Employee{}, invalid("salary must not be negative")
	}
	if !domain.ValidAmount(in.Salary) {
		return domain.Employee{}, invalid("salary must not exceed %d cents", domain.MaxAmount)
	}
	joined, err := parseDateOr(in.JoinedAt, now)
	if err != nil {
		return domain.Employee{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Employee{}, err
	}

	e := domain.Employee{
		ID:           idx.NewAt(now).String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Department:   strings.TrimSpace(in.Department),
		Position:     strings.TrimSpace(in.Position),
		Phone:        strings.TrimSpace(in.Phone),
		Salary:       in.Salary,
		Status:       in.Status,
		JoinedAt:     joined,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Employees().Create(ctx, e); err != nil {
		return domain.Employee{}, mapStoreErr(err, "an employee with this email")
	}

	slogx.FromContext(ctx).Info("employee created", "employee", e.ID, "role", e.Role, "by", actor.ID)
	return e, nil
}

// Update changes an employee. Admin accounts, and the admin role itself, can
// only be touched by an admin.
func (s *EmployeeService) Update(
	ctx context.Context,
	actor Actor,
	id string,
	in UpdateEmployeeInput,
) (domain.Employee, error) {
	now := clockOrNow(s.Now)

	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}

	if actor.Role != domain.RoleAdmin {
		if e.Role == domain.RoleAdmin || (in.Role != nil && *in.Role == domain.RoleAdmin) {
			return domain.Employee{}, newError(ErrForbidden, "only an admin can manage admin accounts")
		}
	}

	if in.Name != nil {
		if e.Name = strings.TrimSpace(*in.Name); e.Name == "" {
			return domain.Employee{}, invalid("name is required")
		}
	}
	if in.Email != nil {
		e.Email = NormalizeEmail(*in.Email)
		if err := validateEmail(e.Email); err != nil {
			return domain.Employee{}, err
		}
	}
	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return domain.Employee{}, invalid("unknown role %q", *in.Role)
		}
		if id == actor.ID && *in.Role != e.Role {
			return domain.Employee{}, invalid("you cannot change your own role")
		}
		e.Role = *in.Role
	}
	if in.Department != nil {
		e.Department = strings.TrimSpace(*in.Department)
	}
	if in.Position != nil {
		e.Position = strings.TrimSpace(*in.Position)
	}
	if in.Phone != nil {
		e.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Salary != nil {
		if *in.Salary < 0 {
			return domain.Employee{}, invalid("salary must not be negative")
		}
		if !domain.ValidAmount(*in.Salary) {
			return domain.Employee{}, invalid("salary must not exceed %d cents", domain.MaxAmount)
		}
		e.Salary = *in.Salary
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return domain.Employee{}, invalid("unknown status %q", *in.Status)
		}
		e.Status = *in.Status
	}
	if in.JoinedAt != nil {
		if e.JoinedAt, err = parseDateOr(*in.JoinedAt, e.JoinedAt); err != nil {
			return domain.Employee{}, err
		}
	}
	e.UpdatedAt = now

	var hash string
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return domain.Employee{}, err
		}
		if hash, err = s.Hasher.Hash(*in.Password); err != nil {
			return domain.Employee{}, err
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Employees().Update(ctx, e); err != nil {
			return mapStoreErr(err, "an employee with this email")
		}
		if hash != "" {
			e.PasswordHash = hash
			return mapStoreErr(tx.Employees().UpdatePasswordHash(ctx, e.ID, hash), "employee")
		}
		return nil
	})
	if err != nil {
		return domain.Employee{}, err
	}

	slogx.FromContext(ctx).Info("employee updated", "employee", e.ID, "by", actor.ID)
	return e, nil
}

// Delete removes an employee and, through the schema, their attendance,
// payslips and appraisals. Deleting yourself is rejected.
func (s *EmployeeService) Delete(ctx context.Context, actor Actor, id string) error {
	if id == actor.ID {
		return invalid("you cannot delete your own account")
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if e.Role == domain.RoleAdmin && actor.Role != domain.RoleAdmin {
		return newError(ErrForbidden, "only an admin can manage admin accounts")
	}
	if err := s.Store.Employees().Delete(ctx, id); err != nil {
		return mapStoreErr(err, "employee")
	}
	slogx.FromContext(ctx).Info("employee deleted", "employee", id, "by", actor.ID)
	return nil
}

// parseDateOr parses a YYYY-MM-DD date, returning def's date when s is empty.
func parseDateOr(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := def.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, invalid("date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}

func parsePeriod(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(domain.PeriodLayout, s); err != nil {
		return "", invalid("period %q must be YYYY-MM", s)
	}
	return s, nil
}
