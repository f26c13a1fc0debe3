// Package store defines the persistence interfaces of the HRMS service.
// Update methods write UpdatedAt as given, or the current time when it is
// zero.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per table so a Tx can hand out the same repos
// bound to the transaction.
type Store interface {
	Employees() Employees
	Attendance() Attendance
	Events() Events
	Payroll() Payroll
	Appraisals() Appraisals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// EmployeeFilter narrows Employees.List. Zero fields match everything.
type EmployeeFilter struct {
	Department string
	Role       string
	Status     domain.EmployeeStatus
}

type Employees interface {
	// Create inserts a new employee. A duplicate email gives ErrAlreadyExists.
	Create(ctx context.Context, e domain.Employee) error

	GetByID(ctx context.Context, id string) (domain.Employee, error)

	// GetByEmail looks up by the lower-cased email.
	GetByEmail(ctx context.Context, email string) (domain.Employee, error)

	// List returns matching employees ordered by name.
	List(ctx context.Context, f EmployeeFilter) ([]domain.Employee, error)

	// Update rewrites every mutable column except the password hash and
	// bumps updated_at.
	Update(ctx context.Context, e domain.Employee) error

	UpdatePasswordHash(ctx context.Context, id, hash string) error

	// Delete cascades to attendance, payroll and appraisals (per schema).
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int, error)
	CountByRole(ctx context.Context) (map[string]int, error)
	CountByDepartment(ctx context.Context) (map[string]int, error)
}

// AttendanceFilter narrows Attendance.List. From and To are inclusive
// YYYY-MM-DD bounds.
type AttendanceFilter struct {
	EmployeeID string
	From       string
	To         string
}

type Attendance interface {
	// Create inserts a record. A second record for the same employee and
	// date gives ErrAlreadyExists.
	Create(ctx context.Context, a domain.Attendance) error

	GetByEmployeeDate(ctx context.Context, employeeID, date string) (domain.Attendance, error)

	Update(ctx context.Context, a domain.Attendance) error

	// Upsert inserts or replaces status and note for (employee, date),
	// returning the stored record.
	Upsert(ctx context.Context, a domain.Attendance) (domain.Attendance, error)

	// List returns matching records newest date first.
	List(ctx context.Context, f AttendanceFilter) ([]domain.Attendance, error)

	// MarkIncompleteBefore flags present records dated before date that
	// have a check-in but no check-out. It returns the number of records changed.
	MarkIncompleteBefore(ctx context.Context, date string, now time.Time) (int64, error)

	CountByStatusOn(ctx context.Context, date string) (map[domain.AttendanceStatus]int, error)
	CountByStatusBetween(ctx context.Context, employeeID, from, to string) (map[domain.AttendanceStatus]int, error)
}

type Events interface {
	Create(ctx context.Context, e domain.Event) error
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Update(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, id string) error

	// List returns events overlapping [from, to] ordered by start. A zero
	// bound is open.
	List(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

// PayrollFilter narrows Payroll.List.
type PayrollFilter struct {
	EmployeeID string
	Period     string
	Status     domain.PayslipStatus
}

type Payroll interface {
	// Create inserts a payslip. A second payslip for the same employee and
	// period gives ErrAlreadyExists.
	Create(ctx context.Context, p domain.Payslip) error

	GetByID(ctx context.Context, id string) (domain.Payslip, error)

	// List returns matching payslips, latest period first.
	List(ctx context.Context, f PayrollFilter) ([]domain.Payslip, error)

	// MarkPaid flips a pending payslip to paid. A payslip that is already
	// paid gives ErrNotFound so the caller can distinguish via GetByID.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error

	CountByStatus(ctx context.Context, status domain.PayslipStatus) (int, error)
}

type Appraisals interface {
	Create(ctx context.Context, a domain.Appraisal) error
	GetByID(ctx context.Context, id string) (domain.Appraisal, error)

	// Update rewrites rating, comments, period and status.
	Update(ctx context.Context, a domain.Appraisal) error

	// List returns appraisals, newest first. An empty employeeID lists all.
	List(ctx context.Context, employeeID string) ([]domain.Appraisal, error)

	// AverageRating returns the mean rating and the number of appraisals.
	AverageRating(ctx context.Context) (float64, int, error)
}
