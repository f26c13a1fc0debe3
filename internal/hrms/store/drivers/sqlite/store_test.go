package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/internal/hrms/store/drivers/sqlite"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedEmployee(t *testing.T, s store.Store, email, role, dept string) domain.Employee {
	t.Helper()
	e := domain.Employee{
		ID:           idx.New().String(),
		Name:         email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Department:   dept,
		Salary:       500000,
		Status:       domain.EmployeeActive,
		JoinedAt:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Employees().Create(context.Background(), e))
	return e
}

func TestMigrationsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())

	v, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, v)
	require.NoError(t, s.Ping(context.Background()))
}

func TestEmployees(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedEmployee(t, s, "alice@example.com", domain.RoleHR, "People")
	seedEmployee(t, s, "bob@example.com", domain.RoleEmployee, "Engineering")
	seedEmployee(t, s, "carol@example.com", domain.RoleEmployee, "Engineering")

	got, err := s.Employees().GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, "2025-07-01", got.JoinedAt.Format(domain.DateLayout))
	require.False(t, got.CreatedAt.IsZero())

	dup := alice
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Employees().Create(ctx, dup), store.ErrAlreadyExists)

	eng, err := s.Employees().List(ctx, store.EmployeeFilter{Department: "Engineering"})
	require.NoError(t, err)
	require.Len(t, eng, 2)

	byRole, err := s.Employees().CountByRole(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"hr": 1, "employee": 2}, byRole)

	got.Position = "Lead"
	got.Status = domain.EmployeeInactive
	require.NoError(t, s.Employees().Update(ctx, got))
	active, err := s.Employees().CountByStatus(ctx, domain.EmployeeActive)
	require.NoError(t, err)
	require.Equal(t, 2, active)

	require.NoError(t, s.Employees().UpdatePasswordHash(ctx, alice.ID, "new-hash"))
	got, err = s.Employees().GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Equal(t, "Lead", got.Position)

	_, err = s.Employees().GetByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Employees().Delete(ctx, "missing"), store.ErrNotFound)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	hr := seedEmployee(t, s, "hr@example.com", domain.RoleHR, "People")
	emp := seedEmployee(t, s, "emp@example.com", domain.RoleEmployee, "Ops")

	require.NoError(t, s.Attendance().Create(ctx, domain.Attendance{
		ID: idx.New().String(), EmployeeID: emp.ID, Date: "2026-01-05", Status: domain.AttendancePresent,
	}))
	require.NoError(t, s.Payroll().Create(ctx, domain.Payslip{
		ID: idx.New().String(), EmployeeID: emp.ID, Period: "2026-01", Basic: 100, NetPay: 100,
		Status: domain.PayslipPending,
	}))
	require.NoError(t, s.Appraisals().Create(ctx, domain.Appraisal{
		ID: idx.New().String(), EmployeeID: emp.ID, ReviewerID: hr.ID, Period: "2026-01", Rating: 4,
		Status: domain.AppraisalSubmitted,
	}))
	ev := domain.Event{
		ID: idx.New().String(), Title: "Town hall", CreatedBy: hr.ID,
		Start: time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC), End: time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Events().Create(ctx, ev))

	require.NoError(t, s.Employees().Delete(ctx, emp.ID))
	att, err := s.Attendance().List(ctx, store.AttendanceFilter{EmployeeID: emp.ID})
	require.NoError(t, err)
	require.Empty(t, att)
	pay, err := s.Payroll().List(ctx, store.PayrollFilter{EmployeeID: emp.ID})
	require.NoError(t, err)
	require.Empty(t, pay)
	apps, err := s.Appraisals().List(ctx, emp.ID)
	require.NoError(t, err)
	require.Empty(t, apps)

	// Deleting the author keeps the event.
	require.NoError(t, s.Employees().Delete(ctx, hr.ID))
	got, err := s.Events().GetByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Empty(t, got.CreatedBy)
}

func TestAttendance(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	emp := seedEmployee(t, s, "emp@example.com", domain.RoleEmployee, "Ops")

	in := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	rec := domain.Attendance{
		ID: idx.New().String(), EmployeeID: emp.ID, Date: "2026-02-02", CheckIn: &in,
		Status: domain.AttendancePresent,
	}
	require.NoError(t, s.Attendance().Create(ctx, rec))

	again := rec
	again.ID = idx.New().String()
	require.ErrorIs(t, s.Attendance().Create(ctx, again), store.ErrAlreadyExists)

	got, err := s.Attendance().GetByEmployeeDate(ctx, emp.ID, "2026-02-02")
	require.NoError(t, err)
	require.True(t, in.Equal(*got.CheckIn))
	require.Nil(t, got.CheckOut)

	// Upsert keeps the existing check-in and replaces status.
	up, err := s.Attendance().Upsert(ctx, domain.Attendance{
		ID: idx.New().String(), EmployeeID: emp.ID, Date: "2026-02-02",
		Status: domain.AttendanceHalfDay, Note: "left early",
	})
	require.NoError(t, err)
	require.Equal(t, rec.ID, up.ID)
	require.Equal(t, domain.AttendanceHalfDay, up.Status)
	require.NotNil(t, up.CheckIn)

	_, err = s.Attendance().Upsert(ctx, domain.Attendance{
		ID: idx.New().String(), EmployeeID: emp.ID, Date: "2026-02-03", CheckIn: &in,
		Status: domain.AttendancePresent,
	})
	require.NoError(t, err)

	n, err := s.Attendance().MarkIncompleteBefore(ctx, "2026-02-04", time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, n, "only open present records are swept")

	n, err = s.Attendance().MarkIncompleteBefore(ctx, "2026-02-04", time.Now())
	require.NoError(t, err)
	require.Zero(t, n, "already marked")

	list, err := s.Attendance().List(ctx, store.AttendanceFilter{From: "2026-02-03", To: "2026-02-03"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.AttendanceIncomplete, list[0].Status)

	counts, err := s.Attendance().CountByStatusBetween(ctx, emp.ID, "2026-02-01", "2026-02-28")
	require.NoError(t, err)
	require.Equal(t, 1, counts[domain.AttendanceIncomplete])
	require.Equal(t, 1, counts[domain.AttendanceHalfDay])
}

func TestEventsOverlap(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	day := func(d, h int) time.Time { return time.Date(2026, 3, d, h, 0, 0, 0, time.UTC) }
	for _, ev := range []domain.Event{
		{ID: idx.New().String(), Title: "before", Start: day(1, 9), End: day(1, 10)},
		{ID: idx.New().String(), Title: "spanning", Start: day(4, 9), End: day(8, 17)},
		{ID: idx.New().String(), Title: "inside", Start: day(6, 9), End: day(6, 10), AllDay: true},
		{ID: idx.New().String(), Title: "after", Start: day(20, 9), End: day(20, 10)},
	} {
		require.NoError(t, s.Events().Create(ctx, ev))
	}

	got, err := s.Events().List(ctx, day(5, 0), day(7, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "spanning", got[0].Title)
	require.Equal(t, "inside", got[1].Title)
	require.True(t, got[1].AllDay)

	all, err := s.Events().List(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	bad := domain.Event{ID: idx.New().String(), Title: "backwards", Start: day(3, 10), End: day(3, 9)}
	require.Error(t, s.Events().Create(ctx, bad))
}

func TestPayroll(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	emp := seedEmployee(t, s, "emp@example.com", domain.RoleEmployee, "Ops")

	p := domain.Payslip{
		ID: idx.New().String(), EmployeeID: emp.ID, Period: "2026-03",
		Basic: 500000, Allowances: 20000, Deductions: 50000, NetPay: 470000,
		Status: domain.PayslipPending,
	}
	require.NoError(t, s.Payroll().Create(ctx, p))

	dup := p
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Payroll().Create(ctx, dup), store.ErrAlreadyExists)

	paidAt := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Payroll().MarkPaid(ctx, p.ID, paidAt))
	require.ErrorIs(t, s.Payroll().MarkPaid(ctx, p.ID, paidAt), store.ErrNotFound)

	got, err := s.Payroll().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PayslipPaid, got.Status)
	require.True(t, paidAt.Equal(*got.PaidAt))

	pending, err := s.Payroll().CountByStatus(ctx, domain.PayslipPending)
	require.NoError(t, err)
	require.Zero(t, pending)
}

func TestAppraisals(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	hr := seedEmployee(t, s, "hr@example.com", domain.RoleHR, "People")
	emp := seedEmployee(t, s, "emp@example.com", domain.RoleEmployee, "Ops")

	avg, n, err := s.Appraisals().AverageRating(ctx)
	require.NoError(t, err)
	require.Zero(t, avg)
	require.Zero(t, n)

	for _, rating := range []int{3, 5} {
		require.NoError(t, s.Appraisals().Create(ctx, domain.Appraisal{
			ID: idx.New().String(), EmployeeID: emp.ID, ReviewerID: hr.ID, Period: "2026-Q1",
			Rating: rating, Status: domain.AppraisalSubmitted,
		}))
	}
	require.Error(t, s.Appraisals().Create(ctx, domain.Appraisal{
		ID: idx.New().String(), EmployeeID: emp.ID, Period: "2026-Q1", Rating: 6,
		Status: domain.AppraisalSubmitted,
	}), "rating is checked by the schema")

	avg, n, err = s.Appraisals().AverageRating(ctx)
	require.NoError(t, err)
	require.InDelta(t, 4.0, avg, 0.001)
	require.Equal(t, 2, n)

	list, err := s.Appraisals().List(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	a := list[0]
	a.Status = domain.AppraisalAcknowledged
	require.NoError(t, s.Appraisals().Update(ctx, a))
	got, err := s.Appraisals().GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppraisalAcknowledged, got.Status)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		seedEmployee(t, tx, "tx@example.com", domain.RoleEmployee, "Ops")
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.Employees().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		seedEmployee(t, tx, "tx@example.com", domain.RoleEmployee, "Ops")
		return nil
	}))
	n, err = s.Employees().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
