package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
)

// UpcomingWindow is how far ahead dashboards look for events.
const UpcomingWindow = 7 * 24 * time.Hour

type DashboardService struct {
	Store      store.Store
	Attendance *AttendanceService
}

// Org summarises the whole organisation for the admin and hr dashboards.
func (s *DashboardService) Org(ctx context.Context) (domain.OrgSummary, error) {
	var (
		out domain.OrgSummary
		err error
	)
	emps := s.Store.Employees()

	if out.Headcount, err = emps.Count(ctx); err != nil {
		return out, err
	}
	if out.ActiveHeadcount, err = emps.CountByStatus(ctx, domain.EmployeeActive); err != nil {
		return out, err
	}
	if out.ByRole, err = emps.CountByRole(ctx); err != nil {
		return out, err
	}
	if out.ByDepartment, err = emps.CountByDepartment(ctx); err != nil {
		return out, err
	}
	if out.AttendanceToday, err = s.Store.Attendance().CountByStatusOn(ctx, s.Attendance.Today()); err != nil {
		return out, err
	}
	if out.UpcomingEvents, err = s.upcoming(ctx); err != nil {
		return out, err
	}
	if out.PendingPayslips, err = s.Store.Payroll().CountByStatus(ctx, domain.PayslipPending); err != nil {
		return out, err
	}
	if out.AverageRating, out.AppraisalsCounted, err = s.Store.Appraisals().AverageRating(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// Personal summarises one employee's own records.
func (s *DashboardService) Personal(ctx context.Context, employeeID string) (domain.PersonalSummary, error) {
	var out domain.PersonalSummary

	e, err := s.Store.Employees().GetByID(ctx, employeeID)
	if err != nil {
		return out, mapStoreErr(err, "employee")
	}
	out.Employee = e

	now := s.Attendance.now()
	today := now.Format(domain.DateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(domain.DateLayout)

	rec, err := s.Store.Attendance().GetByEmployeeDate(ctx, employeeID, today)
	switch {
	case err == nil:
		out.Today = &rec
	case !errors.Is(err, store.ErrNotFound):
		return out, err
	}

	if out.AttendanceMonth, err = s.Store.Attendance().CountByStatusBetween(ctx, employeeID, monthStart, today); err != nil {
		return out, err
	}

	slips, err := s.Store.Payroll().List(ctx, store.PayrollFilter{EmployeeID: employeeID})
	if err != nil {
		return out, err
	}
	if len(slips) > 0 {
		out.LatestPayslip = &slips[0]
	}

	apps, err := s.Store.Appraisals().List(ctx, employeeID)
	if err != nil {
		return out, err
	}
	if len(apps) > 0 {
		out.LatestAppraisal = &apps[0]
	}

	if out.UpcomingEvents, err = s.upcoming(ctx); err != nil {
		return out, err
	}
	return out, nil
}

func (s *DashboardService) upcoming(ctx context.Context) ([]domain.Event, error) {
	now := s.Attendance.now()
	return s.Store.Events().List(ctx, now, now.Add(UpcomingWindow))
}
