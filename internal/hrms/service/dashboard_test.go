package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/stretchr/testify/require"
)

func TestDashboards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.hire(t, "admin@example.com", domain.RoleAdmin)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)
	emp := f.hire(t, "emp@example.com", domain.RoleEmployee)

	_, err := f.attendance.CheckIn(ctx, emp.ID)
	require.NoError(t, err)
	_, err = f.events.Create(ctx, actorOf(hr), service.EventInput{
		Title: "Payday", Start: f.clock.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	_, err = f.events.Create(ctx, actorOf(hr), service.EventInput{
		Title: "Far away", Start: f.clock.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	_, err = f.payroll.Generate(ctx, actorOf(admin), "2026-04")
	require.NoError(t, err)
	_, err = f.appraisals.Create(ctx, actorOf(hr), service.AppraisalInput{EmployeeID: emp.ID, Period: "Q1", Rating: 3})
	require.NoError(t, err)

	org, err := f.dashboard.Org(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, org.Headcount)
	require.Equal(t, 3, org.ActiveHeadcount)
	require.Equal(t, map[string]int{"admin": 1, "hr": 1, "employee": 1}, org.ByRole)
	require.Equal(t, map[string]int{"Ops": 3}, org.ByDepartment)
	require.Equal(t, 1, org.AttendanceToday[domain.AttendancePresent])
	require.Len(t, org.UpcomingEvents, 1)
	require.Equal(t, 3, org.PendingPayslips)
	require.InDelta(t, 3.0, org.AverageRating, 0.001)
	require.Equal(t, 1, org.AppraisalsCounted)

	me, err := f.dashboard.Personal(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, emp.ID, me.Employee.ID)
	require.NotNil(t, me.Today)
	require.Equal(t, 1, me.AttendanceMonth[domain.AttendancePresent])
	require.NotNil(t, me.LatestPayslip)
	require.Equal(t, "2026-04", me.LatestPayslip.Period)
	require.NotNil(t, me.LatestAppraisal)
	require.Len(t, me.UpcomingEvents, 1)

	_, err = f.dashboard.Personal(ctx, "missing")
	requireKind(t, err, service.ErrNotFound)
}
