package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/stretchr/testify/require"
)

func TestAppraisalLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)
	emp := f.hire(t, "emp@example.com", domain.RoleEmployee)
	other := f.hire(t, "other@example.com", domain.RoleEmployee)

	a, err := f.appraisals.Create(ctx, actorOf(hr), service.AppraisalInput{
		EmployeeID: emp.ID, Period: "2026-H1", Rating: 4, Comments: "solid",
	})
	require.NoError(t, err)
	require.Equal(t, hr.ID, a.ReviewerID)
	require.Equal(t, domain.AppraisalSubmitted, a.Status)

	a, err = f.appraisals.Update(ctx, actorOf(hr), a.ID, service.AppraisalUpdate{Rating: ptr(5)})
	require.NoError(t, err)
	require.Equal(t, 5, a.Rating)
	require.Equal(t, "solid", a.Comments)

	_, err = f.appraisals.Acknowledge(ctx, actorOf(other), a.ID)
	requireKind(t, err, service.ErrForbidden)

	a, err = f.appraisals.Acknowledge(ctx, actorOf(emp), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppraisalAcknowledged, a.Status)

	_, err = f.appraisals.Acknowledge(ctx, actorOf(emp), a.ID)
	requireKind(t, err, service.ErrConflict)
	_, err = f.appraisals.Update(ctx, actorOf(hr), a.ID, service.AppraisalUpdate{Rating: ptr(1)})
	requireKind(t, err, service.ErrConflict)

	list, err := f.appraisals.List(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAppraisalValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)
	emp := f.hire(t, "emp@example.com", domain.RoleEmployee)

	tests := []struct {
		name string
		in   service.AppraisalInput
		kind error
	}{
		{"self review", service.AppraisalInput{EmployeeID: hr.ID, Period: "2026", Rating: 3}, service.ErrInvalidInput},
		{"rating low", service.AppraisalInput{EmployeeID: emp.ID, Period: "2026", Rating: 0}, service.ErrInvalidInput},
		{"rating high", service.AppraisalInput{EmployeeID: emp.ID, Period: "2026", Rating: 6}, service.ErrInvalidInput},
		{"no period", service.AppraisalInput{EmployeeID: emp.ID, Rating: 3}, service.ErrInvalidInput},
		{"unknown employee", service.AppraisalInput{EmployeeID: "missing", Period: "2026", Rating: 3}, service.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.appraisals.Create(ctx, actorOf(hr), tt.in)
			requireKind(t, err, tt.kind)
		})
	}

	_, err := f.appraisals.Update(ctx, actorOf(hr), "missing", service.AppraisalUpdate{})
	requireKind(t, err, service.ErrNotFound)
}

func TestAppraisalSubjectCannotEdit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.hire(t, "admin@example.com", domain.RoleAdmin)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)

	a, err := f.appraisals.Create(ctx, actorOf(admin), service.AppraisalInput{
		EmployeeID: hr.ID, Period: "2026-H1", Rating: 2,
	})
	require.NoError(t, err)

	_, err = f.appraisals.Update(ctx, actorOf(hr), a.ID, service.AppraisalUpdate{Rating: ptr(5)})
	requireKind(t, err, service.ErrForbidden)

	got, err := f.appraisals.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rating)

	// the subject may still acknowledge it
	got, err = f.appraisals.Acknowledge(ctx, actorOf(hr), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppraisalAcknowledged, got.Status)
}

func TestAppraisalAcknowledgeRace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)
	emp := f.hire(t, "emp@example.com", domain.RoleEmployee)

	a, err := f.appraisals.Create(ctx, actorOf(hr), service.AppraisalInput{
		EmployeeID: emp.ID, Period: "2026-H1", Rating: 3,
	})
	require.NoError(t, err)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, errs[i] = f.appraisals.Acknowledge(ctx, actorOf(emp), a.ID)
			} else {
				_, errs[i] = f.appraisals.Update(ctx, actorOf(hr), a.ID, service.AppraisalUpdate{Rating: ptr(1 + i%5)})
			}
		}()
	}
	wg.Wait()

	acks := 0
	for i, err := range errs {
		if i%2 == 0 {
			if err == nil {
				acks++
				continue
			}
			requireKind(t, err, service.ErrConflict)
		}
	}
	require.Equal(t, 1, acks, "exactly one acknowledge wins")

	// Whatever the interleaving, the stored appraisal is acknowledged and
	// further edits are refused.
	got, err := f.store.Appraisals().GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppraisalAcknowledged, got.Status)
	_, err = f.appraisals.Update(ctx, actorOf(hr), a.ID, service.AppraisalUpdate{Rating: ptr(5)})
	requireKind(t, err, service.ErrConflict)
}
