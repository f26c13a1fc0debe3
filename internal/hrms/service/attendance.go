package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

// HalfDayThreshold is the shortest check-in to check-out span that still
// counts as a full day.
const HalfDayThreshold = 4 * time.Hour

type AttendanceService struct {
	Store store.Store
	Now   func() time.Time
	// Location decides which calendar date "today" is. Defaults to UTC.
	Location *time.Location
}

type SetAttendanceInput struct {
	EmployeeID string
	Date       string
	Status     domain.AttendanceStatus
	Note       string
}

func (s *AttendanceService) now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return clockOrNow(s.Now).In(loc)
}

// Today returns the current date in the service location.
func (s *AttendanceService) Today() string {
	return s.now().Format(domain.DateLayout)
}

// CheckIn records the caller's arrival for today. A second check-in on the
// same day is a conflict.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID string) (domain.Attendance, error) {
	now := s.now()
	today := now.Format(domain.DateLayout)

	var out domain.Attendance
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rec, err := tx.Attendance().GetByEmployeeDate(ctx, employeeID, today)
		switch {
		case errors.Is(err, store.ErrNotFound):
			out = domain.Attendance{
				ID:         idx.NewAt(now).String(),
				EmployeeID: employeeID,
				Date:       today,
				CheckIn:    &now,
				Status:     domain.AttendancePresent,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			return mapStoreErr(tx.Attendance().Create(ctx, out), "attendance record")
		case err != nil:
			return err
		case rec.CheckIn != nil:
			return newError(ErrConflict, "already checked in today")
		}

		// A record without a check-in was set by HR (e.g. leave); arriving
		// overrides it.
		rec.CheckIn = &now
		rec.Status = domain.AttendancePresent
		rec.UpdatedAt = now
		out = rec
		return mapStoreErr(tx.Attendance().Update(ctx, rec), "attendance record")
	})
	if err != nil {
		return domain.Attendance{}, err
	}

	slogx.FromContext(ctx).Info("checked in", "employee", employeeID, "date", today)
	return out, nil
}

// CheckOut records the caller's departure for today. It requires a
// check-in and may only happen once. Spans shorter than HalfDayThreshold
// are recorded as half days.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID string) (domain.Attendance, error) {
	now := s.now()
	today := now.Format(domain.DateLayout)

	var out domain.Attendance
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rec, err := tx.Attendance().GetByEmployeeDate(ctx, employeeID, today)
		if errors.Is(err, store.ErrNotFound) || (err == nil && rec.CheckIn == nil) {
			return newError(ErrNotFound, "no check-in found for today")
		}
		if err != nil {
			return err
		}
		if rec.CheckOut != nil {
			return newError(ErrConflict, "already checked out today")
		}

		rec.CheckOut = &now
		if now.Sub(*rec.CheckIn) < HalfDayThreshold {
			rec.Status = domain.AttendanceHalfDay
		}
		rec.UpdatedAt = now
		out = rec
		return mapStoreErr(tx.Attendance().Update(ctx, rec), "attendance record")
	})
	if err != nil {
		return domain.Attendance{}, err
	}

	slogx.FromContext(ctx).Info("checked out", "employee", employeeID, "date", today, "status", out.Status)
	return out, nil
}

// List returns records matching f. From and To must be dates when set.
func (s *AttendanceService) List(ctx context.Context, f store.AttendanceFilter) ([]domain.Attendance, error) {
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return nil, invalid("date %q must be YYYY-MM-DD", d)
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return nil, invalid("from must not be after to")
	}
	return s.Store.Attendance().List(ctx, f)
}

// Set records a status for an employee and date, creating or replacing the
// record. Existing check-in and check-out times are kept.
func (s *AttendanceService) Set(ctx context.Context, actor Actor, in SetAttendanceInput) (domain.Attendance, error) {
	now := s.now()

	if in.EmployeeID == "" {
		return domain.Attendance{}, invalid("employee_id is required")
	}
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return domain.Attendance{}, invalid("date %q must be YYYY-MM-DD", in.Date)
	}
	if !in.Status.Valid() {
		return domain.Attendance{}, invalid("unknown status %q", in.Status)
	}
	if _, err := s.Store.Employees().GetByID(ctx, in.EmployeeID); err != nil {
		return domain.Attendance{}, mapStoreErr(err, "employee")
	}

	rec, err := s.Store.Attendance().Upsert(ctx, domain.Attendance{
		ID:         idx.NewAt(now).String(),
		EmployeeID: in.EmployeeID,
		Date:       date.Format(domain.DateLayout),
		Status:     in.Status,
		Note:       strings.TrimSpace(in.Note),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.Attendance{}, mapStoreErr(err, "attendance record")
	}

	slogx.FromContext(ctx).Info("attendance set",
		"employee", in.EmployeeID, "date", rec.Date, "status", rec.Status, "by", actor.ID)
	return rec, nil
}

// Sweep marks open records from earlier days as incomplete.
func (s *AttendanceService) Sweep(ctx context.Context) (int64, error) {
	now := s.now()
	return s.Store.Attendance().MarkIncompleteBefore(ctx, now.Format(domain.DateLayout), now)
}
