package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

type AppraisalService struct {
	Store store.Store
	Now   func() time.Time
}

type AppraisalInput struct {
	EmployeeID string
	Period     string
	Rating     int
	Comments   string
}

// AppraisalUpdate changes only the non-nil fields.
type AppraisalUpdate struct {
	Period   *string
	Rating   *int
	Comments *string
}

func validateRating(r int) error {
	if r < domain.MinRating || r > domain.MaxRating {
		return invalid("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	return nil
}

// Create records an appraisal written by actor. Appraising yourself is
// rejected.
func (s *AppraisalService) Create(ctx context.Context, actor Actor, in AppraisalInput) (domain.Appraisal, error) {
	in.Period = strings.TrimSpace(in.Period)
	if in.EmployeeID == "" {
		return domain.Appraisal{}, invalid("employee_id is required")
	}
	if in.EmployeeID == actor.ID {
		return domain.Appraisal{}, invalid("you cannot appraise yourself")
	}
	if in.Period == "" {
		return domain.Appraisal{}, invalid("period is required")
	}
	if err := validateRating(in.Rating); err != nil {
		return domain.Appraisal{}, err
	}
	if _, err := s.Store.Employees().GetByID(ctx, in.EmployeeID); err != nil {
		return domain.Appraisal{}, mapStoreErr(err, "employee")
	}

	now := clockOrNow(s.Now)
	a := domain.Appraisal{
		ID:         idx.NewAt(now).String(),
		EmployeeID: in.EmployeeID,
		ReviewerID: actor.ID,
		Period:     in.Period,
		Rating:     in.Rating,
		Comments:   strings.TrimSpace(in.Comments),
		Status:     domain.AppraisalSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Appraisals().Create(ctx, a); err != nil {
		return domain.Appraisal{}, mapStoreErr(err, "appraisal")
	}
	slogx.FromContext(ctx).Info("appraisal submitted", "appraisal", a.ID, "employee", a.EmployeeID, "by", actor.ID)
	return a, nil
}

func (s *AppraisalService) Get(ctx context.Context, id string) (domain.Appraisal, error) {
	a, err := s.Store.Appraisals().GetByID(ctx, id)
	return a, mapStoreErr(err, "appraisal")
}

// Update edits a submitted appraisal. Acknowledged appraisals are final
// and nobody may edit an appraisal about themselves.
func (s *AppraisalService) Update(ctx context.Context, actor Actor, id string, in AppraisalUpdate) (domain.Appraisal, error) {
	var out domain.Appraisal
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Appraisals().GetByID(ctx, id)
		if err != nil {
			return mapStoreErr(err, "appraisal")
		}
		if a.EmployeeID == actor.ID {
			return newError(ErrForbidden, "you cannot edit your own appraisal")
		}
		if a.Status == domain.AppraisalAcknowledged {
			return newError(ErrConflict, "appraisal already acknowledged")
		}

		if in.Period != nil {
			if a.Period = strings.TrimSpace(*in.Period); a.Period == "" {
				return invalid("period is required")
			}
		}
		if in.Rating != nil {
			if err := validateRating(*in.Rating); err != nil {
				return err
			}
			a.Rating = *in.Rating
		}
		if in.Comments != nil {
			a.Comments = strings.TrimSpace(*in.Comments)
		}
		a.UpdatedAt = clockOrNow(s.Now)

		if err := tx.Appraisals().Update(ctx, a); err != nil {
			return mapStoreErr(err, "appraisal")
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appraisal{}, err
	}
	return out, nil
}

func (s *AppraisalService) List(ctx context.Context, employeeID string) ([]domain.Appraisal, error) {
	return s.Store.Appraisals().List(ctx, employeeID)
}

// Acknowledge lets the appraised employee sign off an appraisal.
func (s *AppraisalService) Acknowledge(ctx context.Context, actor Actor, id string) (domain.Appraisal, error) {
	var out domain.Appraisal
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Appraisals().GetByID(ctx, id)
		if err != nil {
			return mapStoreErr(err, "appraisal")
		}
		if a.EmployeeID != actor.ID {
			return newError(ErrForbidden, "only the appraised employee can acknowledge")
		}
		if a.Status == domain.AppraisalAcknowledged {
			return newError(ErrConflict, "appraisal already acknowledged")
		}

		a.Status = domain.AppraisalAcknowledged
		a.UpdatedAt = clockOrNow(s.Now)
		if err := tx.Appraisals().Update(ctx, a); err != nil {
			return mapStoreErr(err, "appraisal")
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appraisal{}, err
	}
	return out, nil
}
