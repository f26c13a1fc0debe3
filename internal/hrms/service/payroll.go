package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

type PayrollService struct {
	Store store.Store
	Now   func() time.Time
}

// PayslipInput amounts are in cents.
type PayslipInput struct {
	EmployeeID string
	Period     string
	Basic      int64
	Allowances int64
	Deductions int64
}

// Generate creates a pending payslip for period for every active employee
// that does not have one yet, using their salary as basic pay. It returns
// the payslips created.
func (s *PayrollService) Generate(ctx context.Context, actor Actor, period string) ([]domain.Payslip, error) {
	period, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}
	now := clockOrNow(s.Now)

	created := []domain.Payslip{}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Payroll().List(ctx, store.PayrollFilter{Period: period})
		if err != nil {
			return err
		}
		has := make(map[string]bool, len(existing))
		for _, p := range existing {
			has[p.EmployeeID] = true
		}

		active, err := tx.Employees().List(ctx, store.EmployeeFilter{Status: domain.EmployeeActive})
		if err != nil {
			return err
		}
		for _, e := range active {
			if has[e.ID] {
				continue
			}
			p := domain.Payslip{
				ID:         idx.NewAt(now).String(),
				EmployeeID: e.ID,
				Period:     period,
				Basic:      e.Salary,
				NetPay:     e.Salary,
				Status:     domain.PayslipPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.Payroll().Create(ctx, p); err != nil {
				return mapStoreErr(err, "payslip")
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("payroll generated", "period", period, "created", len(created), "by", actor.ID)
	return created, nil
}

// Create adds a single payslip. Net pay is derived and must not be negative.
func (s *PayrollService) Create(ctx context.Context, actor Actor, in PayslipInput) (domain.Payslip, error) {
	period, err := parsePeriod(in.Period)
	if err != nil {
		return domain.Payslip{}, err
	}
	if in.EmployeeID == "" {
		return domain.Payslip{}, invalid("employee_id is required")
	}
	if in.Basic < 0 || in.Allowances < 0 || in.Deductions < 0 {
		return domain.Payslip{}, invalid("amounts must not be negative")
	}
	net, err := domain.ComputeNet(in.Basic, in.Allowances, in.Deductions)
	if err != nil {
		return domain.Payslip{}, invalid("amounts must not exceed %d cents", domain.MaxAmount)
	}
	if net < 0 {
		return domain.Payslip{}, invalid("deductions exceed basic pay plus allowances")
	}
	if _, err := s.Store.Employees().GetByID(ctx, in.EmployeeID); err != nil {
		return domain.Payslip{}, mapStoreErr(err, "employee")
	}

	now := clockOrNow(s.Now)
	p := domain.Payslip{
		ID:         idx.NewAt(now).String(),
		EmployeeID: in.EmployeeID,
		Period:     period,
		Basic:      in.Basic,
		Allowances: in.Allowances,
		Deductions: in.Deductions,
		NetPay:     net,
		Status:     domain.PayslipPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Payroll().Create(ctx, p); err != nil {
		return domain.Payslip{}, mapStoreErr(err, "a payslip for this employee and period")
	}
	slogx.FromContext(ctx).Info("payslip created", "payslip", p.ID, "employee", p.EmployeeID, "by", actor.ID)
	return p, nil
}

func (s *PayrollService) List(ctx context.Context, f store.PayrollFilter) ([]domain.Payslip, error) {
	if f.Period != "" {
		if _, err := parsePeriod(f.Period); err != nil {
			return nil, err
		}
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("unknown status %q", f.Status)
	}
	return s.Store.Payroll().List(ctx, f)
}

// Pay marks a pending payslip as paid. Paying twice is a conflict.
func (s *PayrollService) Pay(ctx context.Context, actor Actor, id string) (domain.Payslip, error) {
	now := clockOrNow(s.Now)

	var out domain.Payslip
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Payroll().GetByID(ctx, id)
		if err != nil {
			return mapStoreErr(err, "payslip")
		}
		if p.Status == domain.PayslipPaid {
			return newError(ErrConflict, "payslip already paid")
		}
		if err := tx.Payroll().MarkPaid(ctx, id, now); err != nil {
			return mapStoreErr(err, "payslip")
		}
		out, err = tx.Payroll().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Payslip{}, err
	}

	slogx.FromContext(ctx).Info("payslip paid", "payslip", id, "by", actor.ID)
	return out, nil
}
