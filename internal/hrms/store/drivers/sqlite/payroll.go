package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
)

const payslipColumns = `id, employee_id, period, basic, allowances, deductions, net_pay, status,
	paid_at, created_at, updated_at`

type payrollRepo struct {
	db DBTX
}

func scanPayslip(row scanner) (domain.Payslip, error) {
	var (
		p                domain.Payslip
		status           string
		paidAt           sql.NullString
		created, updated string
	)
	if err := row.Scan(&p.ID, &p.EmployeeID, &p.Period, &p.Basic, &p.Allowances, &p.Deductions,
		&p.NetPay, &status, &paidAt, &created, &updated); err != nil {
		return domain.Payslip{}, err
	}
	p.Status = domain.PayslipStatus(status)

	var err error
	if p.PaidAt, err = parseTimePtr(paidAt); err != nil {
		return domain.Payslip{}, err
	}
	if p.CreatedAt, err = parseTime(created); err != nil {
		return domain.Payslip{}, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Payslip{}, err
	}
	return p, nil
}

func (r *payrollRepo) Create(ctx context.Context, p domain.Payslip) error {
	created, updated := stamps(p.CreatedAt, p.UpdatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payslips (`+payslipColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.EmployeeID, p.Period, p.Basic, p.Allowances, p.Deductions, p.NetPay,
		string(p.Status), formatTimePtr(p.PaidAt), created, updated,
	)
	return mapConstraint(err)
}

func (r *payrollRepo) GetByID(ctx context.Context, id string) (domain.Payslip, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE id = ?`, id)
	p, err := scanPayslip(row)
	if err != nil {
		return domain.Payslip{}, mapNotFound(err)
	}
	return p, nil
}

func (r *payrollRepo) List(ctx context.Context, f store.PayrollFilter) ([]domain.Payslip, error) {
	var w where
	if f.EmployeeID != "" {
		w.add("employee_id = ?", f.EmployeeID)
	}
	if f.Period != "" {
		w.add("period = ?", f.Period)
	}
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+payslipColumns+` FROM payslips`+w.String()+` ORDER BY period DESC, id DESC`,
		w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Payslip{}
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *payrollRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	ts := formatTime(paidAt)
	res, err := r.db.ExecContext(ctx, `
		UPDATE payslips SET status = 'paid', paid_at = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		ts, ts, id)
	return requireAffected(res, err)
}

func (r *payrollRepo) CountByStatus(ctx context.Context, status domain.PayslipStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payslips WHERE status = ?`, string(status)).Scan(&n)
	return n, err
}
