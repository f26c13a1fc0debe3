package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
)

const appraisalColumns = `id, employee_id, reviewer_id, period, rating, comments, status, created_at, updated_at`

type appraisalsRepo struct {
	db DBTX
}

func scanAppraisal(row scanner) (domain.Appraisal, error) {
	var (
		a                domain.Appraisal
		reviewer         sql.NullString
		status           string
		created, updated string
	)
	if err := row.Scan(&a.ID, &a.EmployeeID, &reviewer, &a.Period, &a.Rating, &a.Comments,
		&status, &created, &updated); err != nil {
		return domain.Appraisal{}, err
	}
	a.ReviewerID = mapNullString(reviewer)
	a.Status = domain.AppraisalStatus(status)

	var err error
	if a.CreatedAt, err = parseTime(created); err != nil {
		return domain.Appraisal{}, err
	}
	if a.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Appraisal{}, err
	}
	return a, nil
}

func (r *appraisalsRepo) Create(ctx context.Context, a domain.Appraisal) error {
	created, updated := stamps(a.CreatedAt, a.UpdatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appraisals (`+appraisalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.EmployeeID, mapStringNull(a.ReviewerID), a.Period, a.Rating, a.Comments,
		string(a.Status), created, updated,
	)
	return mapConstraint(err)
}

func (r *appraisalsRepo) GetByID(ctx context.Context, id string) (domain.Appraisal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+appraisalColumns+` FROM appraisals WHERE id = ?`, id)
	a, err := scanAppraisal(row)
	if err != nil {
		return domain.Appraisal{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appraisalsRepo) Update(ctx context.Context, a domain.Appraisal) error {
	_, updated := stamps(time.Time{}, a.UpdatedAt)
	res, err := r.db.ExecContext(ctx, `
		UPDATE appraisals SET period = ?, rating = ?, comments = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		a.Period, a.Rating, a.Comments, string(a.Status), updated, a.ID,
	)
	return requireAffected(res, err)
}

func (r *appraisalsRepo) List(ctx context.Context, employeeID string) ([]domain.Appraisal, error) {
	var w where
	if employeeID != "" {
		w.add("employee_id = ?", employeeID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appraisalColumns+` FROM appraisals`+w.String()+` ORDER BY created_at DESC, id DESC`,
		w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Appraisal{}
	for rows.Next() {
		a, err := scanAppraisal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *appraisalsRepo) AverageRating(ctx context.Context) (float64, int, error) {
	var (
		avg sql.NullFloat64
		n   int
	)
	if err := r.db.QueryRowContext(ctx,
		`SELECT AVG(rating), COUNT(*) FROM appraisals`).Scan(&avg, &n); err != nil {
		return 0, 0, err
	}
	return avg.Float64, n, nil
}
