package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
)

const employeeColumns = `id, name, email, password_hash, role, department, position, phone,
	salary, status, joined_at, created_at, updated_at`

type employeesRepo struct {
	db DBTX
}

func scanEmployee(row scanner) (domain.Employee, error) {
	var (
		e                        domain.Employee
		status                   string
		joined, created, updated string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role, &e.Department,
		&e.Position, &e.Phone, &e.Salary, &status, &joined, &created, &updated)
	if err != nil {
		return domain.Employee{}, err
	}
	e.Status = domain.EmployeeStatus(status)

	if e.JoinedAt, err = parseDate(joined); err != nil {
		return domain.Employee{}, err
	}
	if e.CreatedAt, err = parseTime(created); err != nil {
		return domain.Employee{}, err
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func (r *employeesRepo) Create(ctx context.Context, e domain.Employee) error {
	created, updated := stamps(e.CreatedAt, e.UpdatedAt)
	joined := e.JoinedAt
	if joined.IsZero() {
		joined = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.PasswordHash, e.Role, e.Department, e.Position, e.Phone,
		e.Salary, string(e.Status), formatDate(joined), created, updated,
	)
	return mapConstraint(err)
}

func (r *employeesRepo) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) List(ctx context.Context, f store.EmployeeFilter) ([]domain.Employee, error) {
	var w where
	if f.Department != "" {
		w.add("department = ?", f.Department)
	}
	if f.Role != "" {
		w.add("role = ?", f.Role)
	}
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees`+w.String()+` ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *employeesRepo) Update(ctx context.Context, e domain.Employee) error {
	_, updated := stamps(e.CreatedAt, e.UpdatedAt)
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, role = ?, department = ?, position = ?, phone = ?,
		    salary = ?, status = ?, joined_at = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Email, e.Role, e.Department, e.Position, e.Phone,
		e.Salary, string(e.Status), formatDate(e.JoinedAt), updated, e.ID,
	)
	return requireAffected(res, mapConstraint(err))
}

func (r *employeesRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, formatTime(time.Now()), id)
	return requireAffected(res, err)
}

func (r *employeesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return requireAffected(res, err)
}

func (r *employeesRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, err
}

func (r *employeesRepo) CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employees WHERE status = ?`, string(status)).Scan(&n)
	return n, err
}

func (r *employeesRepo) CountByRole(ctx context.Context) (map[string]int, error) {
	return countGrouped(ctx, r.db, `SELECT role, COUNT(*) FROM employees GROUP BY role`)
}

func (r *employeesRepo) CountByDepartment(ctx context.Context) (map[string]int, error) {
	return countGrouped(ctx, r.db, `SELECT department, COUNT(*) FROM employees GROUP BY department`)
}

// countGrouped runs a "SELECT key, COUNT(*) ... GROUP BY key" query.
func countGrouped(ctx context.Context, db DBTX, query string, args ...any) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out[key] = n
	}
	return out, rows.Err()
}
