package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
)

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, note, created_at, updated_at`

type attendanceRepo struct {
	db DBTX
}

func scanAttendance(row scanner) (domain.Attendance, error) {
	var (
		a                 domain.Attendance
		checkIn, checkOut sql.NullString
		status            string
		created, updated  string
	)
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &checkIn, &checkOut, &status, &a.Note,
		&created, &updated); err != nil {
		return domain.Attendance{}, err
	}
	a.Status = domain.AttendanceStatus(status)

	var err error
	if a.CheckIn, err = parseTimePtr(checkIn); err != nil {
		return domain.Attendance{}, err
	}
	if a.CheckOut, err = parseTimePtr(checkOut); err != nil {
		return domain.Attendance{}, err
	}
	if a.CreatedAt, err = parseTime(created); err != nil {
		return domain.Attendance{}, err
	}
	if a.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepo) Create(ctx context.Context, a domain.Attendance) error {
	created, updated := stamps(a.CreatedAt, a.UpdatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (`+attendanceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.EmployeeID, a.Date, formatTimePtr(a.CheckIn), formatTimePtr(a.CheckOut),
		string(a.Status), a.Note, created, updated,
	)
	return mapConstraint(err)
}

func (r *attendanceRepo) GetByEmployeeDate(ctx context.Context, employeeID, date string) (domain.Attendance, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = ? AND date = ?`,
		employeeID, date)
	a, err := scanAttendance(row)
	if err != nil {
		return domain.Attendance{}, mapNotFound(err)
	}
	return a, nil
}

func (r *attendanceRepo) Update(ctx context.Context, a domain.Attendance) error {
	_, updated := stamps(time.Time{}, a.UpdatedAt)
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance
		SET check_in = ?, check_out = ?, status = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		formatTimePtr(a.CheckIn), formatTimePtr(a.CheckOut), string(a.Status), a.Note, updated, a.ID,
	)
	return requireAffected(res, err)
}

func (r *attendanceRepo) Upsert(ctx context.Context, a domain.Attendance) (domain.Attendance, error) {
	created, updated := stamps(a.CreatedAt, a.UpdatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (`+attendanceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in   = COALESCE(excluded.check_in, attendance.check_in),
			check_out  = COALESCE(excluded.check_out, attendance.check_out),
			status     = excluded.status,
			note       = excluded.note,
			updated_at = excluded.updated_at`,
		a.ID, a.EmployeeID, a.Date, formatTimePtr(a.CheckIn), formatTimePtr(a.CheckOut),
		string(a.Status), a.Note, created, updated,
	)
	if err != nil {
		return domain.Attendance{}, mapConstraint(err)
	}
	return r.GetByEmployeeDate(ctx, a.EmployeeID, a.Date)
}

func (r *attendanceRepo) List(ctx context.Context, f store.AttendanceFilter) ([]domain.Attendance, error) {
	var w where
	if f.EmployeeID != "" {
		w.add("employee_id = ?", f.EmployeeID)
	}
	if f.From != "" {
		w.add("date >= ?", f.From)
	}
	if f.To != "" {
		w.add("date <= ?", f.To)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance`+w.String()+` ORDER BY date DESC, employee_id`,
		w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepo) MarkIncompleteBefore(ctx context.Context, date string, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance
		SET status = 'incomplete', updated_at = ?
		WHERE date < ? AND check_in IS NOT NULL AND check_out IS NULL AND status = 'present'`,
		formatTime(now), date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *attendanceRepo) CountByStatusOn(ctx context.Context, date string) (map[domain.AttendanceStatus]int, error) {
	counts, err := countGrouped(ctx, r.db,
		`SELECT status, COUNT(*) FROM attendance WHERE date = ? GROUP BY status`, date)
	if err != nil {
		return nil, err
	}
	return toStatusCounts(counts), nil
}

func (r *attendanceRepo) CountByStatusBetween(
	ctx context.Context,
	employeeID, from, to string,
) (map[domain.AttendanceStatus]int, error) {
	counts, err := countGrouped(ctx, r.db, `
		SELECT status, COUNT(*) FROM attendance
		WHERE employee_id = ? AND date >= ? AND date <= ?
		GROUP BY status`, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return toStatusCounts(counts), nil
}

func toStatusCounts(in map[string]int) map[domain.AttendanceStatus]int {
	out := make(map[domain.AttendanceStatus]int, len(in))
	for k, v := range in {
		out[domain.AttendanceStatus(k)] = v
	}
	return out
}
