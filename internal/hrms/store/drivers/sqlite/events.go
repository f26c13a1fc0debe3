package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
)

const eventColumns = `id, title, description, start_at, end_at, all_day, color, created_by, created_at, updated_at`

type eventsRepo struct {
	db DBTX
}

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e                            domain.Event
		start, end, created, updated string
		createdBy                    sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &start, &end, &e.AllDay, &e.Color,
		&createdBy, &created, &updated); err != nil {
		return domain.Event{}, err
	}
	e.CreatedBy = mapNullString(createdBy)

	var err error
	if e.Start, err = parseTime(start); err != nil {
		return domain.Event{}, err
	}
	if e.End, err = parseTime(end); err != nil {
		return domain.Event{}, err
	}
	if e.CreatedAt, err = parseTime(created); err != nil {
		return domain.Event{}, err
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (r *eventsRepo) Create(ctx context.Context, e domain.Event) error {
	created, updated := stamps(e.CreatedAt, e.UpdatedAt)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, formatTime(e.Start), formatTime(e.End), e.AllDay, e.Color,
		mapStringNull(e.CreatedBy), created, updated,
	)
	return mapConstraint(err)
}

func (r *eventsRepo) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) Update(ctx context.Context, e domain.Event) error {
	_, updated := stamps(time.Time{}, e.UpdatedAt)
	res, err := r.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, start_at = ?, end_at = ?, all_day = ?, color = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, formatTime(e.Start), formatTime(e.End), e.AllDay, e.Color, updated, e.ID,
	)
	return requireAffected(res, err)
}

func (r *eventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return requireAffected(res, err)
}

func (r *eventsRepo) List(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var w where
	if !from.IsZero() {
		w.add("end_at >= ?", formatTime(from))
	}
	if !to.IsZero() {
		w.add("start_at <= ?", formatTime(to))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events`+w.String()+` ORDER BY start_at, id`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
