package domain

import "time"

// Event is a calendar entry shown to every employee.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Color       string
	CreatedBy   string // employee id, empty once the author is deleted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overlaps reports whether the event intersects [from, to].
func (e Event) Overlaps(from, to time.Time) bool {
	return !e.End.Before(from) && !e.Start.After(to)
}
