package domain

import "time"

// DateLayout is the storage and wire layout of calendar dates.
const DateLayout = "2006-01-02"

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceLeave      AttendanceStatus = "leave"
	AttendanceHalfDay    AttendanceStatus = "half-day"
	AttendanceIncomplete AttendanceStatus = "incomplete"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave, AttendanceHalfDay, AttendanceIncomplete:
		return true
	}
	return false
}

// Attendance is one employee's record for one date.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     AttendanceStatus
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
