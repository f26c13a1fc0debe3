package domain

import "time"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}

type Employee struct {
	ID           string
	Name         string
	Email        string // unique, lower-cased
	PasswordHash string // argon2id PHC string
	Role         string
	Department   string
	Position     string
	Phone        string
	Salary       int64 // monthly, in cents
	Status       EmployeeStatus
	JoinedAt     time.Time // date only
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) Active() bool { return e.Status == EmployeeActive }
