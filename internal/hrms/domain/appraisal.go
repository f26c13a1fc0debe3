package domain

import "time"

type AppraisalStatus string

const (
	AppraisalSubmitted    AppraisalStatus = "submitted"
	AppraisalAcknowledged AppraisalStatus = "acknowledged"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Appraisal struct {
	ID         string
	EmployeeID string
	ReviewerID string // empty once the reviewer is deleted
	Period     string
	Rating     int
	Comments   string
	Status     AppraisalStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
