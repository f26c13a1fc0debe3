package domain

import (
	"errors"
	"time"
)

// PeriodLayout is the layout of payroll and appraisal periods.
const PeriodLayout = "2006-01"

type PayslipStatus string

const (
	PayslipPending PayslipStatus = "pending"
	PayslipPaid    PayslipStatus = "paid"
)

func (s PayslipStatus) Valid() bool {
	return s == PayslipPending || s == PayslipPaid
}

// Payslip amounts are in cents.
type Payslip struct {
	ID         string
	EmployeeID string
	Period     string // YYYY-MM
	Basic      int64
	Allowances int64
	Deductions int64
	NetPay     int64
	Status     PayslipStatus
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MaxAmount bounds every money field, in cents. Two of them summed stay far
// from the int64 limit.
const MaxAmount int64 = 100_000_000_000_000

var ErrAmountOutOfRange = errors.New("amount out of range")

// ValidAmount reports whether cents is between zero and MaxAmount.
func ValidAmount(cents int64) bool { return cents >= 0 && cents <= MaxAmount }

// ComputeNet returns basic + allowances - deductions. Each amount must pass
// ValidAmount.
func ComputeNet(basic, allowances, deductions int64) (int64, error) {
	if !ValidAmount(basic) || !ValidAmount(allowances) || !ValidAmount(deductions) {
		return 0, ErrAmountOutOfRange
	}
	return basic + allowances - deductions, nil
}
