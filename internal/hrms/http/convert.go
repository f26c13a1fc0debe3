package http

import (
	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
)

func toEmployee(e domain.Employee) hrmsapi.Employee {
	return hrmsapi.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		Position:   e.Position,
		Phone:      e.Phone,
		Salary:     e.Salary,
		Status:     string(e.Status),
		JoinedAt:   e.JoinedAt.Format(domain.DateLayout),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toAttendance(a domain.Attendance) hrmsapi.Attendance {
	return hrmsapi.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     string(a.Status),
		Note:       a.Note,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toEvent(e domain.Event) hrmsapi.Event {
	return hrmsapi.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		AllDay:      e.AllDay,
		Color:       e.Color,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toPayslip(p domain.Payslip) hrmsapi.Payslip {
	return hrmsapi.Payslip{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Period:     p.Period,
		Basic:      p.Basic,
		Allowances: p.Allowances,
		Deductions: p.Deductions,
		NetPay:     p.NetPay,
		Status:     string(p.Status),
		PaidAt:     p.PaidAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toAppraisal(a domain.Appraisal) hrmsapi.Appraisal {
	return hrmsapi.Appraisal{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		ReviewerID: a.ReviewerID,
		Period:     a.Period,
		Rating:     a.Rating,
		Comments:   a.Comments,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// mapSlice converts a slice, never returning nil so lists encode as [].
func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func stringKeyed[K ~string](in map[K]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func toOrgDashboard(s domain.OrgSummary) hrmsapi.OrgDashboard {
	return hrmsapi.OrgDashboard{
		Headcount:         s.Headcount,
		ActiveHeadcount:   s.ActiveHeadcount,
		ByRole:            stringKeyed(s.ByRole),
		ByDepartment:      stringKeyed(s.ByDepartment),
		AttendanceToday:   stringKeyed(s.AttendanceToday),
		UpcomingEvents:    mapSlice(s.UpcomingEvents, toEvent),
		PendingPayslips:   s.PendingPayslips,
		AverageRating:     s.AverageRating,
		AppraisalsCounted: s.AppraisalsCounted,
	}
}

func toEmployeeDashboard(s domain.PersonalSummary) hrmsapi.EmployeeDashboard {
	out := hrmsapi.EmployeeDashboard{
		Employee:        toEmployee(s.Employee),
		AttendanceMonth: stringKeyed(s.AttendanceMonth),
		UpcomingEvents:  mapSlice(s.UpcomingEvents, toEvent),
	}
	if s.Today != nil {
		a := toAttendance(*s.Today)
		out.Today = &a
	}
	if s.LatestPayslip != nil {
		p := toPayslip(*s.LatestPayslip)
		out.LatestPayslip = &p
	}
	if s.LatestAppraisal != nil {
		a := toAppraisal(*s.LatestAppraisal)
		out.LatestAppraisal = &a
	}
	return out
}
