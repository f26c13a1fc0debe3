package domain

// OrgSummary backs the admin and hr dashboards.
type OrgSummary struct {
	Headcount         int
	ActiveHeadcount   int
	ByRole            map[string]int
	ByDepartment      map[string]int
	AttendanceToday   map[AttendanceStatus]int
	UpcomingEvents    []Event
	PendingPayslips   int
	AverageRating     float64
	AppraisalsCounted int
}

// PersonalSummary backs the employee dashboard.
type PersonalSummary struct {
	Employee        Employee
	Today           *Attendance
	AttendanceMonth map[AttendanceStatus]int
	LatestPayslip   *Payslip
	LatestAppraisal *Appraisal
	UpcomingEvents  []Event
}
