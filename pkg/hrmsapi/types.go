package hrmsapi

import "time"

// ============================================================================
// Authentication
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries a bearer token for the Authorization header.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Employee  Employee  `json:"employee"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ============================================================================
// Employees
// ============================================================================

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Phone      string    `json:"phone"`
	Salary     int64     `json:"salary"`
	Status     string    `json:"status"`
	JoinedAt   string    `json:"joined_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Salary     int64  `json:"salary"`
	JoinedAt   string `json:"joined_at,omitempty"`
	Status     string `json:"status,omitempty"`
}

// UpdateEmployeeRequest changes only the fields that are set.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Salary     *int64  `json:"salary,omitempty"`
	Status     *string `json:"status,omitempty"`
	JoinedAt   *string `json:"joined_at,omitempty"`
	Password   *string `json:"password,omitempty"`
}

type EmployeeFilter struct {
	Department string
	Role       string
	Status     string
}

// ============================================================================
// Attendance
// ============================================================================

type Attendance struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Status     string     `json:"status"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SetAttendanceRequest upserts the status of one employee on one date.
type SetAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID string
	From       string
	To         string
}

// ============================================================================
// Events
// ============================================================================

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"all_day"`
	Color       string    `json:"color,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventRequest creates or replaces an event. Start and End are RFC 3339
// times or YYYY-MM-DD dates; an empty End means End = Start.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	AllDay      bool   `json:"all_day"`
	Color       string `json:"color,omitempty"`
}

// Instant formats t for EventRequest.Start and End.
func Instant(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// ============================================================================
// Payroll
// ============================================================================

type Payslip struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Period     string     `json:"period"`
	Basic      int64      `json:"basic"`
	Allowances int64      `json:"allowances"`
	Deductions int64      `json:"deductions"`
	NetPay     int64      `json:"net_pay"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Basic      int64  `json:"basic"`
	Allowances int64  `json:"allowances"`
	Deductions int64  `json:"deductions"`
}

type GeneratePayrollRequest struct {
	Period string `json:"period"`
}

type GeneratePayrollResponse struct {
	Created  int       `json:"created"`
	Payslips []Payslip `json:"payslips"`
}

type PayrollFilter struct {
	EmployeeID string
	Period     string
	Status     string
}

// ============================================================================
// Appraisals
// ============================================================================

type Appraisal struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ReviewerID string    `json:"reviewer_id,omitempty"`
	Period     string    `json:"period"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AppraisalRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments,omitempty"`
}

type UpdateAppraisalRequest struct {
	Period   *string `json:"period,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Comments *string `json:"comments,omitempty"`
}

// ============================================================================
// Dashboards
// ============================================================================

type OrgDashboard struct {
	Headcount         int            `json:"headcount"`
	ActiveHeadcount   int            `json:"active_headcount"`
	ByRole            map[string]int `json:"by_role"`
	ByDepartment      map[string]int `json:"by_department"`
	AttendanceToday   map[string]int `json:"attendance_today"`
	UpcomingEvents    []Event        `json:"upcoming_events"`
	PendingPayslips   int            `json:"pending_payslips"`
	AverageRating     float64        `json:"average_rating"`
	AppraisalsCounted int            `json:"appraisals_counted"`
}

type EmployeeDashboard struct {
	Employee        Employee       `json:"employee"`
	Today           *Attendance    `json:"today,omitempty"`
	AttendanceMonth map[string]int `json:"attendance_month"`
	LatestPayslip   *Payslip       `json:"latest_payslip,omitempty"`
	LatestAppraisal *Appraisal     `json:"latest_appraisal,omitempty"`
	UpcomingEvents  []Event        `json:"upcoming_events"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned unwrapped by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
