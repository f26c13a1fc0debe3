package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"

	_ "github.com/aussiebroadwan/hrms/api/hrms" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	gate         *httpx.Gate
	policy       AccessPolicy
	metrics      *httpx.Metrics
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	EmployeeService   *service.EmployeeService
	AttendanceService *service.AttendanceService
	EventService      *service.EventService
	PayrollService    *service.PayrollService
	AppraisalService  *service.AppraisalService
	DashboardService  *service.DashboardService
}

// NewRouter builds a router whose protected routes share one gate backed by
// verifier. policy must already be merged with the defaults; metrics may be
// nil.
func NewRouter(
	verifier jwtx.Verifier,
	policy AccessPolicy,
	metrics *httpx.Metrics,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		gate:         httpx.NewGate(verifier),
		policy:       policy,
		metrics:      metrics,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if metrics != nil {
		r.gate.OnReject = metrics.ObserveRejection
		// Innermost, so it sees the pattern the mux matched.
		r.middlewares = append(r.middlewares, metrics.Middleware())
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEmployees()
	r.registerAttendance()
	r.registerEvents()
	r.registerPayroll()
	r.registerAppraisals()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HRMS API
//	@version		0.1.0
//	@description	Employee records, attendance, calendar events, payroll, appraisals and role based dashboards.
//	@description
//	@description				Every response is wrapped as {"success": true, "data": ...} or {"success": false, "message": "..."}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/hrms
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 signed token from /api/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with the gate for group and a per employee rate limit.
// The empty group admits any authenticated employee.
func (r *Router) secured(h http.HandlerFunc, group string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.gate.Require(r.policy.Roles(group)),
		httpx.RateLimitByEmployee(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, EmployeeService: r.EmployeeService}

	// POST /login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe, "", httpx.LenientLimit))
	r.Mux.Handle("PUT /api/auth/password", r.secured(h.HandleChangePassword, "", httpx.StrictLimit))
}

func (r *Router) registerEmployees() {
	h := &EmployeesHandler{
		EmployeeService: r.EmployeeService,
		ReadRoles:       r.policy.Roles(GroupEmployeesRead),
	}

	r.Mux.Handle("GET /api/employees", r.secured(h.HandleList, GroupEmployeesRead, httpx.LenientLimit))
	// Any role may ask; the handler limits non staff to their own record.
	r.Mux.Handle("GET /api/employees/{id}", r.secured(h.HandleGet, "", httpx.LenientLimit))
	r.Mux.Handle("POST /api/employees", r.secured(h.HandleCreate, GroupEmployeesWrite, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/employees/{id}", r.secured(h.HandleUpdate, GroupEmployeesWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/employees/{id}", r.secured(h.HandleDelete, GroupEmployeesDelete, httpx.ModerateLimit))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	r.Mux.Handle("POST /api/attendance/check-in", r.secured(h.HandleCheckIn, "", httpx.ModerateLimit))
	r.Mux.Handle("POST /api/attendance/check-out", r.secured(h.HandleCheckOut, "", httpx.ModerateLimit))
	r.Mux.Handle("GET /api/attendance/me", r.secured(h.HandleMine, "", httpx.LenientLimit))
	r.Mux.Handle("GET /api/attendance", r.secured(h.HandleList, GroupAttendanceManage, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/attendance", r.secured(h.HandleSet, GroupAttendanceManage, httpx.ModerateLimit))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService}

	r.Mux.Handle("GET /api/events", r.secured(h.HandleList, "", httpx.LenientLimit))
	r.Mux.Handle("POST /api/events", r.secured(h.HandleCreate, GroupEventsWrite, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/events/{id}", r.secured(h.HandleUpdate, GroupEventsWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/events/{id}", r.secured(h.HandleDelete, GroupEventsWrite, httpx.ModerateLimit))
}

func (r *Router) registerPayroll() {
	h := &PayrollHandler{PayrollService: r.PayrollService}

	r.Mux.Handle("POST /api/payroll/generate", r.secured(h.HandleGenerate, GroupPayrollManage, httpx.StrictLimit))
	r.Mux.Handle("POST /api/payroll", r.secured(h.HandleCreate, GroupPayrollManage, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/payroll", r.secured(h.HandleList, GroupPayrollManage, httpx.LenientLimit))
	r.Mux.Handle("GET /api/payroll/me", r.secured(h.HandleMine, "", httpx.LenientLimit))
	r.Mux.Handle("POST /api/payroll/{id}/pay", r.secured(h.HandlePay, GroupPayrollManage, httpx.ModerateLimit))
}

func (r *Router) registerAppraisals() {
	h := &AppraisalsHandler{AppraisalService: r.AppraisalService}

	r.Mux.Handle("POST /api/appraisals", r.secured(h.HandleCreate, GroupAppraisalsManage, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/appraisals/{id}", r.secured(h.HandleUpdate, GroupAppraisalsManage, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/appraisals", r.secured(h.HandleList, GroupAppraisalsManage, httpx.LenientLimit))
	r.Mux.Handle("GET /api/appraisals/me", r.secured(h.HandleMine, "", httpx.LenientLimit))
	r.Mux.Handle("POST /api/appraisals/{id}/acknowledge", r.secured(h.HandleAcknowledge, "", httpx.ModerateLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	r.Mux.Handle("GET /api/dashboard/admin", r.secured(h.HandleOrg, GroupDashboardAdmin, httpx.LenientLimit))
	r.Mux.Handle("GET /api/dashboard/hr", r.secured(h.HandleOrg, GroupDashboardHR, httpx.LenientLimit))
	r.Mux.Handle("GET /api/dashboard/employee", r.secured(h.HandleEmployee, "", httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
