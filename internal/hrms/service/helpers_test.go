package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store/drivers/sqlite"
	"github.com/aussiebroadwan/hrms/pkg/cryptox"
	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "hrms-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *clock) Advance(d time.Duration) { c.Set(c.Now().Add(d)) }

type fixture struct {
	store      *sqlite.Store
	clock      *clock
	auth       *service.AuthService
	employees  *service.EmployeeService
	attendance *service.AttendanceService
	events     *service.EventService
	payroll    *service.PayrollService
	appraisals *service.AppraisalService
	dashboard  *service.DashboardService
	bootstrap  *service.BootstrapService
	verifier   jwtx.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clk := &clock{t: time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)}
	hasher := cryptox.NewHasher("pepper")

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: testIssuer, Now: clk.Now})
	require.NoError(t, err)

	employees := &service.EmployeeService{Store: st, Hasher: hasher, Now: clk.Now}
	attendance := &service.AttendanceService{Store: st, Now: clk.Now}
	return &fixture{
		store:      st,
		clock:      clk,
		auth:       &service.AuthService{Store: st, Hasher: hasher, Signer: signer, Issuer: testIssuer, TTL: time.Hour, Now: clk.Now},
		employees:  employees,
		attendance: attendance,
		events:     &service.EventService{Store: st, Now: clk.Now},
		payroll:    &service.PayrollService{Store: st, Now: clk.Now},
		appraisals: &service.AppraisalService{Store: st, Now: clk.Now},
		dashboard:  &service.DashboardService{Store: st, Attendance: attendance},
		bootstrap:  &service.BootstrapService{Store: st, Employees: employees},
		verifier:   verifier,
	}
}

var rootActor = service.Actor{ID: "root", Role: domain.RoleAdmin}

func (f *fixture) hire(t *testing.T, email, role string) domain.Employee {
	t.Helper()
	e, err := f.employees.Create(context.Background(), rootActor, service.CreateEmployeeInput{
		Name:       email,
		Email:      email,
		Password:   "correct-horse",
		Role:       role,
		Department: "Ops",
		Salary:     400000,
	})
	require.NoError(t, err)
	return e
}

func actorOf(e domain.Employee) service.Actor {
	return service.Actor{ID: e.ID, Role: e.Role}
}

// requireKind asserts err is a service error of kind with a message.
func requireKind(t *testing.T, err error, kind error) string {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var se *service.Error
	if errors.As(err, &se) {
		require.NotEmpty(t, se.Message)
		return se.Message
	}
	return err.Error()
}
