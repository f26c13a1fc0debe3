package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/hrms/internal/hrms/http"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// isolate points HRMS_CONFIG at a file that does not need to exist in the
// package directory and clears the variables other tests set.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HRMS_JWT_SECRET", "HRMS_PORT", "HRMS_TOKEN_TTL", "HRMS_TIMEZONE",
		"HRMS_ADMIN_EMAIL", "HRMS_ADMIN_PASSWORD", "HRMS_ACCESS_EMPLOYEES_READ",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("HRMS_CONFIG", "")
	require.NoError(t, os.Unsetenv("HRMS_CONFIG"))
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hrms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("HRMS_CONFIG", path)
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("HRMS_JWT_SECRET", testSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "hrms", cfg.Issuer)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "hrms.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.SweepInterval)
	require.Equal(t, time.UTC, cfg.Location)
	require.Equal(t, httpapi.DefaultAccessPolicy(), cfg.Access)
}

func TestLoadConfigSecret(t *testing.T) {
	isolate(t)

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecret)

	t.Setenv("HRMS_JWT_SECRET", "too-short")
	_, err = LoadConfig()
	require.ErrorIs(t, err, ErrShortSecret)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HRMS_JWT_SECRET", testSecret)
	t.Setenv("HRMS_PORT", "9090")
	t.Setenv("HRMS_TOKEN_TTL", "90m")
	t.Setenv("HRMS_ACCESS_EMPLOYEES_READ", "admin, hr ,employee")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 90*time.Minute, cfg.TokenTTL)
	require.Equal(t,
		[]string{"admin", "employee", "hr"},
		cfg.Access.Roles(httpapi.GroupEmployeesRead).Roles(),
	)
	// untouched groups keep their defaults
	require.Equal(t, []string{"admin"}, cfg.Access.Roles(httpapi.GroupEmployeesDelete).Roles())
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	writeConfig(t, `
jwt_secret: `+testSecret+`
timezone: Australia/Sydney
sweep_interval: 15m
access:
  payroll:
    manage: [admin]
  events:
    write: hr
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "Australia/Sydney", cfg.Location.String())
	require.Equal(t, 15*time.Minute, cfg.SweepInterval)
	require.Equal(t, []string{"admin"}, cfg.Access.Roles(httpapi.GroupPayrollManage).Roles())
	require.Equal(t, []string{"hr"}, cfg.Access.Roles(httpapi.GroupEventsWrite).Roles())

	// environment wins over the file
	t.Setenv("HRMS_ACCESS_EMPLOYEES_READ", "admin")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"admin"}, cfg.Access.Roles(httpapi.GroupEmployeesRead).Roles())
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown role", "access:\n  events:\n    write: [admin, manager]\n"},
		{"non string role", "access:\n  events:\n    write: [1]\n"},
		{"bad timezone", "timezone: Mars/Olympus\n"},
		{"admin without password", "admin_email: root@example.com\n"},
		{"port out of range", "port: 70000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("HRMS_JWT_SECRET", testSecret)
			writeConfig(t, tt.yaml)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("HRMS_JWT_SECRET", testSecret)
	t.Setenv("HRMS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	require.Equal(t, ":memory:", DSN(":memory:"))
	require.Contains(t, DSN("/var/lib/hrms.db"), "file:/var/lib/hrms.db?")
	require.Contains(t, DSN("/var/lib/hrms.db"), "journal_mode(WAL)")
}
