package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/hrms/internal/hrms/http"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		JWTSecret:           testSecret,
		Issuer:              "hrms",
		TokenTTL:            time.Hour,
		DatabaseFile:        ":memory:",
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		SweepInterval:       time.Hour,
		Location:            time.UTC,
		AdminName:           "Root",
		AdminEmail:          "root@example.com",
		AdminPassword:       "correct-horse",
		Access:              httpapi.DefaultAccessPolicy(),
	}
}

func TestNewBootstrapsAdmin(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.Handler())
	defer srv.Close()

	ctx := context.Background()
	client := hrmsapi.NewClient(srv.URL)

	login, err := client.Login(ctx, "root@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, "admin", login.Employee.Role)
	require.Equal(t, "Root", login.Employee.Name)

	dash, err := client.WithToken(login.Token).AdminDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dash.Headcount)

	health, err := client.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, BuildVersion, health.Version)
}

func TestBootstrapSkipsPopulatedDatabase(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	application.cfg.AdminEmail = "second@example.com"
	require.NoError(t, application.bootstrap(context.Background()))

	n, err := application.db.Employees().Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestShutdownStopsSweeper(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)

	application.sweeper.Start()
	require.NoError(t, application.Shutdown())
}
