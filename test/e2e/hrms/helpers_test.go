//go:build e2e

package hrms_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the HRMS end-to-end tests. Every
 * test talks to a fresh container through pkg/hrmsapi.
 */

const (
	testImageName = "hrms-test:latest"

	jwtSecret     = "e2e-secret-0123456789abcdef-0123456789"
	adminEmail    = "admin@example.com"
	adminPassword = "Admin123!"
	staffPassword = "Staff123!"
)

// TestMain builds the image once before all tests and removes it afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building HRMS Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up HRMS Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/hrms/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// baseEnv is the container environment shared by every test. Rate limits
// are relaxed unless a test asks for the production defaults.
func baseEnv(relaxed bool) map[string]string {
	env := map[string]string{
		"HRMS_JWT_SECRET":     jwtSecret,
		"HRMS_ADMIN_EMAIL":    adminEmail,
		"HRMS_ADMIN_PASSWORD": adminPassword,
		"HRMS_ENV":            "test",
		"HRMS_LOG_LEVEL":      "info",
		"HRMS_LOG_FORMAT":     "json",
	}
	if relaxed {
		for _, profile := range []string{"STRICT", "MODERATE"} {
			env["HRMS_RATELIMIT_"+profile+"_REQUESTS"] = "1000"
			env["HRMS_RATELIMIT_"+profile+"_BURST"] = "1000"
		}
	}
	return env
}

// setupContainer starts the service and returns a client for it.
func setupContainer(t *testing.T, env map[string]string) *hrmsapi.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return hrmsapi.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// loginAs returns a client carrying a token for email.
func loginAs(t *testing.T, client *hrmsapi.Client, email, password string) *hrmsapi.Client {
	t.Helper()
	resp, err := client.Login(t.Context(), email, password)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return client.WithToken(resp.Token)
}

// hire creates an employee as admin and logs them in.
func hire(t *testing.T, admin *hrmsapi.Client, name, role, dept string) (*hrmsapi.Employee, *hrmsapi.Client) {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", name)
	e, err := admin.CreateEmployee(t.Context(), hrmsapi.CreateEmployeeRequest{
		Name:       name,
		Email:      email,
		Password:   staffPassword,
		Role:       role,
		Department: dept,
		Salary:     500000,
	})
	require.NoError(t, err)
	return e, loginAs(t, admin.WithToken(""), email, staffPassword)
}

func mustNow() time.Time { return time.Now().UTC().Truncate(time.Second) }

func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, status, hrmsapi.StatusCode(err), "%s: %v", context, err)
}
