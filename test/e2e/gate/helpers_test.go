package gate_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for gate service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "demogate-test:latest"

	adminPassword    = "Operator123!"
	adminTokenSecret = "e2e-admin-token-secret"
)

// adminPasswordHash is computed once in TestMain so every container gets the
// same credential.
var adminPasswordHash string

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	hash, err := cryptox.HashPassword(adminPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash admin password: %v\n", err)
		os.Exit(1)
	}
	adminPasswordHash = hash

	fmt.Fprintf(os.Stdout, "Building Gate Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Gate Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/demogate/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupGateContainer starts the gate service in a container and returns the base URL.
func setupGateContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"GATE_BASE_URL":            "http://localhost:8080",
			"GATE_ADMIN_PASSWORD_HASH": adminPasswordHash,
			"GATE_ADMIN_TOKEN_SECRET":  adminTokenSecret,
			"GATE_DATABASE_FILE":       "/tmp/gate.db",
			"ENV":                      "test",
			"LOG_LEVEL":                "info",
			"LOG_FORMAT":               "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// loginAsAdmin authenticates with the operator password.
func loginAsAdmin(t *testing.T, client *gatesdk.Client) *gatesdk.AdminSession {
	t.Helper()

	admin, err := client.AdminLogin(context.Background(), adminPassword)
	require.NoError(t, err, "Admin login should succeed")
	require.NotEmpty(t, admin.Token())
	return admin
}

// inviteUser creates an invitation and asserts the returned payload is complete.
func inviteUser(t *testing.T, admin *gatesdk.AdminSession, email, name string) *gatesdk.InvitedUserPayload {
	t.Helper()

	invited, err := admin.CreateInvitation(context.Background(), gatesdk.InviteRequest{
		Email: email,
		Name:  name,
	})
	require.NoError(t, err, "Invitation should succeed")
	require.NotEmpty(t, invited.ID)
	require.NotEmpty(t, invited.InviteCode)
	require.Contains(t, invited.InviteURL, "/login?code="+invited.InviteCode)
	require.True(t, invited.IsActive)
	return invited
}

// assertUnauthorized checks that an error is a 401 *gatesdk.APIError.
func assertUnauthorized(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *gatesdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.True(t, apiErr.IsUnauthorized(), "%s - expected 401, got %d", context, apiErr.StatusCode)
}
