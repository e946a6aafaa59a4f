package tracker_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/balco/tracker/internal/tracker/app"
	httpapi "github.com/balco/tracker/internal/tracker/http"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/balco/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

/*
 * Common helpers for the tracker end-to-end tests. Each test gets its own
 * service instance behind an httptest server and talks to it through the SDK.
 */

const (
	fallbackAdminEmail    = "admin@balco.com"
	fallbackAdminPassword = "admin123"
)

// Rate limits are relaxed so tests making many rapid requests do not trip the
// production profiles.
var relaxed = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

func testConfig(t *testing.T, driver string) app.Config {
	t.Helper()
	return app.Config{
		Env:                 "test",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		Database: app.Database{
			Driver:       driver,
			File:         filepath.Join(t.TempDir(), "tracker.db"),
			QueryTimeout: 2 * time.Second,
		},
		Session: app.Session{
			Issuer: "balco-e2e",
			TTL:    time.Hour,
		},
		PasswordCost: bcrypt.MinCost,
	}
}

// setupTracker starts the service with cfg and returns an SDK client for it.
func setupTracker(t *testing.T, cfg app.Config) *trackersdk.Client {
	t.Helper()

	application, err := app.NewWithLogger(cfg, slogx.Discard(),
		app.WithLimits(httpapi.Limits{Strict: relaxed, Moderate: relaxed, Lenient: relaxed}),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Close()
	})

	return trackersdk.NewClient(srv.URL)
}

// registerAndLogin creates an account and signs it in.
func registerAndLogin(t *testing.T, client *trackersdk.Client, req trackersdk.RegisterRequest) *trackersdk.Session {
	t.Helper()

	user, err := client.Register(t.Context(), req)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	session, err := client.Login(t.Context(), req.Email, req.Password)
	require.NoError(t, err)
	require.Equal(t, user.ID, session.User().ID)
	return session
}

// assertHealthy verifies a health response indicates a healthy service.
func assertHealthy(t *testing.T, health *trackersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status, "Service should be healthy")
	require.NotEmpty(t, health.Uptime, "Uptime should be present")
	require.Equal(t, app.BuildVersion, health.Version)
}
