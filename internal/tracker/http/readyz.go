package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/balco/tracker/pkg/trackersdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe reporting the database, the session signer and the fallback accounts.
//	@Description	An unreachable database only degrades the service: sign-in still works from the fallback accounts, so the probe answers 200 with status "degraded".
//	@Description	Without signing keys no session can be issued and the probe answers 503.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trackersdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	trackersdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
	fallbackAccounts int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &trackersdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
			Fallback: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness: database ping failed", slog.Any("error", err))
			checks.Database = "unavailable"
			overallStatus = "degraded"
		}

		if fallbackAccounts == 0 {
			checks.Fallback = "none configured"
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, trackersdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
