package httpx

import (
	"net/http"
	"slices"
)

// RequireRole lets the request through only when the session role is one of
// roles. It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := roleFromCtx(r.Context())
			if role == "" {
				writeBearerError(w, "missing session")
				return
			}
			if !slices.Contains(roles, role) {
				logFromRequest(r).Warn("role not permitted", "role", role, "required", roles)
				WriteError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
