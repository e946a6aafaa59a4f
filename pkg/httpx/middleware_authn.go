package httpx

import (
	"net/http"
	"strings"

	"github.com/balco/tracker/pkg/jwtx"
)

// SessionToken returns the bearer token from the Authorization header, or
// the value of the named cookie when no header is present.
func SessionToken(r *http.Request, cookieName string) string {
	if authz := r.Header.Get("Authorization"); authz != "" {
		if !strings.HasPrefix(authz, "Bearer ") {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}

	if cookieName == "" {
		return ""
	}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// AuthnMiddleware rejects requests without a valid session token and puts the
// verified claims into the request context.
func AuthnMiddleware(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := SessionToken(r, cookieName)
			if raw == "" {
				writeBearerError(w, "missing session token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				logFromRequest(r).Warn("session verify failed", "err", err)
				writeBearerError(w, "session verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized")
}
