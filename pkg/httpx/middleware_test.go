package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testCookie = "tracker_session"

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRecoverer(t *testing.T) {
	h := httpx.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func newKeyManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "test"})
	require.NoError(t, err)
	return km
}

func signToken(t *testing.T, km *jwtx.KeyManager, role string) string {
	t.Helper()
	tok, err := km.Signer.Sign(jwtx.NewSessionClaims("u-1", role, "u@balco.com", "U", time.Minute, "test", nil, time.Now().UTC()))
	require.NoError(t, err)
	return tok
}

func TestAuthnMiddleware(t *testing.T) {
	km := newKeyManager(t)

	var got jwtx.Claims
	h := httpx.AuthnMiddleware(km.Verifier, testCookie)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, km, "operator"))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "operator", got.Role)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: signToken(t, km, "admin")})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "admin", got.Role)
	})

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic dXNlcjpwYXNz",
		"bad token":    "Bearer not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
		})
	}

	t.Run("token from another key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, newKeyManager(t), "admin"))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	km := newKeyManager(t)
	h := httpx.Chain(okHandler(), httpx.AuthnMiddleware(km.Verifier, testCookie), httpx.RequireRole("admin"))

	send := func(role string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, km, role))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("admin"))
	require.Equal(t, http.StatusForbidden, send("user"))
	require.Equal(t, http.StatusForbidden, send("operator"))

	rec := httptest.NewRecorder()
	httpx.RequireRole("admin")(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Email string `json:"email"`
	}

	t.Run("ok", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c"}`))
		require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &b))
		require.Equal(t, "a@b.c", b.Email)
	})

	for name, in := range map[string]string{
		"empty":    "",
		"garbage":  "{",
		"trailing": `{"email":"a"}{"email":"b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var b body
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(in))
			require.ErrorIs(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &b), httpx.ErrBadBody)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusBadRequest, "Gerekli alanlar eksik")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Gerekli alanlar eksik", resp.Error)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&neg=-2", nil)
	require.Equal(t, 3, httpx.QueryInt(req, "page", 1))
	require.Equal(t, 10, httpx.QueryInt(req, "limit", 10))
	require.Equal(t, 1, httpx.QueryInt(req, "neg", 1))
	require.Equal(t, 7, httpx.QueryInt(req, "missing", 7))
}
