package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/balco/tracker/internal/tracker/directory"
	httpapi "github.com/balco/tracker/internal/tracker/http"
	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/offline"
	"github.com/balco/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/balco/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testIssuer = "balco-test"

var relaxed = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

type server struct {
	router *httpapi.Router
	keys   *jwtx.KeyManager
	memory *directory.MemoryTier
}

type serverOption func(*httpapi.Router)

func withLimits(l httpapi.Limits) serverOption {
	return func(r *httpapi.Router) { r.Limits = l }
}

func newSQLiteStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newServer wires the router the way the application does, with rate limits
// relaxed and the fallback accounts hashed at the minimum cost.
func newServer(t *testing.T, st store.Store, opts ...serverOption) *server {
	t.Helper()

	keys, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer})
	require.NoError(t, err)

	adminHash, err := cryptox.HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	fallback, err := directory.NewFallbackTier([]directory.FallbackAccount{
		{ID: "1", Name: "Admin User", Email: "admin@balco.com", PasswordHash: adminHash, Role: "admin", Department: "Yönetim"},
	})
	require.NoError(t, err)

	memory := directory.NewMemoryTier()
	persistent := directory.NewPersistentTier(st.Users(), time.Second)

	r := httpapi.NewRouter(keys.KeySet, "test", st, slogx.Discard())
	r.Limits = httpapi.Limits{Strict: relaxed, Moderate: relaxed, Lenient: relaxed}
	r.FallbackAccounts = fallback.Len()
	r.Authenticator = service.NewAuthenticator(memory, persistent, fallback)
	r.Sessions = service.NewSessionService(keys, testIssuer, time.Hour)
	r.Registration = service.NewRegistrationService(persistent, memory, bcrypt.MinCost)
	r.Catalog = &service.CatalogService{Store: st}
	r.Production = &service.ProductionService{Store: st}
	for _, opt := range opts {
		opt(r)
	}
	r.ApplyRoutes()

	return &server{router: r, keys: keys, memory: memory}
}

func newOfflineServer(t *testing.T) *server {
	t.Helper()
	return newServer(t, offline.NewStore())
}

type request struct {
	method string
	path   string
	body   any
	token  string
	cookie *http.Cookie
}

func (s *server) do(t *testing.T, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if req.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(req.body))
	}

	r := httptest.NewRequestWithContext(context.Background(), req.method, req.path, &body)
	if req.body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		r.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.cookie != nil {
		r.AddCookie(req.cookie)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "body: %s", rec.Body.String())
	return out
}

func (s *server) register(t *testing.T, name, email, password, role string) trackersdk.User {
	t.Helper()
	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/users",
		body:   trackersdk.RegisterRequest{Name: name, Email: email, Password: password, Role: role},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[trackersdk.RegisterResponse](t, rec).User
}

func (s *server) login(t *testing.T, email, password string) trackersdk.LoginResponse {
	t.Helper()
	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/session",
		body:   trackersdk.LoginRequest{Email: email, Password: password},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[trackersdk.LoginResponse](t, rec)
}

// adminToken registers an admin account and signs it in.
func (s *server) adminToken(t *testing.T) string {
	t.Helper()
	s.register(t, "Ayşe Yılmaz", "ayse@balco.com", "s3cret-pass", "admin")
	return s.login(t, "ayse@balco.com", "s3cret-pass").Token
}

func (s *server) userToken(t *testing.T) string {
	t.Helper()
	s.register(t, "Mehmet Kaya", "mehmet@balco.com", "op-pass-1", "operator")
	return s.login(t, "mehmet@balco.com", "op-pass-1").Token
}
