//go:generate swag init -g router.go -d ./,../../../pkg/trackersdk,../../../pkg/jwtx -o ../../../api/tracker --packageName tracker
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/balco/tracker/pkg/slogx"

	_ "github.com/balco/tracker/api/tracker" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultCookieName is the session cookie set on login.
const DefaultCookieName = "tracker_session"

// Limits are the rate limit profiles applied per endpoint class.
type Limits struct {
	Strict   httpx.RateLimitConfig
	Moderate httpx.RateLimitConfig
	Lenient  httpx.RateLimitConfig
}

// DefaultLimits returns the httpx profiles, including env overrides.
func DefaultLimits() Limits {
	return Limits{
		Strict:   httpx.StrictLimit,
		Moderate: httpx.ModerateLimit,
		Lenient:  httpx.LenientLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Limits       Limits
	CookieName   string
	CookieSecure bool

	// FallbackAccounts is the number of configured fallback accounts, reported
	// by /readyz.
	FallbackAccounts int

	Authenticator *service.Authenticator
	Sessions      *service.SessionService
	Registration  *service.RegistrationService
	Catalog       *service.CatalogService
	Production    *service.ProductionService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultLimits(),
		CookieName:   DefaultCookieName,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSession()
	r.registerCatalog()
	r.registerProduction()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Balco Production Tracker API
//	@version		0.1.0
//	@description	Production tracking for the injection moulding floor: accounts and sessions, product type and color catalogs, production records and a dashboard summary.
//	@description
//	@description				Session tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint. They are accepted as a Bearer token or as the tracker_session cookie.
//
//	@contact.name				Balco
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.Sessions.Verifier(), r.CookieName)
}

func (r *Router) registerUsers() {
	h := &RegisterHandler{Registration: r.Registration}

	// POST /users - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(h,
			httpx.RateLimitByIP(r.Limits.Strict),
		),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{
		Authenticator: r.Authenticator,
		Sessions:      r.Sessions,
		CookieName:    r.CookieName,
		CookieSecure:  r.CookieSecure,
	}

	// POST /session - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.Limits.Strict, "email"),
		),
	)

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(r.Limits.Lenient),
		),
	)

	// DELETE /session only clears the cookie, no session required
	r.Mux.Handle("DELETE /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{Catalog: r.Catalog}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RateLimitByUser(r.Limits.Lenient),
		)
	}
	adminWrite := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(r.Limits.Moderate),
		)
	}

	r.Mux.Handle("GET /v1/product-types", read(h.HandleListProductTypes))
	r.Mux.Handle("POST /v1/product-types", adminWrite(h.HandleCreateProductType))
	r.Mux.Handle("GET /v1/colors", read(h.HandleListColors))
	r.Mux.Handle("POST /v1/colors", adminWrite(h.HandleCreateColor))
}

func (r *Router) registerProduction() {
	h := &ProductionHandler{Production: r.Production}

	r.Mux.Handle("POST /v1/production",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(r.Limits.Moderate),
		),
	)
	r.Mux.Handle("GET /v1/production",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(r.Limits.Lenient),
		),
	)
	r.Mux.Handle("GET /v1/production/summary",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			r.authn(),
			httpx.RateLimitByUser(r.Limits.Lenient),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.FallbackAccounts),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
}
