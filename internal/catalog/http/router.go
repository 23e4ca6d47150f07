package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/store"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"

	_ "github.com/areyesfig/AppAdminProductos/api/catalog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	secureCookies bool

	store            store.Store
	AuthService      *service.AuthService
	SessionService   *service.SessionService
	TokenService     *service.TokenService
	UserAdminService *service.UserAdminService
	ProductService   *service.ProductService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, secureCookies bool) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		secureCookies: secureCookies,
		store:         st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProducts()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Catalog Admin API
//	@version		0.1.0
//	@description	Product catalog management with credential-based authentication.
//	@description
//	@description	Browser clients authenticate with an HttpOnly session cookie; API clients
//	@description	use a short-lived EdDSA-signed bearer token. Both are minted at login.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return AuthnMiddleware(r.TokenService, r.SessionService)
}

func (r *Router) registerAuth() {
	// POST /register and /login are credential endpoints: strict IP limits.
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		TokenService:   r.TokenService,
		SecureCookies:  r.secureCookies,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	logoutHandler := &LogoutHandler{SessionService: r.SessionService, SecureCookies: r.secureCookies}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	meHandler := &MeHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(meHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	passwordHandler := &PasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("PUT /v1/auth/password",
		httpx.Chain(passwordHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/products", secured(h.HandleList))
	r.Mux.Handle("POST /v1/products", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/products/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /v1/products/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/products/{id}", secured(h.HandleDelete))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserAdminService: r.UserAdminService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			RequireAdmin,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users", secured(h.HandleList))
	r.Mux.Handle("POST /v1/users", secured(h.HandleCreate))
	r.Mux.Handle("PUT /v1/users/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("PUT /v1/users/{id}/active", secured(h.HandleSetActive))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService.Signer))
}
