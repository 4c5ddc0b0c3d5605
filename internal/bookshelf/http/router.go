package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/bookshelf/api/docs" // Swagger docs
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

// Options tune the router. The zero value serves the API with no API key,
// no static files, open CORS and rate limiting switched off.
type Options struct {
	BuildVersion string

	// APIKey gates every route except health, metrics, docs and static
	// files. Empty disables the gate.
	APIKey string

	// StaticDir is served under /public/ when set.
	StaticDir string

	// SecureCookie marks the session cookie Secure.
	SecureCookie bool

	CORS      httpx.CORSConfig
	AuthLimit httpx.RateLimitConfig
	APILimit  httpx.RateLimitConfig

	// Registry receives the HTTP collectors and backs /metrics. Nil means
	// a private registry with the Go and process collectors.
	Registry *prometheus.Registry
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	opts      Options
	startTime time.Time
	logger    *slog.Logger
	metrics   *httpx.Metrics
	registry  *prometheus.Registry

	store         store.Store
	Tokens        *service.TokenService
	AuthService   *service.AuthService
	UserService   *service.UserService
	AuthorService *service.AuthorService
	BookService   *service.BookService
}

func NewRouter(st store.Store, tokens *service.TokenService, logger *slog.Logger, opts Options) *Router {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r := &Router{
		Mux:       http.NewServeMux(),
		opts:      opts,
		startTime: time.Now(),
		logger:    logger,
		metrics:   httpx.NewMetrics("bookshelf", reg),
		registry:  reg,

		store:         st,
		Tokens:        tokens,
		AuthService:   &service.AuthService{Store: st, Tokens: tokens},
		UserService:   &service.UserService{Store: st},
		AuthorService: &service.AuthorService{Store: st},
		BookService:   &service.BookService{Store: st},
	}

	// Metrics sits last so it wraps the mux and sees the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.SecureHeaders(isBrowserAsset),
		httpx.CORS(opts.CORS),
		httpx.RequireAPIKey(opts.APIKey, isKeyExempt),
		r.metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAuth()
	r.registerUsers()
	r.registerAuthors()
	r.registerBooks()

	r.Mux.Handle("GET /api-docs/", httpSwagger.Handler())
	if r.opts.StaticDir != "" {
		r.Mux.Handle("GET /public/", http.StripPrefix("/public/", staticFiles(r.opts.StaticDir)))
	}
	r.Mux.HandleFunc("/", NotFoundHandler)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Bookshelf API
//	@version					1.0.0
//	@description				Book catalog with authors, books and user accounts.
//	@description
//	@description				Tokens are HS256 JWTs issued by /auth/register and /auth/login. Send them in the
//	@description				"token" cookie or the x-auth-token header.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/bookshelf
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-auth-token
//	@description				Session token returned by register or login.
//
//	@securityDefinitions.apikey	APIKey
//	@in							header
//	@name						x-api-key
//	@description				Static client key, required when the server has one configured.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// lookupIdentity resolves a token subject against the current user record,
// so a demoted or deleted user loses access on their next request.
func (r *Router) lookupIdentity(ctx context.Context, subjectID string) (httpx.Identity, error) {
	u, err := r.AuthService.Identify(ctx, subjectID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return httpx.Identity{}, httpx.ErrUnknownSubject
	case err != nil:
		return httpx.Identity{}, err
	}
	return httpx.Identity{SubjectID: u.ID, IsAdmin: u.IsAdmin}, nil
}

func (r *Router) authn() httpx.Middleware {
	return httpx.Authenticate(r.Tokens, r.lookupIdentity, httpx.WithRejectHook(r.metrics.ObserveReject))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", WelcomeHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.opts.BuildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.opts.BuildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler(r.registry))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:  r.AuthService,
		Metrics:      r.metrics,
		SecureCookie: r.opts.SecureCookie,
	}

	// Strict limit keyed by address and email so one client cannot spray
	// guesses at a single account.
	limit := httpx.RateLimitByIPAndJSONField(r.opts.AuthLimit, "email")

	r.Mux.Handle("POST /auth/register", httpx.Chain(http.HandlerFunc(h.HandleRegister), limit))
	r.Mux.Handle("POST /auth/login", httpx.Chain(http.HandlerFunc(h.HandleLogin), limit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}
	authn := r.authn()
	limit := httpx.RateLimitByUser(r.opts.APILimit)

	r.Mux.Handle("GET /users", httpx.Chain(http.HandlerFunc(h.HandleList),
		authn,
		httpx.RequireAdmin(),
		limit,
	))
	r.Mux.Handle("GET /users/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet),
		authn,
		limit,
	))
	r.Mux.Handle("PUT /users/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		authn,
		httpx.RequireOwner("id"),
		limit,
	))
	r.Mux.Handle("DELETE /users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete),
		authn,
		httpx.RequireAdmin(),
		limit,
	))
}

func (r *Router) registerAuthors() {
	h := &AuthorsHandler{AuthorService: r.AuthorService}
	authn := r.authn()
	limit := httpx.RateLimitByUser(r.opts.APILimit)
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, authn, limit)
	}

	r.Mux.Handle("GET /authors", secured(h.HandleList))
	r.Mux.Handle("GET /authors/{id}", secured(h.HandleGet))
	r.Mux.Handle("POST /authors", secured(h.HandleCreate))
	r.Mux.Handle("PUT /authors/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /authors/{id}", secured(h.HandleDelete))
}

func (r *Router) registerBooks() {
	h := &BooksHandler{BookService: r.BookService}
	authn := r.authn()
	limit := httpx.RateLimitByUser(r.opts.APILimit)
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, authn, limit)
	}

	r.Mux.Handle("GET /books", secured(h.HandleList))
	r.Mux.Handle("GET /books/{id}", secured(h.HandleGet))
	r.Mux.Handle("POST /books", secured(h.HandleCreate))
	r.Mux.Handle("PUT /books/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /books/{id}", secured(h.HandleDelete))
}

// isBrowserAsset matches routes that serve HTML or files rather than JSON.
func isBrowserAsset(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api-docs/") || strings.HasPrefix(r.URL.Path, "/public/")
}

// isKeyExempt matches routes reachable without the API key.
func isKeyExempt(r *http.Request) bool {
	switch r.URL.Path {
	case "/livez", "/readyz", "/metrics":
		return true
	}
	return isBrowserAsset(r)
}
