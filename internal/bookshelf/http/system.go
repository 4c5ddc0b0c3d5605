package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

const MsgWelcome = "Welcome to the API!"

// WelcomeHandler godoc
//
//	@Summary		Welcome
//	@Description	Public root route. Only the API key is checked.
//	@Tags			Main
//	@Produce		json
//	@Success		200	{object}	shelfsdk.Response[any]	"Welcome to the API!"
//	@Failure		403	{object}	shelfsdk.Response[any]	"Forbidden - Invalid API Key"
//	@Security		APIKey
//	@Router			/ [get]
func WelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, shelfsdk.Response[any]{Success: true, Message: MsgWelcome})
	}
}

// NotFoundHandler answers every unmatched route with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteFailure(w, http.StatusNotFound, "not found - "+r.URL.RequestURI())
}

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shelfsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get]
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, shelfsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	200 when the store answers a ping, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shelfsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	shelfsdk.HealthResponse	"store unreachable"
//	@Router			/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &shelfsdk.HealthChecks{Database: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, shelfsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// staticFiles serves dir without directory listings.
func staticFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			NotFoundHandler(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
