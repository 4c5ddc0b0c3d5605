package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

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

	h := httpx.Chain(okHandler, mark("first"), mark("second"), mark("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRequireAPIKey(t *testing.T) {
	exempt := func(r *http.Request) bool { return r.URL.Path == "/livez" }
	h := httpx.RequireAPIKey("s3cret", exempt)(okHandler)

	for _, tc := range []struct {
		name, path, key string
		code            int
	}{
		{"valid key", "/", "s3cret", http.StatusOK},
		{"wrong key", "/", "nope", http.StatusForbidden},
		{"missing key", "/books", "", http.StatusForbidden},
		{"exempt path", "/livez", "", http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.key != "" {
				req.Header.Set(httpx.APIKeyHeader, tc.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tc.code, rec.Code)
			if tc.code == http.StatusForbidden {
				require.Equal(t, httpx.MsgInvalidAPIKey, decodeEnvelope(t, rec).Message)
			}
		})
	}

	t.Run("empty key disables gate", func(t *testing.T) {
		open := httpx.RequireAPIKey("", nil)(okHandler)
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRecover(t *testing.T) {
	h := httpx.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("database exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "exploded")
	require.Equal(t, httpx.MsgServerError, decodeEnvelope(t, rec).Message)
}

func TestSecureHeaders(t *testing.T) {
	skip := func(r *http.Request) bool { return strings.HasPrefix(r.URL.Path, "/api-docs/") }
	h := httpx.SecureHeaders(skip)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs/index.html", nil))
	require.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestCORS(t *testing.T) {
	h := httpx.CORS(httpx.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}, MaxAge: 600})(okHandler)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/books", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), httpx.TokenHeader)
		require.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/books", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		open := httpx.CORS(httpx.CORSConfig{AllowedOrigins: []string{"*"}})(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.Header.Set("Origin", "https://whoever.example.com")
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := httpx.NewMetrics("test", reg)

	mux := http.NewServeMux()
	mux.Handle("GET /books/{id}", okHandler)
	h := m.Middleware()(mux)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books/1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books/2", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "GET /books/{id}", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404")))

	m.ObserveReject(httpx.RejectMissing)
	m.ObserveCredential("login", "failure")
	require.Equal(t, 1.0, testutil.ToFloat64(m.AuthRejected.WithLabelValues(httpx.RejectMissing)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Credentials.WithLabelValues("login", "failure")))

	rec := httptest.NewRecorder()
	m.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, rec.Body.String(), "test_http_requests_total")
}
