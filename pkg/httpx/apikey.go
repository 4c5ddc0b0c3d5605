package httpx

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader carries the static client key.
const APIKeyHeader = "x-api-key"

const MsgInvalidAPIKey = "Forbidden - Invalid API Key"

// RequireAPIKey rejects requests whose x-api-key does not match key. Requests
// for which exempt returns true skip the check. An empty key disables the
// gate.
func RequireAPIKey(key string, exempt func(*http.Request) bool) Middleware {
	want := []byte(key)
	return func(next http.Handler) http.Handler {
		if len(want) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt != nil && exempt(r) {
				next.ServeHTTP(w, r)
				return
			}
			got := []byte(r.Header.Get(APIKeyHeader))
			if len(got) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				WriteFailure(w, http.StatusForbidden, MsgInvalidAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
