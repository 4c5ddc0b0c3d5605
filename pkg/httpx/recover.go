package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

// Recover turns a handler panic into a 500 envelope and logs the stack.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slogx.FromContext(r.Context()).Error("panic serving request",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteFailure(w, http.StatusInternalServerError, MsgServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
