package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bookshelf/pkg/jwtx"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

const (
	// TokenCookie carries the session token set on register and login.
	TokenCookie = "token"
	// TokenHeader is the alternative carrier for non-browser clients.
	TokenHeader = "x-auth-token"
)

const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Invalid token"
	MsgServerError  = "Internal server error"
)

// ErrUnknownSubject is returned by an IdentityLookup when the token subject
// no longer exists.
var ErrUnknownSubject = errors.New("httpx: unknown subject")

// IdentityLookup loads the current identity for a verified token subject.
type IdentityLookup func(ctx context.Context, subjectID string) (Identity, error)

// Rejection reasons passed to the reject hook.
const (
	RejectMissing    = "missing"
	RejectInvalid    = "invalid"
	RejectUnknown    = "unknown_subject"
	RejectStoreError = "store_error"
)

type authnOptions struct {
	onReject func(reason string)
}

type AuthnOption func(*authnOptions)

// WithRejectHook calls fn with the reason every time a request is turned
// away. Used for metrics.
func WithRejectHook(fn func(reason string)) AuthnOption {
	return func(o *authnOptions) { o.onReject = fn }
}

// ExtractToken returns the session token from the cookie or, failing that,
// the x-auth-token header.
func ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Header.Get(TokenHeader))
}

// Authenticate verifies the request token and resolves its subject through
// lookup. Deleted subjects are rejected even while their token is unexpired.
func Authenticate(v jwtx.Verifier, lookup IdentityLookup, opts ...AuthnOption) Middleware {
	o := authnOptions{onReject: func(string) {}}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := ExtractToken(r)
			if raw == "" {
				o.onReject(RejectMissing)
				WriteFailure(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				o.onReject(RejectInvalid)
				log.Warn("token verification failed", "err", err)
				WriteFailure(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			id, err := lookup(ctx, claims.UserID)
			switch {
			case errors.Is(err, ErrUnknownSubject):
				o.onReject(RejectUnknown)
				log.Warn("token subject no longer exists", "subject", claims.UserID)
				WriteFailure(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			case err != nil:
				o.onReject(RejectStoreError)
				log.Error("identity lookup failed", "err", err)
				WriteFailure(w, http.StatusInternalServerError, MsgServerError)
				return
			}

			ctx = WithIdentity(ctx, id)
			ctx = slogx.WithUserID(ctx, id.SubjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
