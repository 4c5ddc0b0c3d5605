package httpx

import "context"

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Identity is the authenticated caller for the lifetime of one request. It
// is built from the stored user record, never from token claims.
type Identity struct {
	SubjectID string
	IsAdmin   bool
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the caller attached by Authenticate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	if !ok || id.SubjectID == "" {
		return Identity{}, false
	}
	return id, true
}
