package httpx

import "net/http"

const (
	MsgAdminsOnly   = "Access denied. Admins only."
	MsgAccessDenied = "Access denied."
)

// CanAdmin reports whether id may use admin-only routes.
func CanAdmin(id Identity) bool { return id.IsAdmin }

// IsOwner reports whether id is the owner of the resource named by
// resourceID. Ownership is identity equality.
func IsOwner(id Identity, resourceID string) bool {
	return id.SubjectID != "" && id.SubjectID == resourceID
}

// RequireAdmin lets through callers whose stored record is an admin.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok || !CanAdmin(id) {
				WriteFailure(w, http.StatusForbidden, MsgAdminsOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwner lets through callers whose id equals the path value named
// param.
func RequireOwner(param string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok || !IsOwner(id, r.PathValue(param)) {
				WriteFailure(w, http.StatusForbidden, MsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
