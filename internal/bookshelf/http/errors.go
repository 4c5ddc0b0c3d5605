package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "Email is already registered"
	MsgUsernameTaken      = "Username is already taken"
	MsgProfileConflict    = "Username or email is already in use"
	MsgAuthorHasBooks     = "Author still has books and cannot be deleted"
	MsgInvalidBody        = "Invalid JSON body"

	MsgUserNotFound   = "User not found"
	MsgAuthorNotFound = "Author not found"
	MsgBookNotFound   = "Book not found"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON request body into v. Unknown fields are ignored.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slogx.FromContext(r.Context()).Debug("request body rejected", "err", err)
		httpx.WriteFailure(w, http.StatusBadRequest, MsgInvalidBody)
		return false
	}
	return true
}

// writeError maps a service error onto the response envelope. notFound is
// the message used for service.ErrNotFound on this route.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, shelfsdk.Response[any]{
			Success: false,
			Message: verr.Error(),
			Details: verr.Details(),
		})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteFailure(w, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteFailure(w, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteFailure(w, http.StatusConflict, MsgEmailTaken)
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteFailure(w, http.StatusConflict, MsgUsernameTaken)
	case errors.Is(err, service.ErrProfileConflict):
		httpx.WriteFailure(w, http.StatusConflict, MsgProfileConflict)
	case errors.Is(err, service.ErrAuthorHasBooks):
		httpx.WriteFailure(w, http.StatusConflict, MsgAuthorHasBooks)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteFailure(w, http.StatusInternalServerError, httpx.MsgServerError)
	}
}

func writeData(w http.ResponseWriter, code int, message string, data any) {
	httpx.WriteJSON(w, code, shelfsdk.Response[any]{Success: true, Message: message, Data: data})
}
