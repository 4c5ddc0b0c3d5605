package http

import (
	"net/http"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList lists every user
//
//	@Summary		List users
//	@Description	Every account, without password hashes. Admins only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	shelfsdk.Response[[]shelfsdk.User]	"users"
//	@Failure		401	{object}	shelfsdk.Response[any]				"missing or invalid token"
//	@Failure		403	{object}	shelfsdk.Response[any]				"Access denied. Admins only."
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/users [get]
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}
	writeData(w, http.StatusOK, "", mapSlice(users, toUser))
}

// HandleGet fetches one user
//
//	@Summary		Get user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string								true	"user id"
//	@Success		200	{object}	shelfsdk.Response[shelfsdk.User]	"user"
//	@Failure		401	{object}	shelfsdk.Response[any]				"missing or invalid token"
//	@Failure		404	{object}	shelfsdk.Response[any]				"User not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/users/{id} [get]
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUserByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}
	writeData(w, http.StatusOK, "", toUser(u))
}

// HandleUpdate changes the caller's own profile
//
//	@Summary		Update own profile
//	@Description	Sets username and email. Only the account owner may call it. A password in the body is refused.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"user id"
//	@Param			body	body		shelfsdk.UpdateUserRequest			true	"profile"
//	@Success		200		{object}	shelfsdk.Response[shelfsdk.User]	"updated user"
//	@Failure		400		{object}	shelfsdk.Response[any]				"validation failed"
//	@Failure		401		{object}	shelfsdk.Response[any]				"missing or invalid token"
//	@Failure		403		{object}	shelfsdk.Response[any]				"Access denied."
//	@Failure		404		{object}	shelfsdk.Response[any]				"User not found"
//	@Failure		409		{object}	shelfsdk.Response[any]				"username or email in use"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/users/{id} [put]
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), r.PathValue("id"), service.ProfileInput{
		Username:    req.Username,
		Email:       req.Email,
		HasPassword: hasValue(req.Password),
	})
	if err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}
	writeData(w, http.StatusOK, "Profile updated successfully", toUser(u))
}

// HandleDelete removes a user
//
//	@Summary		Delete user
//	@Description	Admins only. Outstanding tokens of the user stop working on their next request.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"user id"
//	@Success		200	{object}	shelfsdk.Response[any]	"User deleted successfully"
//	@Failure		401	{object}	shelfsdk.Response[any]	"missing or invalid token"
//	@Failure		403	{object}	shelfsdk.Response[any]	"Access denied. Admins only."
//	@Failure		404	{object}	shelfsdk.Response[any]	"User not found"
//	@Security		TokenAuth
//	@Security		APIKey
//	@Router			/users/{id} [delete]
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}
	writeData(w, http.StatusOK, "User deleted successfully", nil)
}

// hasValue reports whether a raw JSON field was sent with something other
// than null or an empty string.
func hasValue(raw []byte) bool {
	switch string(raw) {
	case "", "null", `""`:
		return false
	}
	return true
}
