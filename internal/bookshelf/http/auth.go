package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/httpx"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

type AuthHandler struct {
	AuthService  *service.AuthService
	Metrics      *httpx.Metrics
	SecureCookie bool
}

// HandleRegister creates an account
//
//	@Summary		Register
//	@Description	Creates a non-admin account, sets the token cookie and returns the user with a token.
//	@Description	An isAdmin field in the body is ignored.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		shelfsdk.RegisterRequest				true	"account details"
//	@Success		201		{object}	shelfsdk.Response[shelfsdk.User]	"user and token"
//	@Failure		400		{object}	shelfsdk.Response[any]				"validation failed"
//	@Failure		409		{object}	shelfsdk.Response[any]				"email or username taken"
//	@Failure		429		{object}	shelfsdk.Response[any]				"rate limited"
//	@Security		APIKey
//	@Router			/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	h.observe("register", err)
	if err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}

	h.setTokenCookie(w, sess.Token)
	httpx.WriteJSON(w, http.StatusCreated, shelfsdk.Response[shelfsdk.User]{
		Success: true,
		Message: "User registered successfully",
		Data:    toUser(sess.User),
		Token:   sess.Token,
	})
}

// HandleLogin exchanges credentials for a token
//
//	@Summary		Login
//	@Description	Checks email and password, sets the token cookie and returns the user with a token.
//	@Description	Unknown email and wrong password get the same answer.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		shelfsdk.LoginRequest				true	"credentials"
//	@Success		200		{object}	shelfsdk.Response[shelfsdk.User]	"user and token"
//	@Failure		400		{object}	shelfsdk.Response[any]				"validation failed"
//	@Failure		401		{object}	shelfsdk.Response[any]				"Invalid email or password"
//	@Failure		429		{object}	shelfsdk.Response[any]				"rate limited"
//	@Security		APIKey
//	@Router			/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req shelfsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	h.observe("login", err)
	if err != nil {
		writeError(w, r, err, MsgUserNotFound)
		return
	}

	h.setTokenCookie(w, sess.Token)
	httpx.WriteJSON(w, http.StatusOK, shelfsdk.Response[shelfsdk.User]{
		Success: true,
		Message: "Login successful",
		Data:    toUser(sess.User),
		Token:   sess.Token,
	})
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.AuthService.Tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) observe(op string, err error) {
	if h.Metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		outcome = "invalid"
	case errors.Is(err, service.ErrInvalidCredentials):
		outcome = "denied"
	case errors.Is(err, service.ErrConflict):
		outcome = "conflict"
	default:
		outcome = "error"
	}
	h.Metrics.ObserveCredential(op, outcome)
}
