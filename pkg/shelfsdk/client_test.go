package shelfsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientSendsHeadersAndDecodes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret-key", r.Header.Get("x-api-key"))

		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(Response[User]{Success: true, Token: "tok", Data: User{ID: "u1", Username: "alice"}})
		case "/books":
			require.Equal(t, "tok", r.Header.Get("x-auth-token"))
			require.Equal(t, "2", r.URL.Query().Get("page"))
			_ = json.NewEncoder(w).Encode(Response[[]Book]{Success: true, Data: []Book{{ID: "b1", Author: &AuthorRef{ID: "a1"}}}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(Response[any]{Message: "not found - " + r.URL.Path})
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := NewClient(srv.URL+"/", "secret-key")

	session, err := c.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, "u1", session.User().ID)

	books, err := session.ListBooks(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "a1", books[0].Author.ID)

	_, err = session.GetAuthor(ctx, "missing")
	require.True(t, IsStatus(err, http.StatusNotFound))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "not found - /authors/missing", apiErr.Message)
}

func TestParseErrorResponseDetails(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(http.StatusBadRequest, []byte(`{"success":false,"message":"title is required","details":{"title":"title is required"}}`))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "title is required", apiErr.Details["title"])
	require.Contains(t, apiErr.Error(), "400")

	err = parseErrorResponse(http.StatusBadGateway, []byte("<html>"))
	require.ErrorAs(t, err, &apiErr)
	require.Empty(t, apiErr.Message)
}
