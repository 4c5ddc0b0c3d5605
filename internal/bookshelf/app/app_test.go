package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

func newTestApp(t *testing.T) (Config, *shelfsdk.Client) {
	t.Helper()

	cfg, err := LoadConfigFrom(map[string]string{
		"JWT_SECRET":    "end-to-end-secret",
		"API_KEY":       "e2e-key",
		"ENV":           "test",
		"DATABASE_FILE": filepath.Join(t.TempDir(), "bookshelf.db"),
	})
	require.NoError(t, err)

	application, err := New(cfg, WithLogger(slogx.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return cfg, shelfsdk.NewClient(srv.URL, cfg.APIKey)
}

func TestNewRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := New(Config{StoreDriver: DriverSQLite, DatabaseFile: ":memory:", BcryptCost: 10, JWTExpiresIn: 1}, WithLogger(slogx.Discard()))
	require.ErrorIs(t, err, service.ErrMissingSecret)
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg, client := newTestApp(t)

	welcome, err := client.Welcome(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome to the API!", welcome)

	keyless := shelfsdk.NewClient(client.BaseURL, "")
	_, err = keyless.Welcome(ctx)
	require.True(t, shelfsdk.IsStatus(err, http.StatusForbidden))

	_, err = keyless.Livez(ctx)
	require.NoError(t, err)

	// Register A, then log in again.
	registered, err := client.Register(ctx, shelfsdk.RegisterRequest{
		Username: "reader_a",
		Email:    "a@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.False(t, registered.User().IsAdmin)

	a, err := client.Login(ctx, shelfsdk.LoginRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	id := a.User().ID

	// Admin route is forbidden, own profile works.
	_, err = a.ListUsers(ctx)
	require.True(t, shelfsdk.IsStatus(err, http.StatusForbidden))

	u, err := a.UpdateUser(ctx, id, shelfsdk.UpdateUserRequest{Username: "reader_a2", Email: "a@example.com"})
	require.NoError(t, err)
	require.Equal(t, "reader_a2", u.Username)

	// Promote through the operator command; the existing token picks up the role.
	var out bytes.Buffer
	require.NoError(t, Promote(ctx, cfg, "A@example.com", true, &out))
	require.Contains(t, out.String(), "is now admin")

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.True(t, users[0].IsAdmin)

	// Catalog round trip.
	author, err := a.CreateAuthor(ctx, shelfsdk.AuthorRequest{FirstName: "Ted", LastName: "Chiang", Nationality: "American"})
	require.NoError(t, err)

	book, err := a.CreateBook(ctx, shelfsdk.BookRequest{
		Title:       "Exhalation",
		Author:      author.ID,
		Description: "Short stories about time, free will and machines.",
		Price:       18.99,
		Cover:       "hard cover",
	})
	require.NoError(t, err)
	require.Equal(t, "Chiang", book.Author.LastName)

	err = a.DeleteAuthor(ctx, author.ID)
	require.True(t, shelfsdk.IsStatus(err, http.StatusConflict))

	require.NoError(t, Promote(ctx, cfg, "a@example.com", false, &out))
	_, err = a.ListUsers(ctx)
	require.True(t, shelfsdk.IsStatus(err, http.StatusForbidden))

	err = Promote(ctx, cfg, "nobody@example.com", true, &out)
	require.Error(t, err)
}
