package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-entropy"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestAuth(t *testing.T) (*AuthService, *sqlite.Store) {
	t.Helper()

	st := newTestStore(t)
	tokens, err := NewTokenService(testSecret, 0)
	require.NoError(t, err)
	return &AuthService{Store: st, Tokens: tokens}, st
}

func mustRegister(t *testing.T, svc *AuthService, username, email string) Session {
	t.Helper()

	s, err := svc.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return s
}
