package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	auth, st := newTestAuth(t)
	svc := &UserService{Store: st}

	alice := mustRegister(t, auth, "alice", "alice@example.com")
	mustRegister(t, auth, "bob", "bob@example.com")

	t.Run("list hides hashes", func(t *testing.T) {
		users, err := svc.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		for _, u := range users {
			require.Empty(t, u.PasswordHash)
		}
	})

	t.Run("profile update rejects password", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, alice.User.ID, ProfileInput{Username: "alice", Email: "alice@example.com", HasPassword: true})
		require.ErrorIs(t, err, ErrValidation)
		require.EqualError(t, err, MsgPasswordNotUpdatable)
	})

	t.Run("profile update clash", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, alice.User.ID, ProfileInput{Username: "bob", Email: "alice@example.com"})
		require.ErrorIs(t, err, ErrProfileConflict)
	})

	t.Run("profile update", func(t *testing.T) {
		u, err := svc.UpdateProfile(ctx, alice.User.ID, ProfileInput{Username: "alice_b", Email: "Alice.B@example.com"})
		require.NoError(t, err)
		require.Equal(t, "alice_b", u.Username)
		require.Equal(t, "alice.b@example.com", u.Email)
		require.False(t, u.IsAdmin)
	})

	t.Run("promote and demote", func(t *testing.T) {
		u, err := svc.SetAdminByEmail(ctx, "BOB@example.com", true)
		require.NoError(t, err)
		require.True(t, u.IsAdmin)

		stored, err := svc.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, stored.IsAdmin)

		u, err = svc.SetAdminByEmail(ctx, "bob@example.com", false)
		require.NoError(t, err)
		require.False(t, u.IsAdmin)

		_, err = svc.SetAdminByEmail(ctx, "nobody@example.com", true)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, alice.User.ID))
		require.ErrorIs(t, svc.DeleteUser(ctx, alice.User.ID), ErrNotFound)

		_, err := svc.GetUserByID(ctx, alice.User.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
