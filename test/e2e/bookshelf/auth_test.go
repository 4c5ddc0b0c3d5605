package bookshelf_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

func TestAuthFlow(t *testing.T) {
	client := setupContainer(t)
	ctx := t.Context()

	alice := registerUser(t, client, "alice")
	bob := registerUser(t, client, "bob")

	// Login returns a working token.
	again, err := client.Login(ctx, shelfsdk.LoginRequest{Email: "ALICE@example.com", Password: password})
	require.NoError(t, err)
	require.Equal(t, alice.User().ID, again.User().ID)

	// Wrong password and unknown email look the same.
	_, errWrong := client.Login(ctx, shelfsdk.LoginRequest{Email: "alice@example.com", Password: "password999"})
	_, errUnknown := client.Login(ctx, shelfsdk.LoginRequest{Email: "carol@example.com", Password: password})
	assertStatus(t, errWrong, http.StatusUnauthorized)
	assertStatus(t, errUnknown, http.StatusUnauthorized)
	require.Equal(t, errWrong.Error(), errUnknown.Error())

	// Duplicate email.
	_, err = client.Register(ctx, shelfsdk.RegisterRequest{Username: "alice2", Email: "alice@example.com", Password: password})
	assertStatus(t, err, http.StatusConflict)

	// Missing API key.
	_, err = shelfsdk.NewClient(client.BaseURL, "").Welcome(ctx)
	assertStatus(t, err, http.StatusForbidden)

	// Bad token.
	_, err = client.NewSession("not-a-token").ListAuthors(ctx, 0, 0)
	assertStatus(t, err, http.StatusUnauthorized)

	// Non-admins cannot list or delete users, nor edit someone else.
	_, err = alice.ListUsers(ctx)
	assertStatus(t, err, http.StatusForbidden)
	assertStatus(t, alice.DeleteUser(ctx, bob.User().ID), http.StatusForbidden)
	_, err = alice.UpdateUser(ctx, bob.User().ID, shelfsdk.UpdateUserRequest{Username: "mallory", Email: "bob@example.com"})
	assertStatus(t, err, http.StatusForbidden)

	// Own profile is readable and editable.
	me, err := alice.GetUser(ctx, alice.User().ID)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	me, err = alice.UpdateUser(ctx, alice.User().ID, shelfsdk.UpdateUserRequest{Username: "alice_b", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Equal(t, "alice_b", me.Username)
}
