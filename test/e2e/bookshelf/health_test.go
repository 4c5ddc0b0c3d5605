package bookshelf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := setupContainer(t)

	live, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	msg, err := client.Welcome(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Welcome to the API!", msg)
}
