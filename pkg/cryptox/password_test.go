package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", MaxPasswordBytes)},
		{"unicode password", "пароль123🔒"},
		{"whitespace password", "   spaces 1  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash)

			c, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.GreaterOrEqual(t, c, MinCost)

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword1")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword1")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword("samepassword1", h1))
	require.NoError(t, VerifyPassword("samepassword1", h2))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrTooLong)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password1")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password1", "Correct-Password1", "correct-password1 ", "", "correct-password"} {
		t.Run(wrong, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword(wrong, hash), ErrMismatch)
		})
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$2a$10$short"} {
		t.Run(bad, func(t *testing.T) {
			err := VerifyPassword("whatever1", bad)
			require.ErrorIs(t, err, ErrInvalidHash)
			require.NotErrorIs(t, err, ErrMismatch)
		})
	}
}

func TestCostDefaultsToMin(t *testing.T) {
	require.Equal(t, MinCost, Cost())
}

func TestSetCost(t *testing.T) {
	t.Cleanup(func() { _ = SetCost(MinCost) })

	require.Error(t, SetCost(MinCost-1))
	require.Error(t, SetCost(bcrypt.MaxCost+1))

	require.NoError(t, SetCost(MinCost+1))
	require.Equal(t, MinCost+1, Cost())

	hash, err := HashPassword("costly-password1")
	require.NoError(t, err)
	c, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, MinCost+1, c)
}

func TestBurnVerify(t *testing.T) {
	require.NotPanics(t, func() { BurnVerify("anything1") })
}
