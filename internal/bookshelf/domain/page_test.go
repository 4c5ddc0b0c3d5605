package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, limit string
		want        domain.Page
		offset      int
	}{
		{"", "", domain.Page{Number: 1, Limit: 2}, 0},
		{"3", "", domain.Page{Number: 3, Limit: 2}, 4},
		{"2", "10", domain.Page{Number: 2, Limit: 10}, 10},
		{"0", "-5", domain.Page{Number: 1, Limit: 2}, 0},
		{"abc", "1e3", domain.Page{Number: 1, Limit: 2}, 0},
		{"1", "5000", domain.Page{Number: 1, Limit: domain.MaxLimit}, 0},
		{"9223372036854775807", "2", domain.Page{Number: domain.MaxPage, Limit: 2}, (domain.MaxPage - 1) * 2},
		{"9223372036854775807", "100", domain.Page{Number: domain.MaxPage, Limit: 100}, (domain.MaxPage - 1) * 100},
	}
	for _, c := range cases {
		got := domain.ParsePage(c.page, c.limit)
		require.Equal(t, c.want, got, "page=%q limit=%q", c.page, c.limit)
		require.Equal(t, c.offset, got.Offset())
		require.GreaterOrEqual(t, got.Offset(), 0)
	}
}

func TestUserPublicDropsHash(t *testing.T) {
	u := domain.User{ID: "1", Username: "alice", PasswordHash: "$2a$10$x"}
	require.Empty(t, u.Public().PasswordHash)
	require.Equal(t, "$2a$10$x", u.PasswordHash)
}

func TestCoverValid(t *testing.T) {
	require.True(t, domain.CoverSoft.Valid())
	require.True(t, domain.CoverHard.Valid())
	require.False(t, domain.Cover("paperback").Valid())
}
