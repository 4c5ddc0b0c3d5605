package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store/drivers/sqlite"
	"github.com/aussiebroadwan/bookshelf/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newUser(username, email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newAuthor(first string) domain.Author {
	now := time.Now().UTC()
	return domain.Author{
		ID:          idx.New().String(),
		FirstName:   first,
		LastName:    "Tolkien",
		Nationality: "British",
		Image:       domain.DefaultAuthorImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	users := s.Users()

	alice := newUser("alice", "alice@example.com")
	require.NoError(t, users.CreateUser(ctx, alice))

	t.Run("get by id and email", func(t *testing.T) {
		got, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice.Username, got.Username)
		require.Equal(t, alice.PasswordHash, got.PasswordHash)
		require.False(t, got.IsAdmin)
		require.WithinDuration(t, alice.CreatedAt, got.CreatedAt, time.Second)

		got, err = users.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = users.GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := users.CreateUser(ctx, newUser("alice2", "alice@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := users.CreateUser(ctx, newUser("alice", "other@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		n, err := users.CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("empty password hash rejected", func(t *testing.T) {
		u := newUser("nohash", "nohash@example.com")
		u.PasswordHash = ""
		require.ErrorIs(t, users.CreateUser(ctx, u), store.ErrInvalidRecord)
	})

	t.Run("update profile", func(t *testing.T) {
		bob := newUser("bob", "bob@example.com")
		require.NoError(t, users.CreateUser(ctx, bob))

		got, err := users.UpdateProfile(ctx, bob.ID, "bobby", "bobby@example.com")
		require.NoError(t, err)
		require.Equal(t, "bobby", got.Username)
		require.Equal(t, "bobby@example.com", got.Email)

		_, err = users.UpdateProfile(ctx, bob.ID, "alice", "bobby@example.com")
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		_, err = users.UpdateProfile(ctx, "missing", "x", "x@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set admin", func(t *testing.T) {
		require.NoError(t, users.SetAdmin(ctx, alice.ID, true))
		got, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.True(t, got.IsAdmin)

		require.ErrorIs(t, users.SetAdmin(ctx, "missing", true), store.ErrNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, alice.ID, list[0].ID)

		require.NoError(t, users.DeleteUser(ctx, alice.ID))
		require.ErrorIs(t, users.DeleteUser(ctx, alice.ID), store.ErrNotFound)
		_, err = users.GetUserByID(ctx, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAuthorsAndBooks(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var authorIDs []string
	for _, name := range []string{"John", "Ursula", "Terry"} {
		a := newAuthor(name)
		require.NoError(t, s.Authors().CreateAuthor(ctx, a))
		authorIDs = append(authorIDs, a.ID)
	}

	t.Run("paginate authors", func(t *testing.T) {
		page, err := s.Authors().ListAuthors(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, "John", page[0].FirstName)

		page, err = s.Authors().ListAuthors(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, "Terry", page[0].FirstName)

		page, err = s.Authors().ListAuthors(ctx, 10, 2)
		require.NoError(t, err)
		require.Empty(t, page)
	})

	t.Run("authors by ids skips unknown", func(t *testing.T) {
		got, err := s.Authors().GetAuthorsByIDs(ctx, []string{authorIDs[0], "ghost", authorIDs[2]})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Terry", got[authorIDs[2]].FirstName)

		got, err = s.Authors().GetAuthorsByIDs(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("update author", func(t *testing.T) {
		a, err := s.Authors().GetAuthorByID(ctx, authorIDs[1])
		require.NoError(t, err)
		a.LastName = "Le Guin"
		a.Image = "https://img.example.com/ursula.png"

		got, err := s.Authors().UpdateAuthor(ctx, a)
		require.NoError(t, err)
		require.Equal(t, "Le Guin", got.LastName)
		require.Equal(t, a.Image, got.Image)

		a.ID = "missing"
		_, err = s.Authors().UpdateAuthor(ctx, a)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	now := time.Now().UTC()
	book := domain.Book{
		ID:          idx.New().String(),
		Title:       "The Hobbit",
		AuthorID:    authorIDs[0],
		Description: "There and back again.",
		Price:       12.5,
		Cover:       domain.CoverSoft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("book lifecycle", func(t *testing.T) {
		require.NoError(t, s.Books().CreateBook(ctx, book))

		got, err := s.Books().GetBookByID(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, book.Title, got.Title)
		require.Equal(t, domain.CoverSoft, got.Cover)
		require.InDelta(t, 12.5, got.Price, 0.0001)
		require.Nil(t, got.Author)

		n, err := s.Books().CountBooksByAuthor(ctx, authorIDs[0])
		require.NoError(t, err)
		require.Equal(t, 1, n)

		book.Cover = domain.CoverHard
		book.AuthorID = authorIDs[2]
		got, err = s.Books().UpdateBook(ctx, book)
		require.NoError(t, err)
		require.Equal(t, domain.CoverHard, got.Cover)
		require.Equal(t, authorIDs[2], got.AuthorID)

		list, err := s.Books().ListBooks(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, s.Books().DeleteBook(ctx, book.ID))
		require.ErrorIs(t, s.Books().DeleteBook(ctx, book.ID), store.ErrNotFound)
	})

	t.Run("book needs a real author", func(t *testing.T) {
		orphan := book
		orphan.ID = idx.New().String()
		orphan.AuthorID = "ghost"
		require.ErrorIs(t, s.Books().CreateBook(ctx, orphan), store.ErrInvalidRecord)
	})

	t.Run("delete author", func(t *testing.T) {
		require.NoError(t, s.Authors().DeleteAuthor(ctx, authorIDs[1]))
		_, err := s.Authors().GetAuthorByID(ctx, authorIDs[1])
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Authors().DeleteAuthor(ctx, authorIDs[1]), store.ErrNotFound)
	})
}
