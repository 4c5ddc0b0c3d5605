package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidRecord is a write rejected by a schema rule, such as an
	// empty password hash or a dangling author reference.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Store is the root data access interface implemented by the sqlite and
// mongo drivers. Uniqueness of usernames and emails is enforced here and
// surfaces as ErrAlreadyExists; callers never pre-lock.
type Store interface {
	Users() Users
	Authors() Authors
	Books() Books

	// ApplyMigrations brings the schema (tables or indexes) up to date.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already lowercased email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u. A clashing username or email is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateProfile sets username and email and bumps updated_at.
	UpdateProfile(ctx context.Context, id, username, email string) (domain.User, error)

	// SetAdmin flips the role flag. Only operator tooling calls this.
	SetAdmin(ctx context.Context, id string, isAdmin bool) error

	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
}

type Authors interface {
	GetAuthorByID(ctx context.Context, id string) (domain.Author, error)

	// GetAuthorsByIDs returns the authors that exist among ids, keyed by id.
	GetAuthorsByIDs(ctx context.Context, ids []string) (map[string]domain.Author, error)

	// ListAuthors returns one page in creation order.
	ListAuthors(ctx context.Context, offset, limit int) ([]domain.Author, error)

	CreateAuthor(ctx context.Context, a domain.Author) error

	// UpdateAuthor replaces the mutable fields of a.ID and returns the stored
	// record.
	UpdateAuthor(ctx context.Context, a domain.Author) (domain.Author, error)

	DeleteAuthor(ctx context.Context, id string) error
}

type Books interface {
	GetBookByID(ctx context.Context, id string) (domain.Book, error)

	// ListBooks returns one page in creation order. Author refs are not filled.
	ListBooks(ctx context.Context, offset, limit int) ([]domain.Book, error)

	CreateBook(ctx context.Context, b domain.Book) error
	UpdateBook(ctx context.Context, b domain.Book) (domain.Book, error)
	DeleteBook(ctx context.Context, id string) error

	// CountBooksByAuthor is used to refuse deleting a referenced author.
	CountBooksByAuthor(ctx context.Context, authorID string) (int, error)
}
