package domain

import "time"

// Cover is the binding of a book.
type Cover string

const (
	CoverSoft Cover = "soft cover"
	CoverHard Cover = "hard cover"
)

func (c Cover) Valid() bool { return c == CoverSoft || c == CoverHard }

type Book struct {
	ID          string
	Title       string
	AuthorID    string
	Description string
	Price       float64
	Cover       Cover
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Author is filled in by the service when the book is read back. Nil
	// when the referenced author has since disappeared.
	Author *AuthorRef
}
