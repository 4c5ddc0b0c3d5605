package domain

import "time"

// DefaultAuthorImage is used when an author is created without a picture.
const DefaultAuthorImage = "default.png"

type Author struct {
	ID          string
	FirstName   string
	LastName    string
	Nationality string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthorRef is the slice of an author embedded in book responses.
type AuthorRef struct {
	ID        string
	FirstName string
	LastName  string
}

func (a Author) Ref() AuthorRef {
	return AuthorRef{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}
