package http

import (
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/pkg/shelfsdk"
)

func toUser(u domain.User) shelfsdk.User {
	return shelfsdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAuthor(a domain.Author) shelfsdk.Author {
	return shelfsdk.Author{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Nationality: a.Nationality,
		Image:       a.Image,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toBook(b domain.Book) shelfsdk.Book {
	out := shelfsdk.Book{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Cover:       string(b.Cover),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Author != nil {
		out.Author = &shelfsdk.AuthorRef{
			ID:        b.Author.ID,
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
		}
	}
	return out
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
