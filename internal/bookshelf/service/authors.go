package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/idx"
)

type AuthorService struct {
	Store store.Store
}

func (s *AuthorService) ListAuthors(ctx context.Context, page domain.Page) ([]domain.Author, error) {
	list, err := s.Store.Authors().ListAuthors(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return list, nil
}

func (s *AuthorService) GetAuthor(ctx context.Context, id string) (domain.Author, error) {
	a, err := s.Store.Authors().GetAuthorByID(ctx, id)
	if err != nil {
		return domain.Author{}, mapNotFound("get author", err)
	}
	return a, nil
}

func (s *AuthorService) CreateAuthor(ctx context.Context, in AuthorInput) (domain.Author, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return domain.Author{}, err
	}

	now := time.Now().UTC()
	a := domain.Author{
		ID:          idx.New().String(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Nationality: in.Nationality,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Authors().CreateAuthor(ctx, a); err != nil {
		return domain.Author{}, fmt.Errorf("create author: %w", err)
	}
	return a, nil
}

func (s *AuthorService) UpdateAuthor(ctx context.Context, id string, in AuthorInput) (domain.Author, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return domain.Author{}, err
	}

	a, err := s.Store.Authors().UpdateAuthor(ctx, domain.Author{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Nationality: in.Nationality,
		Image:       in.Image,
	})
	if err != nil {
		return domain.Author{}, mapNotFound("update author", err)
	}
	return a, nil
}

// DeleteAuthor refuses while books still reference the author.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := s.Store.Authors().GetAuthorByID(ctx, id); err != nil {
		return mapNotFound("delete author", err)
	}

	n, err := s.Store.Books().CountBooksByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("delete author: count books: %w", err)
	}
	if n > 0 {
		return ErrAuthorHasBooks
	}

	if err := s.Store.Authors().DeleteAuthor(ctx, id); err != nil {
		return mapNotFound("delete author", err)
	}
	return nil
}
