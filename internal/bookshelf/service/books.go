package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/idx"
)

const msgUnknownAuthor = "author does not exist"

type BookService struct {
	Store store.Store
}

// ListBooks returns one page with each book's author filled in.
func (s *BookService) ListBooks(ctx context.Context, page domain.Page) ([]domain.Book, error) {
	books, err := s.Store.Books().ListBooks(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if err := s.populate(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookService) GetBook(ctx context.Context, id string) (domain.Book, error) {
	b, err := s.Store.Books().GetBookByID(ctx, id)
	if err != nil {
		return domain.Book{}, mapNotFound("get book", err)
	}
	return s.withAuthor(ctx, b)
}

func (s *BookService) CreateBook(ctx context.Context, in BookInput) (domain.Book, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return domain.Book{}, err
	}
	if err := s.requireAuthor(ctx, in.AuthorID); err != nil {
		return domain.Book{}, err
	}

	now := time.Now().UTC()
	b := domain.Book{
		ID:          idx.New().String(),
		Title:       in.Title,
		AuthorID:    in.AuthorID,
		Description: in.Description,
		Price:       in.Price,
		Cover:       domain.Cover(in.Cover),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Books().CreateBook(ctx, b); err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			return domain.Book{}, invalid("author", msgUnknownAuthor)
		}
		return domain.Book{}, fmt.Errorf("create book: %w", err)
	}
	return s.withAuthor(ctx, b)
}

func (s *BookService) UpdateBook(ctx context.Context, id string, in BookInput) (domain.Book, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return domain.Book{}, err
	}
	if err := s.requireAuthor(ctx, in.AuthorID); err != nil {
		return domain.Book{}, err
	}

	b, err := s.Store.Books().UpdateBook(ctx, domain.Book{
		ID:          id,
		Title:       in.Title,
		AuthorID:    in.AuthorID,
		Description: in.Description,
		Price:       in.Price,
		Cover:       domain.Cover(in.Cover),
	})
	switch {
	case errors.Is(err, store.ErrInvalidRecord):
		return domain.Book{}, invalid("author", msgUnknownAuthor)
	case err != nil:
		return domain.Book{}, mapNotFound("update book", err)
	}
	return s.withAuthor(ctx, b)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	if err := s.Store.Books().DeleteBook(ctx, id); err != nil {
		return mapNotFound("delete book", err)
	}
	return nil
}

func (s *BookService) requireAuthor(ctx context.Context, authorID string) error {
	_, err := s.Store.Authors().GetAuthorByID(ctx, authorID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return invalid("author", msgUnknownAuthor)
	case err != nil:
		return fmt.Errorf("lookup author: %w", err)
	}
	return nil
}

func (s *BookService) withAuthor(ctx context.Context, b domain.Book) (domain.Book, error) {
	books := []domain.Book{b}
	if err := s.populate(ctx, books); err != nil {
		return domain.Book{}, err
	}
	return books[0], nil
}

// populate fills Author on every book with one batched author lookup.
func (s *BookService) populate(ctx context.Context, books []domain.Book) error {
	if len(books) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(books))
	ids := make([]string, 0, len(books))
	for _, b := range books {
		if _, ok := seen[b.AuthorID]; !ok {
			seen[b.AuthorID] = struct{}{}
			ids = append(ids, b.AuthorID)
		}
	}

	authors, err := s.Store.Authors().GetAuthorsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("populate authors: %w", err)
	}
	for i := range books {
		if a, ok := authors[books[i].AuthorID]; ok {
			ref := a.Ref()
			books[i].Author = &ref
		}
	}
	return nil
}
