package shelfsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Session carries a token and sends it as x-auth-token.
type Session struct {
	client *Client
	token  string
	user   User
}

func (s *Session) Token() string { return s.token }

// User is the account returned at register or login. It is empty for
// sessions built with NewSession.
func (s *Session) User() User { return s.user }

func (s *Session) call(ctx context.Context, method, path string, in, out any, expected int) error {
	return s.client.do(ctx, method, path, s.token, in, out, expected)
}

func pagePath(base string, page, limit int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func idPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

// ============================================================================
// Users
// ============================================================================

// ListUsers needs an admin session.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var resp Response[[]User]
	if err := s.call(ctx, http.MethodGet, "/users", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	var resp Response[User]
	if err := s.call(ctx, http.MethodGet, idPath("/users", id), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateUser only succeeds for the session's own account.
func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var resp Response[User]
	if err := s.call(ctx, http.MethodPut, idPath("/users", id), req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteUser needs an admin session.
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, idPath("/users", id), nil, nil, http.StatusOK)
}

// ============================================================================
// Authors
// ============================================================================

// ListAuthors pages through authors. Zero page or limit uses the server
// default.
func (s *Session) ListAuthors(ctx context.Context, page, limit int) ([]Author, error) {
	var resp Response[[]Author]
	if err := s.call(ctx, http.MethodGet, pagePath("/authors", page, limit), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *Session) GetAuthor(ctx context.Context, id string) (*Author, error) {
	var resp Response[Author]
	if err := s.call(ctx, http.MethodGet, idPath("/authors", id), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) CreateAuthor(ctx context.Context, req AuthorRequest) (*Author, error) {
	var resp Response[Author]
	if err := s.call(ctx, http.MethodPost, "/authors", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) UpdateAuthor(ctx context.Context, id string, req AuthorRequest) (*Author, error) {
	var resp Response[Author]
	if err := s.call(ctx, http.MethodPut, idPath("/authors", id), req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) DeleteAuthor(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, idPath("/authors", id), nil, nil, http.StatusOK)
}

// ============================================================================
// Books
// ============================================================================

func (s *Session) ListBooks(ctx context.Context, page, limit int) ([]Book, error) {
	var resp Response[[]Book]
	if err := s.call(ctx, http.MethodGet, pagePath("/books", page, limit), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *Session) GetBook(ctx context.Context, id string) (*Book, error) {
	var resp Response[Book]
	if err := s.call(ctx, http.MethodGet, idPath("/books", id), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) CreateBook(ctx context.Context, req BookRequest) (*Book, error) {
	var resp Response[Book]
	if err := s.call(ctx, http.MethodPost, "/books", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) UpdateBook(ctx context.Context, id string, req BookRequest) (*Book, error) {
	var resp Response[Book]
	if err := s.call(ctx, http.MethodPut, idPath("/books", id), req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Session) DeleteBook(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, idPath("/books", id), nil, nil, http.StatusOK)
}
