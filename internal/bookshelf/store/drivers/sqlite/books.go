package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
)

const bookColumns = `id, title, author_id, description, price, cover, created_at, updated_at`

type booksRepo struct {
	db dbtx
}

func scanBook(row rowScanner) (domain.Book, error) {
	var (
		b     domain.Book
		cover string
	)
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Description, &b.Price, &cover, &b.CreatedAt, &b.UpdatedAt)
	b.Cover = domain.Cover(cover)
	return b, err
}

func (r *booksRepo) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id))
	if err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	return b, nil
}

func (r *booksRepo) ListBooks(ctx context.Context, offset, limit int) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (`+bookColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.AuthorID, b.Description, b.Price, string(b.Cover), b.CreatedAt.UTC(), b.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *booksRepo) UpdateBook(ctx context.Context, b domain.Book) (domain.Book, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author_id = ?, description = ?, price = ?, cover = ?, updated_at = ? WHERE id = ?`,
		b.Title, b.AuthorID, b.Description, b.Price, string(b.Cover), time.Now().UTC(), b.ID)
	if err := requireOneRow(res, err); err != nil {
		return domain.Book{}, err
	}
	return r.GetBookByID(ctx, b.ID)
}

func (r *booksRepo) DeleteBook(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	return requireOneRow(res, err)
}

func (r *booksRepo) CountBooksByAuthor(ctx context.Context, authorID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books WHERE author_id = ?`, authorID).Scan(&n)
	return n, err
}
