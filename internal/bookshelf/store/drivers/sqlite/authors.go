package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
)

const authorColumns = `id, first_name, last_name, nationality, image, created_at, updated_at`

type authorsRepo struct {
	db dbtx
}

func scanAuthor(row rowScanner) (domain.Author, error) {
	var a domain.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Nationality, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *authorsRepo) GetAuthorByID(ctx context.Context, id string) (domain.Author, error) {
	a, err := scanAuthor(r.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = ?`, id))
	if err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return a, nil
}

func (r *authorsRepo) GetAuthorsByIDs(ctx context.Context, ids []string) (map[string]domain.Author, error) {
	out := make(map[string]domain.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

func (r *authorsRepo) ListAuthors(ctx context.Context, offset, limit int) ([]domain.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *authorsRepo) CreateAuthor(ctx context.Context, a domain.Author) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (`+authorColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.FirstName, a.LastName, a.Nationality, a.Image, a.CreatedAt.UTC(), a.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *authorsRepo) UpdateAuthor(ctx context.Context, a domain.Author) (domain.Author, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE authors SET first_name = ?, last_name = ?, nationality = ?, image = ?, updated_at = ? WHERE id = ?`,
		a.FirstName, a.LastName, a.Nationality, a.Image, time.Now().UTC(), a.ID)
	if err := requireOneRow(res, err); err != nil {
		return domain.Author{}, err
	}
	return r.GetAuthorByID(ctx, a.ID)
}

func (r *authorsRepo) DeleteAuthor(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
	return requireOneRow(res, err)
}
