package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Author      string    `bson:"author"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Cover       string    `bson:"cover"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (d bookDoc) domain() domain.Book {
	return domain.Book{
		ID:          d.ID,
		Title:       d.Title,
		AuthorID:    d.Author,
		Description: d.Description,
		Price:       d.Price,
		Cover:       domain.Cover(d.Cover),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type booksRepo struct {
	c *mongo.Collection
}

func (r *booksRepo) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	var d bookDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	return d.domain(), nil
}

func (r *booksRepo) ListBooks(ctx context.Context, offset, limit int) ([]domain.Book, error) {
	cur, err := r.c.Find(ctx, bson.M{}, pageOptions(offset, limit))
	if err != nil {
		return nil, err
	}
	var docs []bookDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Book, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) error {
	_, err := r.c.InsertOne(ctx, bookDoc{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.AuthorID,
		Description: b.Description,
		Price:       b.Price,
		Cover:       string(b.Cover),
		CreatedAt:   b.CreatedAt.UTC(),
		UpdatedAt:   b.UpdatedAt.UTC(),
	})
	return mapDuplicate(err)
}

func (r *booksRepo) UpdateBook(ctx context.Context, b domain.Book) (domain.Book, error) {
	var d bookDoc
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": b.ID},
		bson.M{"$set": bson.M{
			"title":       b.Title,
			"author":      b.AuthorID,
			"description": b.Description,
			"price":       b.Price,
			"cover":       string(b.Cover),
			"updatedAt":   time.Now().UTC(),
		}},
		afterUpdate(),
	).Decode(&d)
	if err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	return d.domain(), nil
}

func (r *booksRepo) DeleteBook(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *booksRepo) CountBooksByAuthor(ctx context.Context, authorID string) (int, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{"author": authorID})
	return int(n), err
}
