package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type authorDoc struct {
	ID          string    `bson:"_id"`
	FirstName   string    `bson:"firstName"`
	LastName    string    `bson:"lastName"`
	Nationality string    `bson:"nationality"`
	Image       string    `bson:"image"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (d authorDoc) domain() domain.Author {
	return domain.Author{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Nationality: d.Nationality,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type authorsRepo struct {
	c *mongo.Collection
}

func (r *authorsRepo) GetAuthorByID(ctx context.Context, id string) (domain.Author, error) {
	var d authorDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return d.domain(), nil
}

func (r *authorsRepo) GetAuthorsByIDs(ctx context.Context, ids []string) (map[string]domain.Author, error) {
	out := make(map[string]domain.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var docs []authorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID] = d.domain()
	}
	return out, nil
}

func (r *authorsRepo) ListAuthors(ctx context.Context, offset, limit int) ([]domain.Author, error) {
	cur, err := r.c.Find(ctx, bson.M{}, pageOptions(offset, limit))
	if err != nil {
		return nil, err
	}
	var docs []authorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Author, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *authorsRepo) CreateAuthor(ctx context.Context, a domain.Author) error {
	_, err := r.c.InsertOne(ctx, authorDoc{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Nationality: a.Nationality,
		Image:       a.Image,
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	})
	return mapDuplicate(err)
}

func (r *authorsRepo) UpdateAuthor(ctx context.Context, a domain.Author) (domain.Author, error) {
	var d authorDoc
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": a.ID},
		bson.M{"$set": bson.M{
			"firstName":   a.FirstName,
			"lastName":    a.LastName,
			"nationality": a.Nationality,
			"image":       a.Image,
			"updatedAt":   time.Now().UTC(),
		}},
		afterUpdate(),
	).Decode(&d)
	if err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return d.domain(), nil
}

func (r *authorsRepo) DeleteAuthor(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
