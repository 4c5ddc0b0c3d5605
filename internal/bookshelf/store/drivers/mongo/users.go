package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	IsAdmin      bool      `bson:"isAdmin"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (d userDoc) domain() domain.User {
	return domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type usersRepo struct {
	c *mongo.Collection
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var d userDoc
	if err := r.c.FindOne(ctx, filter).Decode(&d); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return d.domain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.PasswordHash == "" {
		return store.ErrInvalidRecord
	}
	_, err := r.c.InsertOne(ctx, toUserDoc(u))
	return mapDuplicate(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id, username, email string) (domain.User, error) {
	var d userDoc
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"username": username, "email": email, "updatedAt": time.Now().UTC()}},
		afterUpdate(),
	).Decode(&d)
	if err != nil {
		return domain.User{}, mapNotFound(mapDuplicate(err))
	}
	return d.domain(), nil
}

func (r *usersRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isAdmin": isAdmin, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{})
	return int(n), err
}
