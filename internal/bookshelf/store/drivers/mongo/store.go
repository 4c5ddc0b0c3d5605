// Package mongo stores users, authors and books in MongoDB documents.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection   = "users"
	authorsCollection = "authors"
	booksCollection   = "books"
)

// migrationTimeout bounds index creation in ApplyMigrations.
const migrationTimeout = 30 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// NewStore connects to uri and checks the primary is reachable.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Users() store.Users     { return &usersRepo{c: s.db.Collection(usersCollection)} }
func (s *Store) Authors() store.Authors { return &authorsRepo{c: s.db.Collection(authorsCollection)} }
func (s *Store) Books() store.Books     { return &booksRepo{c: s.db.Collection(booksCollection)} }

// ApplyMigrations creates the unique indexes that back the username and
// email invariants, plus the book-by-author lookup index.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
	})
	if err != nil {
		return fmt.Errorf("mongo: users indexes: %w", err)
	}

	_, err = s.db.Collection(booksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("by_author"),
	})
	if err != nil {
		return fmt.Errorf("mongo: books indexes: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Drop removes the whole database. Tests use it to isolate runs.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return errors.Join(store.ErrAlreadyExists, err)
	}
	return err
}

// pageOptions sorts by _id, which is a ULID and so follows creation order.
func pageOptions(offset, limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
}

func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
