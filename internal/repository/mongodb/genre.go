package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenbase/movie_catalog/internal/domain"
)

// GenreRepository implements domain.GenreRepository for MongoDB
type GenreRepository struct {
	coll *mongo.Collection
}

// NewGenreRepository creates a new MongoDB genre repository
func NewGenreRepository(db *mongo.Database, collection string) *GenreRepository {
	return &GenreRepository{coll: db.Collection(collection)}
}

// EnsureIndexes creates the unique index that keeps genre names distinct
func (r *GenreRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create genre name index: %w", err)
	}
	return nil
}

// Register upserts a genre by name. Concurrent registrations of the
// same name resolve to a single record thanks to the upsert and the
// unique name index.
func (r *GenreRepository) Register(ctx context.Context, name string) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		options.Update().SetUpsert(true),
	)
	return err
}

// List retrieves all known genres
func (r *GenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	genres := []*domain.Genre{}
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, err
	}

	return genres, nil
}

// Drop drops the genre collection
func (r *GenreRepository) Drop(ctx context.Context) error {
	return r.coll.Drop(ctx)
}
