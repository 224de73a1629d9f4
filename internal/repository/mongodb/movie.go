package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenbase/movie_catalog/internal/domain"
)

// MovieRepository implements domain.MovieRepository for MongoDB
type MovieRepository struct {
	coll *mongo.Collection
}

// NewMovieRepository creates a new MongoDB movie repository
func NewMovieRepository(db *mongo.Database, collection string) *MovieRepository {
	return &MovieRepository{coll: db.Collection(collection)}
}

// EnsureIndexes creates the text index on aggregate. Free-text search
// filters with a substring regex, which a text index cannot serve; the
// index enables word-level $text queries against the same field.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "aggregate", Value: "text"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create movie text index: %w", err)
	}
	return nil
}

// Create inserts a new movie and fills in its assigned ID
func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	result, err := r.coll.InsertOne(ctx, movie)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = id
	}

	return nil
}

// GetByID retrieves a movie by ID
func (r *MovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// Find retrieves movies matching the search terms. Results are sorted
// by _id so pagination is stable across pages.
func (r *MovieRepository) Find(ctx context.Context, terms domain.SearchTerms) ([]*domain.Movie, error) {
	// Zero skip and limit mean "unset": limit=0 returns everything,
	// matching the driver's treatment of an absent option.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if terms.Skip != nil && *terms.Skip > 0 {
		opts.SetSkip(*terms.Skip)
	}
	if terms.Limit != nil && *terms.Limit > 0 {
		opts.SetLimit(*terms.Limit)
	}

	cursor, err := r.coll.Find(ctx, SearchFilter(terms), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	movies := []*domain.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	return movies, nil
}

// Replace fully replaces the movie with the given ID
func (r *MovieRepository) Replace(ctx context.Context, id primitive.ObjectID, movie *domain.Movie) error {
	movie.ID = id

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, movie)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a movie by ID. Deleting a missing ID is a no-op.
func (r *MovieRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the total number of movies
func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Drop drops the movie collection
func (r *MovieRepository) Drop(ctx context.Context) error {
	return r.coll.Drop(ctx)
}
