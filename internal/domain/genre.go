package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is a lazily registered distinct genre name, kept in its own
// collection so "list known genres" does not scan every movie.
type Genre struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name" validate:"required,min=1,max=100"`
}

// GenreRepository defines the interface for genre data access
type GenreRepository interface {
	// Register upserts a genre by name. Registering a name twice, even
	// concurrently, leaves a single record.
	Register(ctx context.Context, name string) error

	// List retrieves all known genres
	List(ctx context.Context) ([]*Genre, error)
}
