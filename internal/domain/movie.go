package domain

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is an actor or director embedded in a movie document.
// FullName is derived from FirstName/LastName on every write and backs
// case-insensitive person search without per-query concatenation.
type Person struct {
	FirstName string `json:"firstName" bson:"firstname" validate:"max=100"`
	LastName  string `json:"lastName" bson:"lastname"`
	FullName  string `json:"fullName" bson:"fullname"`
}

// Normalize recomputes the derived full name from its parts.
func (p *Person) Normalize() {
	p.FullName = strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Movie represents a catalog entry
type Movie struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required,min=1,max=255"`
	Year     int                `json:"year" bson:"year"`
	Genres   []string           `json:"genres" bson:"genres"`
	AgeLimit int                `json:"ageLimit" bson:"agelimit" validate:"gte=0"`
	Rating   int                `json:"rating" bson:"rating" validate:"gte=0"`
	Actors   []Person           `json:"actors" bson:"actors" validate:"dive"`
	Director Person             `json:"director" bson:"director"`
	Synopsis string             `json:"synopsis" bson:"synopsis"`

	// Aggregate is the concatenation of name, synopsis and all person
	// full names. It is recomputed on every write and is the single
	// field free-text search runs against.
	Aggregate string `json:"aggregate,omitempty" bson:"aggregate"`
}

// Normalize recomputes every derived field: person full names first,
// then the searchable aggregate built from them.
func (m *Movie) Normalize() {
	for i := range m.Actors {
		m.Actors[i].Normalize()
	}
	m.Director.Normalize()

	parts := make([]string, 0, len(m.Actors)+3)
	parts = append(parts, m.Name, m.Synopsis)
	for i := range m.Actors {
		parts = append(parts, m.Actors[i].FullName)
	}
	parts = append(parts, m.Director.FullName)
	m.Aggregate = strings.Join(parts, " ")
}

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	// Create inserts a new movie and fills in its assigned ID
	Create(ctx context.Context, movie *Movie) error

	// GetByID retrieves a movie by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*Movie, error)

	// Find retrieves movies matching terms, with skip/limit applied after filtering
	Find(ctx context.Context, terms SearchTerms) ([]*Movie, error)

	// Replace fully replaces the movie with the given ID
	Replace(ctx context.Context, id primitive.ObjectID, movie *Movie) error

	// Delete removes a movie by ID; deleting a missing ID is a no-op
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the total number of movies
	Count(ctx context.Context) (int, error)
}
