package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/screenbase/movie_catalog/internal/domain"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
	pkgvalidator "github.com/screenbase/movie_catalog/internal/pkg/validator"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// GenreCache defines the interface for the cached genre list
type GenreCache interface {
	GetGenreList(ctx context.Context) ([]*domain.Genre, error)
	SetGenreList(ctx context.Context, genres []*domain.Genre) error
	InvalidateGenreList(ctx context.Context) error
}

// MovieEvent is the envelope published for catalog changes
type MovieEvent struct {
	EventID   uuid.UUID     `json:"event_id"`
	EventType string        `json:"event_type"`
	Timestamp time.Time     `json:"timestamp"`
	MovieID   string        `json:"movie_id"`
	Movie     *domain.Movie `json:"movie,omitempty"`
}

// Service handles movie catalog business logic. Each operation is a
// stateless unit of work against the store; there is no cross-request
// state held here.
type Service struct {
	movies    domain.MovieRepository
	genres    domain.GenreRepository
	cache     GenreCache
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewService creates a new catalog service
func NewService(
	movies domain.MovieRepository,
	genres domain.GenreRepository,
	cache GenreCache,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		movies:    movies,
		genres:    genres,
		cache:     cache,
		publisher: publisher,
		validate:  pkgvalidator.Get(),
		logger:    log,
	}
}

// parseID converts a client-supplied identifier into an ObjectID.
// A malformed identifier is a client error, never a store failure.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// List retrieves movies in stable order with optional pagination.
// A nil limit means no cap, a nil skip means no offset.
func (s *Service) List(ctx context.Context, limit, skip *int64) ([]*domain.Movie, int, error) {
	movies, err := s.movies.Find(ctx, domain.SearchTerms{Limit: limit, Skip: skip})
	if err != nil {
		s.logger.Error("Failed to list movies", err)
		return nil, 0, err
	}

	total, err := s.movies.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count movies", err)
		return nil, 0, err
	}

	return movies, total, nil
}

// GetByID retrieves a movie by its identifier
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, oid)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Movie not found: %s", id)
		} else {
			s.logger.Error("Failed to get movie", err)
		}
		return nil, err
	}

	return movie, nil
}

// Search retrieves movies matching the conjunction of all present
// terms. Empty terms match everything; no match is an empty result,
// not an error.
func (s *Service) Search(ctx context.Context, terms domain.SearchTerms) ([]*domain.Movie, error) {
	movies, err := s.movies.Find(ctx, terms)
	if err != nil {
		s.logger.Error("Failed to search movies", err)
		return nil, err
	}

	return movies, nil
}

// Create normalizes and stores a new movie, registering any genre
// names not seen before. The genre writes and the movie insert are not
// transactional: a failed insert can leave freshly registered genres
// behind, which is harmless since genres are only ever a name set.
func (s *Service) Create(ctx context.Context, movie *domain.Movie) error {
	if err := s.validate.Struct(movie); err != nil {
		s.logger.Error("Movie validation failed", err)
		return domain.ErrInvalidInput
	}

	movie.Normalize()

	if err := s.registerGenres(ctx, movie.Genres); err != nil {
		s.logger.Error("Failed to register genres", err)
		return err
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		s.logger.Error("Failed to create movie", err)
		return err
	}

	s.publishEvent(ctx, "catalog.movie.created", movie.ID.Hex(), movie)

	s.logger.WithFields(map[string]interface{}{
		"movie_id": movie.ID.Hex(),
		"name":     movie.Name,
	}).Info("Movie created successfully")

	return nil
}

// Replace fully replaces the movie with the given identifier,
// applying the same normalization as Create.
func (s *Service) Replace(ctx context.Context, id string, movie *domain.Movie) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.validate.Struct(movie); err != nil {
		s.logger.Error("Movie validation failed", err)
		return domain.ErrInvalidInput
	}

	movie.Normalize()

	if err := s.registerGenres(ctx, movie.Genres); err != nil {
		s.logger.Error("Failed to register genres", err)
		return err
	}

	if err := s.movies.Replace(ctx, oid, movie); err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Movie not found: %s", id)
		} else {
			s.logger.Error("Failed to replace movie", err)
		}
		return err
	}

	s.publishEvent(ctx, "catalog.movie.updated", id, movie)

	s.logger.WithFields(map[string]interface{}{
		"movie_id": id,
		"name":     movie.Name,
	}).Info("Movie replaced successfully")

	return nil
}

// Remove deletes a movie by identifier. Removing an identifier that
// does not exist is a no-op, so the operation is idempotent.
func (s *Service) Remove(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, oid); err != nil {
		s.logger.Error("Failed to delete movie", err)
		return err
	}

	s.publishEvent(ctx, "catalog.movie.deleted", id, nil)

	s.logger.WithFields(map[string]interface{}{
		"movie_id": id,
	}).Info("Movie deleted successfully")

	return nil
}

// ListGenres retrieves the known-genre set, served from cache when
// possible. Cache errors fall through to the store.
func (s *Service) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	genres, err := s.cache.GetGenreList(ctx)
	if err == nil {
		s.logger.Debug("Cache hit for genre list")
		return genres, nil
	}
	if err != domain.ErrNotFound {
		s.logger.Warnf("Failed to read genre list from cache: %v", err)
	}

	genres, err = s.genres.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list genres", err)
		return nil, err
	}

	if err := s.cache.SetGenreList(ctx, genres); err != nil {
		s.logger.Warnf("Failed to cache genre list: %v", err)
	}

	return genres, nil
}

// registerGenres upserts every distinct non-empty genre name and
// invalidates the cached list when anything was registered.
func (s *Service) registerGenres(ctx context.Context, names []string) error {
	seen := make(map[string]struct{}, len(names))
	registered := false

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if err := s.genres.Register(ctx, name); err != nil {
			return err
		}
		registered = true
	}

	if registered {
		if err := s.cache.InvalidateGenreList(ctx); err != nil {
			s.logger.Warnf("Failed to invalidate genre list cache: %v", err)
		}
	}

	return nil
}

// publishEvent publishes a catalog event. Publishing failures are
// logged and never fail the request.
func (s *Service) publishEvent(ctx context.Context, eventType, movieID string, movie *domain.Movie) {
	event := MovieEvent{
		EventID:   uuid.New(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		MovieID:   movieID,
		Movie:     movie,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal %s event", eventType)
		return
	}

	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Errorf(err, "Failed to publish %s event", eventType)
	}
}
