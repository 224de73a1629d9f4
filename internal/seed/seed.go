package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/screenbase/movie_catalog/internal/domain"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
)

// Catalog is the subset of the catalog service used during seeding.
// Feeding records through it gives seeded movies the same
// normalization and genre registration as API writes.
type Catalog interface {
	Create(ctx context.Context, movie *domain.Movie) error
}

// Counter reports how many movies the store already holds
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Loader seeds the movie collection from a JSON file
type Loader struct {
	catalog Catalog
	counter Counter
	path    string
	logger  *logger.Logger
}

// NewLoader creates a new seed loader
func NewLoader(catalog Catalog, counter Counter, path string, log *logger.Logger) *Loader {
	return &Loader{
		catalog: catalog,
		counter: counter,
		path:    path,
		logger:  log,
	}
}

// Run seeds the collection when it is empty. Records are inserted
// sequentially and the first failure aborts the run, so a partial seed
// never goes unnoticed. Errors here are meant to be fatal at startup.
func (l *Loader) Run(ctx context.Context) error {
	if l.path == "" {
		l.logger.Debug("No seed data path configured, skipping seeding")
		return nil
	}

	count, err := l.counter.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count movies before seeding: %w", err)
	}
	if count > 0 {
		l.logger.Debugf("Movie collection already holds %d records, skipping seeding", count)
		return nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", l.path, err)
	}

	var movies []*domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", l.path, err)
	}

	for i, movie := range movies {
		if movie == nil {
			return fmt.Errorf("failed to seed movie %d: record is null", i)
		}
		if err := l.catalog.Create(ctx, movie); err != nil {
			return fmt.Errorf("failed to seed movie %d (%s): %w", i, movie.Name, err)
		}
	}

	l.logger.Infof("Seeded %d movies from %s", len(movies), l.path)
	return nil
}
