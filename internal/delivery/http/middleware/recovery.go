package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/screenbase/movie_catalog/internal/delivery/http/response"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
)

// Recovery returns a middleware that recovers from panics in handlers
// and turns them into an opaque 500 response
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"panic":  rec,
						"method": r.Method,
						"path":   r.URL.Path,
						"stack":  string(debug.Stack()),
					}).Warn("Panic recovered")

					response.Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
