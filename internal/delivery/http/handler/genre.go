package handler

import (
	"net/http"

	"github.com/screenbase/movie_catalog/internal/delivery/http/response"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
	"github.com/screenbase/movie_catalog/internal/usecase/catalog"
)

// GenreHandler handles HTTP requests for the known-genre set
type GenreHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewGenreHandler creates a new genre handler
func NewGenreHandler(service *catalog.Service, log *logger.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/v1/genres
// @Summary List known genres
// @Description Get every genre name seen across the catalog
// @Tags Genres
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of genres"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /genres [get]
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		h.logger.Error("Internal error in genre handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, genres)
}
