package handler

import (
	"errors"
	"net/http"

	"github.com/screenbase/movie_catalog/internal/delivery/http/request"
	"github.com/screenbase/movie_catalog/internal/delivery/http/response"
	"github.com/screenbase/movie_catalog/internal/domain"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
	"github.com/screenbase/movie_catalog/internal/usecase/catalog"
)

// MovieHandler handles HTTP requests for the movie catalog
type MovieHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(service *catalog.Service, log *logger.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  log,
	}
}

// PersonRequest represents an actor or director in a request body.
// Full names are derived server-side and ignored on input.
type PersonRequest struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName"`
}

// MovieRequest represents the request body for creating or replacing a movie
type MovieRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=255"`
	Year     int             `json:"year"`
	Genres   []string        `json:"genres"`
	AgeLimit int             `json:"ageLimit" validate:"gte=0"`
	Rating   int             `json:"rating" validate:"gte=0"`
	Actors   []PersonRequest `json:"actors"`
	Director PersonRequest   `json:"director"`
	Synopsis string          `json:"synopsis"`
}

func (req *MovieRequest) toDomain() *domain.Movie {
	actors := make([]domain.Person, len(req.Actors))
	for i, a := range req.Actors {
		actors[i] = domain.Person{FirstName: a.FirstName, LastName: a.LastName}
	}

	return &domain.Movie{
		Name:     req.Name,
		Year:     req.Year,
		Genres:   req.Genres,
		AgeLimit: req.AgeLimit,
		Rating:   req.Rating,
		Actors:   actors,
		Director: domain.Person{FirstName: req.Director.FirstName, LastName: req.Director.LastName},
		Synopsis: req.Synopsis,
	}
}

// Create handles POST /api/v1/movies
// @Summary Add a movie to the catalog
// @Description Create a new movie; person full names and the searchable aggregate are derived server-side
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie details"
// @Success 201 {object} map[string]interface{} "Movie created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie := req.toDomain()

	if err := h.service.Create(r.Context(), movie); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, movie)
}

// List handles GET /api/v1/movies
// @Summary List movies
// @Description Get movies in stable order; absent limit means no cap, absent skip means no offset
// @Tags Movies
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of movies to return"
// @Param skip query int false "Number of movies to skip"
// @Success 200 {object} map[string]interface{} "List of movies"
// @Failure 400 {object} map[string]string "Invalid pagination parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := request.GetInt64Query(r, "limit")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	skip, err := request.GetInt64Query(r, "skip")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid skip parameter")
		return
	}

	movies, total, err := h.service.List(r.Context(), limit, skip)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Listed(w, movies, total)
}

// GetByID handles GET /api/v1/movies/:id
// @Summary Get a movie by ID
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID (hex ObjectID)"
// @Success 200 {object} map[string]interface{} "Movie details"
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 404 {object} map[string]string "Movie not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, movie)
}

// Search handles GET /api/v1/movies/search
// @Summary Search movies
// @Description Search by conjunction of the present terms; ageLimit is a ceiling, free text and person matching is case-insensitive
// @Tags Movies
// @Accept json
// @Produce json
// @Param freeText query string false "Case-insensitive substring over name, synopsis and person names"
// @Param person query string false "Case-insensitive substring over actor and director names"
// @Param genre query string false "Exact genre match"
// @Param ageLimit query int false "Highest acceptable age limit"
// @Param year query int false "Exact release year"
// @Param rating query int false "Exact rating"
// @Param skip query int false "Number of matches to skip"
// @Param nbrOfEntries query int false "Maximum number of matches to return"
// @Success 200 {object} map[string]interface{} "Matching movies"
// @Failure 400 {object} map[string]string "Invalid search parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	terms := domain.SearchTerms{
		FreeText: request.GetStringQuery(r, "freeText"),
		Person:   request.GetStringQuery(r, "person"),
		Genre:    request.GetStringQuery(r, "genre"),
	}

	var err error
	if terms.AgeLimit, err = request.GetIntQuery(r, "ageLimit"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ageLimit parameter")
		return
	}
	if terms.Year, err = request.GetIntQuery(r, "year"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid year parameter")
		return
	}
	if terms.Rating, err = request.GetIntQuery(r, "rating"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid rating parameter")
		return
	}
	if terms.Skip, err = request.GetInt64Query(r, "skip"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid skip parameter")
		return
	}
	if terms.Limit, err = request.GetInt64Query(r, "nbrOfEntries"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid nbrOfEntries parameter")
		return
	}

	movies, err := h.service.Search(r.Context(), terms)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, movies)
}

// Update handles PUT /api/v1/movies/:id
// @Summary Replace a movie
// @Description Fully replace the movie with the given ID
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID (hex ObjectID)"
// @Param movie body MovieRequest true "Replacement movie"
// @Success 200 {object} map[string]interface{} "Movie replaced successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Movie not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	var req MovieRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie := req.toDomain()

	if err := h.service.Replace(r.Context(), id, movie); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, movie)
}

// Delete handles DELETE /api/v1/movies/:id
// @Summary Delete a movie
// @Description Delete the movie with the given ID; deleting an unknown ID succeeds
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID (hex ObjectID)"
// @Success 204 "Movie deleted successfully"
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *MovieHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, domain.ErrInvalidID):
		response.Error(w, http.StatusBadRequest, "Invalid movie ID")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in movie handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
