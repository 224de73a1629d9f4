package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/screenbase/movie_catalog/internal/domain"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
	"github.com/screenbase/movie_catalog/internal/usecase/catalog"
)

// MockMovieRepository is a mock implementation of domain.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) Find(ctx context.Context, terms domain.SearchTerms) ([]*domain.Movie, error) {
	args := m.Called(ctx, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) Replace(ctx context.Context, id primitive.ObjectID, movie *domain.Movie) error {
	args := m.Called(ctx, id, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockGenreRepository is a mock implementation of domain.GenreRepository
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Register(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

// MockGenreCache is a mock implementation of catalog.GenreCache
type MockGenreCache struct {
	mock.Mock
}

func (m *MockGenreCache) GetGenreList(ctx context.Context) ([]*domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

func (m *MockGenreCache) SetGenreList(ctx context.Context, genres []*domain.Genre) error {
	args := m.Called(ctx, genres)
	return args.Error(0)
}

func (m *MockGenreCache) InvalidateGenreList(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of catalog.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func newTestHandler() (*MovieHandler, *MockMovieRepository, *MockGenreRepository, *MockGenreCache, *MockEventPublisher) {
	movies := new(MockMovieRepository)
	genres := new(MockGenreRepository)
	cache := new(MockGenreCache)
	publisher := new(MockEventPublisher)
	log := logger.New("test")
	service := catalog.NewService(movies, genres, cache, publisher, log)
	return NewMovieHandler(service, log), movies, genres, cache, publisher
}

func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestMovieHandler_Create_Success(t *testing.T) {
	handler, movies, genres, cache, publisher := newTestHandler()

	requestBody := MovieRequest{
		Name:     "TestMovie",
		Synopsis: "TestSynopsis",
		Year:     2022,
		Rating:   4,
		AgeLimit: 12,
		Genres:   []string{"Adventure"},
		Actors: []PersonRequest{
			{FirstName: "Testi", LastName: "Testaaja 1"},
			{FirstName: "Testi", LastName: "Testaaja 2"},
		},
		Director: PersonRequest{FirstName: "Testi", LastName: "Testaaja 3"},
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	genres.On("Register", mock.Anything, "Adventure").Return(nil)
	cache.On("InvalidateGenreList", mock.Anything).Return(nil)
	movies.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Movie) bool {
		return m.Name == "TestMovie" && m.Director.FullName == "Testi Testaaja 3"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, "catalog.movie.created", mock.Anything).Return(nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	movies.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response, "data")
}

func TestMovieHandler_Create_InvalidJSON(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movies.AssertNotCalled(t, "Create")
}

func TestMovieHandler_Create_ValidationError(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	requestBody := MovieRequest{Name: ""} // Invalid: empty name
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movies.AssertNotCalled(t, "Create")
}

func TestMovieHandler_Create_RepositoryError(t *testing.T) {
	handler, movies, genres, cache, _ := newTestHandler()

	requestBody := MovieRequest{Name: "TestMovie", Genres: []string{"Drama"}, Director: PersonRequest{FirstName: "Testi"}}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	genres.On("Register", mock.Anything, "Drama").Return(nil)
	cache.On("InvalidateGenreList", mock.Anything).Return(nil)
	movies.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("database error"))

	handler.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Internal server error", response["error"], "store failures must stay opaque")
}

func TestMovieHandler_GetByID_Success(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	movieID := primitive.NewObjectID()
	expected := &domain.Movie{ID: movieID, Name: "Alien"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/"+movieID.Hex(), nil)
	req = withIDParam(req, movieID.Hex())
	w := httptest.NewRecorder()

	movies.On("GetByID", mock.Anything, movieID).Return(expected, nil)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_GetByID_InvalidID(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/not-an-id", nil)
	req = withIDParam(req, "not-an-id")
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "malformed id is a client error, not a server error")
	movies.AssertNotCalled(t, "GetByID")
}

func TestMovieHandler_GetByID_NotFound(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	movieID := primitive.NewObjectID()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/"+movieID.Hex(), nil)
	req = withIDParam(req, movieID.Hex())
	w := httptest.NewRecorder()

	movies.On("GetByID", mock.Anything, movieID).Return(nil, domain.ErrNotFound)

	handler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_List_Success(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	limit := int64(2)
	expected := []*domain.Movie{
		{ID: primitive.NewObjectID(), Name: "Movie 1"},
		{ID: primitive.NewObjectID(), Name: "Movie 2"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies?limit=2", nil)
	w := httptest.NewRecorder()

	movies.On("Find", mock.Anything, domain.SearchTerms{Limit: &limit}).Return(expected, nil)
	movies.On("Count", mock.Anything).Return(10, nil)

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)

	var response map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(10), response["total"])
}

func TestMovieHandler_List_NoPaginationMeansEverything(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	w := httptest.NewRecorder()

	movies.On("Find", mock.Anything, domain.SearchTerms{}).Return([]*domain.Movie{}, nil)
	movies.On("Count", mock.Anything).Return(0, nil)

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_List_NegativeSkip(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies?skip=-1", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movies.AssertNotCalled(t, "Find")
}

func TestMovieHandler_Search_ByFreeText(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	expected := []*domain.Movie{{ID: primitive.NewObjectID(), Name: "TestMovie"}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?freeText=TestMovie", nil)
	w := httptest.NewRecorder()

	movies.On("Find", mock.Anything, mock.MatchedBy(func(terms domain.SearchTerms) bool {
		return terms.FreeText != nil && *terms.FreeText == "TestMovie" && terms.Person == nil
	})).Return(expected, nil)

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_Search_AllTerms(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	url := "/api/v1/movies/search?freeText=alien&person=weaver&genre=Horror&ageLimit=16&year=1979&rating=5&skip=0&nbrOfEntries=10"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	movies.On("Find", mock.Anything, mock.MatchedBy(func(terms domain.SearchTerms) bool {
		return terms.FreeText != nil && terms.Person != nil && terms.Genre != nil &&
			terms.AgeLimit != nil && *terms.AgeLimit == 16 &&
			terms.Year != nil && *terms.Year == 1979 &&
			terms.Rating != nil && *terms.Rating == 5 &&
			terms.Limit != nil && *terms.Limit == 10
	})).Return([]*domain.Movie{}, nil)

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_Search_InvalidYear(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?year=nineteen", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movies.AssertNotCalled(t, "Find")
}

func TestMovieHandler_Update_Success(t *testing.T) {
	handler, movies, genres, cache, publisher := newTestHandler()

	movieID := primitive.NewObjectID()
	requestBody := MovieRequest{Name: "Alien", Genres: []string{"Horror"}, Director: PersonRequest{FirstName: "Ridley", LastName: "Scott"}}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/movies/"+movieID.Hex(), bytes.NewReader(bodyBytes))
	req = withIDParam(req, movieID.Hex())
	w := httptest.NewRecorder()

	genres.On("Register", mock.Anything, "Horror").Return(nil)
	cache.On("InvalidateGenreList", mock.Anything).Return(nil)
	movies.On("Replace", mock.Anything, movieID, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, "catalog.movie.updated", mock.Anything).Return(nil)

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_Update_NotFound(t *testing.T) {
	handler, movies, genres, cache, _ := newTestHandler()

	movieID := primitive.NewObjectID()
	requestBody := MovieRequest{Name: "Alien", Director: PersonRequest{FirstName: "Ridley"}}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/movies/"+movieID.Hex(), bytes.NewReader(bodyBytes))
	req = withIDParam(req, movieID.Hex())
	w := httptest.NewRecorder()

	genres.On("Register", mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.On("InvalidateGenreList", mock.Anything).Return(nil).Maybe()
	movies.On("Replace", mock.Anything, movieID, mock.Anything).Return(domain.ErrNotFound)

	handler.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	handler, movies, _, _, publisher := newTestHandler()

	movieID := primitive.NewObjectID()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/movies/"+movieID.Hex(), nil)
	req = withIDParam(req, movieID.Hex())
	w := httptest.NewRecorder()

	movies.On("Delete", mock.Anything, movieID).Return(nil)
	publisher.On("Publish", mock.Anything, "catalog.movie.deleted", mock.Anything).Return(nil)

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	movies.AssertExpectations(t)
}

func TestMovieHandler_Delete_InvalidID(t *testing.T) {
	handler, movies, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/movies/zzz", nil)
	req = withIDParam(req, "zzz")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movies.AssertNotCalled(t, "Delete")
}
