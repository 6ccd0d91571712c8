package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinerec/internal/catalog"
	"cinerec/internal/models"
	"cinerec/internal/report"
	"cinerec/internal/service"
	"cinerec/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEnricher struct {
	details map[int]tmdb.Details
}

func (s *stubEnricher) FetchDetails(_ context.Context, movieID int) tmdb.Details {
	if d, ok := s.details[movieID]; ok {
		return d
	}
	return tmdb.Details{Poster: "p", Genres: tmdb.Unknown, Rating: tmdb.Unknown, Cast: tmdb.Unknown}
}

func (s *stubEnricher) FetchTrailer(_ context.Context, _ int) string {
	return "https://youtube.com"
}

func testRouter(t *testing.T) chi.Router {
	t.Helper()

	cat := catalog.NewCatalog([]models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
	})
	sims, err := catalog.NewMatrix([][]float64{
		{1.0, 0.8, 0.3},
		{0.8, 1.0, 0.5},
		{0.3, 0.5, 1.0},
	}, 3)
	require.NoError(t, err)

	enr := &stubEnricher{details: map[int]tmdb.Details{
		1: {Poster: "p1", Genres: "Action, Drama", Rating: "7.0", Cast: "X"},
		2: {Poster: "p2", Genres: "Comedy", Rating: "6.0", Cast: "Y"},
		3: {Poster: "p3", Genres: "Drama", Rating: "8.0", Cast: "Z"},
	}}

	recSvc := service.NewRecommendService(cat, sims, enr, nil)
	filterSvc := service.NewFilterService(cat, enr)
	pdf := report.NewBuilder()

	recH := NewRecommendHandler(recSvc, pdf)
	filterH := NewFilterHandler(filterSvc, pdf)
	movieH := NewMovieHandler(cat, enr)

	r := chi.NewRouter()
	r.Get("/movies/titles", movieH.Titles)
	r.Get("/movies/filter", filterH.FilterMovies)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/recommendations", recH.GetRecommendations)
	return r
}

func TestGetRecommendations_OK(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?title=A&k=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MovieCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
}

func TestGetRecommendations_UnknownTitleIs404(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?title=Nope&k=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such title")
}

func TestGetRecommendations_MissingTitleIs400(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterMovies_NoMatchesReportsMessage(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/movies/filter?genre=horror&k=5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "cero matches no es un error")

	var resp struct {
		Items   []models.MovieCard `json:"items"`
		Message string             `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, "No movies matched your filters.", resp.Message)
}

func TestFilterMovies_ByGenre(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/movies/filter?genre=drama&k=5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []models.MovieCard `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "A", resp.Items[0].Title)
	assert.Equal(t, "C", resp.Items[1].Title)
}

func TestTitles(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/movies/titles", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var titles []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &titles))
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestGetMovie(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/movies/2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "B", resp["title"])
	assert.Equal(t, "Comedy", resp["genres"])

	req = httptest.NewRequest(http.MethodGet, "/movies/99", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
