package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinerec/internal/catalog"
	"cinerec/internal/models"
	"cinerec/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnricher devuelve metadata fija por movieId y cuenta llamadas.
type fakeEnricher struct {
	details      map[int]tmdb.Details
	trailers     map[int]string
	detailCalls  []int
	trailerCalls []int
}

func (f *fakeEnricher) FetchDetails(_ context.Context, movieID int) tmdb.Details {
	f.detailCalls = append(f.detailCalls, movieID)
	if d, ok := f.details[movieID]; ok {
		return d
	}
	return tmdb.Details{
		Poster: "poster", Genres: tmdb.Unknown, Rating: tmdb.Unknown, Cast: tmdb.Unknown,
	}
}

func (f *fakeEnricher) FetchTrailer(_ context.Context, movieID int) string {
	f.trailerCalls = append(f.trailerCalls, movieID)
	if t, ok := f.trailers[movieID]; ok {
		return t
	}
	return "https://youtube.com"
}

func newTestRecommender(t *testing.T, rows [][]float64, docs []models.MovieDoc, enr Enricher) *RecommendService {
	t.Helper()
	cat := catalog.NewCatalog(docs)
	m, err := catalog.NewMatrix(rows, cat.Len())
	require.NoError(t, err)
	return NewRecommendService(cat, m, enr, nil)
}

func TestRecommend_ScenarioABC(t *testing.T) {
	// Catálogo = [A(id=1), B(id=2), C(id=3)], fila de A = [1.0, 0.8, 0.3]
	enr := &fakeEnricher{
		details: map[int]tmdb.Details{
			2: {Poster: "pb", Genres: "Drama", Rating: "7.0", Cast: "X"},
			3: {Poster: "pc", Genres: "Comedy", Rating: "6.0", Cast: "Y"},
		},
		trailers: map[int]string{2: "https://www.youtube.com/watch?v=b"},
	}
	svc := newTestRecommender(t, [][]float64{
		{1.0, 0.8, 0.3},
		{0.8, 1.0, 0.5},
		{0.3, 0.5, 1.0},
	}, []models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
	}, enr)

	got, err := svc.Recommend(context.Background(), "A", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, "C", got[1].Title)
	assert.Equal(t, "Drama", got[0].Genres)
	assert.Equal(t, "https://www.youtube.com/watch?v=b", got[0].Trailer)
	assert.Equal(t, "https://youtube.com", got[1].Trailer)
}

func TestRecommend_NeverIncludesSelf(t *testing.T) {
	enr := &fakeEnricher{}
	docs := []models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
		{MovieID: 4, Title: "D"},
	}
	rows := [][]float64{
		{1.0, 0.1, 0.2, 0.3},
		{0.1, 1.0, 0.4, 0.5},
		{0.2, 0.4, 1.0, 0.6},
		{0.3, 0.5, 0.6, 1.0},
	}
	svc := newTestRecommender(t, rows, docs, enr)

	for _, title := range []string{"A", "B", "C", "D"} {
		for k := 1; k <= 3; k++ {
			got, err := svc.Recommend(context.Background(), title, k)
			require.NoError(t, err)
			assert.Len(t, got, k, "recommend(%q, %d)", title, k)
			for _, card := range got {
				assert.NotEqual(t, title, card.Title)
			}
		}
	}
}

func TestRecommend_UnknownTitle(t *testing.T) {
	svc := newTestRecommender(t, [][]float64{{1}}, []models.MovieDoc{{MovieID: 1, Title: "A"}}, &fakeEnricher{})

	_, err := svc.Recommend(context.Background(), "no-existe", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrTitleNotFound))
}

func TestRecommend_DuplicateTitleUsesEarliestRow(t *testing.T) {
	// "B" aparece en pos 1 y pos 3; debe usarse la fila de pos 1.
	enr := &fakeEnricher{}
	rows := [][]float64{
		{1.0, 0.0, 0.0, 0.0},
		{0.0, 1.0, 0.9, 0.1},
		{0.0, 0.9, 1.0, 0.2},
		{0.0, 0.1, 0.2, 1.0},
	}
	docs := []models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
		{MovieID: 4, Title: "B"},
	}
	svc := newTestRecommender(t, rows, docs, enr)

	got, err := svc.Recommend(context.Background(), "B", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Title, "vecino top de la fila 1, no de la 3")
}

func TestRecommend_KClamped(t *testing.T) {
	n := 30
	docs := make([]models.MovieDoc, n)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		docs[i] = models.MovieDoc{MovieID: i + 1, Title: fmt.Sprintf("M%02d", i)}
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = 0.1
		}
		rows[i][i] = 1.0
	}
	svc := newTestRecommender(t, rows, docs, &fakeEnricher{})

	got, err := svc.Recommend(context.Background(), "M00", 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultK)

	got, err = svc.Recommend(context.Background(), "M00", 1000)
	require.NoError(t, err)
	assert.Len(t, got, MaxK)
}

func TestRecommendStream_ProgressPerItem(t *testing.T) {
	enr := &fakeEnricher{}
	svc := newTestRecommender(t, [][]float64{
		{1.0, 0.9, 0.8},
		{0.9, 1.0, 0.7},
		{0.8, 0.7, 1.0},
	}, []models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
	}, enr)

	var seen []string
	got, err := svc.RecommendStream(context.Background(), "A", 2, func(i, total int, card models.MovieCard) {
		assert.Equal(t, 2, total)
		seen = append(seen, card.Title)
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"B", "C"}, seen)
}
