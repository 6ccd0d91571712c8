package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinerec/internal/cache"
	"cinerec/internal/catalog"
	"cinerec/internal/models"
	"cinerec/internal/repository"
)

const (
	DefaultK = 10
	MaxK     = 20 // la UI acota el slider a [1,20]

	recCacheTTLSeconds = 60 * 60
)

type RecommendService struct {
	cat      *catalog.Catalog
	sims     *catalog.Matrix
	enricher Enricher
	recRepo  *repository.RecommendationRepository
}

func NewRecommendService(
	cat *catalog.Catalog,
	sims *catalog.Matrix,
	enricher Enricher,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		cat:      cat,
		sims:     sims,
		enricher: enricher,
		recRepo:  recRepo,
	}
}

func clampK(k int) int {
	if k <= 0 {
		return DefaultK
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

func recCacheKey(title string, k int) string {
	return fmt.Sprintf("rec:title:%s:k:%d", title, k)
}

// Recommend devuelve las k películas más similares al título dado,
// enriquecidas con metadata de TMDB, en orden de score descendente.
// Si el título no existe en el catálogo devuelve catalog.ErrTitleNotFound.
func (s *RecommendService) Recommend(ctx context.Context, title string, k int) ([]models.MovieCard, error) {
	k = clampK(k)

	// 1) Cache Redis
	var cached []models.MovieCard
	if ok, err := cache.GetJSON(ctx, recCacheKey(title, k), &cached); err == nil && ok {
		return cached, nil
	}

	items, err := s.build(ctx, title, k, nil)
	if err != nil {
		return nil, err
	}

	s.saveHistory(ctx, title, k, items)

	if err := cache.SetJSON(ctx, recCacheKey(title, k), items, recCacheTTLSeconds); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// RecommendStream hace lo mismo pero invoca onItem por cada resultado
// enriquecido (para el WebSocket de progreso). No usa el cache de
// respuestas: el punto es ver avanzar el enriquecimiento.
func (s *RecommendService) RecommendStream(
	ctx context.Context,
	title string,
	k int,
	onItem func(index, total int, card models.MovieCard),
) ([]models.MovieCard, error) {
	k = clampK(k)

	items, err := s.build(ctx, title, k, onItem)
	if err != nil {
		return nil, err
	}

	s.saveHistory(ctx, title, k, items)
	return items, nil
}

// build es el núcleo: título -> posición -> ranking de la fila -> top k
// -> enriquecer cada resultado en orden.
func (s *RecommendService) build(
	ctx context.Context,
	title string,
	k int,
	onItem func(index, total int, card models.MovieCard),
) ([]models.MovieCard, error) {
	movie, ok := s.cat.FindByTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrTitleNotFound, title)
	}

	neighbors := s.sims.RankNeighbors(movie.Pos, k)

	items := make([]models.MovieCard, 0, len(neighbors))
	for i, n := range neighbors {
		rec := s.cat.At(n.Pos)
		det := s.enricher.FetchDetails(ctx, rec.ID)
		trailer := s.enricher.FetchTrailer(ctx, rec.ID)

		card := models.MovieCard{
			Title:   rec.Title,
			Poster:  det.Poster,
			Genres:  det.Genres,
			Rating:  det.Rating,
			Cast:    det.Cast,
			Trailer: trailer,
		}
		items = append(items, card)

		if onItem != nil {
			onItem(i, len(neighbors), card)
		}
	}

	return items, nil
}

// saveHistory guarda la recomendación servida en Mongo. Best effort:
// si falla se loguea y la respuesta sale igual.
func (s *RecommendService) saveHistory(ctx context.Context, title string, k int, items []models.MovieCard) {
	if s.recRepo == nil {
		return
	}

	hist := &models.Recommendation{
		Title:     title,
		K:         k,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := s.recRepo.Insert(ctx, hist); err != nil {
		log.Printf("error guardando recomendación en Mongo: %v", err)
	}
}
