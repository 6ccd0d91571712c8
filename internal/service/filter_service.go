package service

import (
	"context"
	"strconv"
	"strings"

	"cinerec/internal/catalog"
	"cinerec/internal/models"
)

type FilterService struct {
	cat      *catalog.Catalog
	enricher Enricher
}

func NewFilterService(cat *catalog.Catalog, enricher Enricher) *FilterService {
	return &FilterService{cat: cat, enricher: enricher}
}

// FilterByCriteria escanea el catálogo en orden (posición 0..N-1) y
// devuelve las primeras k películas que cumplan todos los predicados:
//   - genre es substring (case-insensitive) de los géneros
//   - cast es substring (case-insensitive) del cast
//   - el rating parsea como número y es >= minRating
//
// Predicados vacíos matchean todo. Un rating no numérico (el sentinel
// "unknown" del enricher) descarta la película sin abortar el escaneo.
// El escaneo corta apenas se llena la cuota: las entradas posteriores
// del catálogo ni se miran, y la metadata se pide recién al evaluar
// cada candidata (no por adelantado para todo el catálogo).
func (s *FilterService) FilterByCriteria(
	ctx context.Context,
	genre, cast string,
	minRating float64,
	k int,
) []models.MovieCard {
	k = clampK(k)

	if minRating < 0 {
		minRating = 0
	} else if minRating > 10 {
		minRating = 10
	}

	genreLower := strings.ToLower(genre)
	castLower := strings.ToLower(cast)

	matched := make([]models.MovieCard, 0, k)

	for pos := 0; pos < s.cat.Len() && len(matched) < k; pos++ {
		movie := s.cat.At(pos)
		det := s.enricher.FetchDetails(ctx, movie.ID)

		if !strings.Contains(strings.ToLower(det.Genres), genreLower) {
			continue
		}
		if !strings.Contains(strings.ToLower(det.Cast), castLower) {
			continue
		}

		rating, err := strconv.ParseFloat(det.Rating, 64)
		if err != nil {
			// metadata sin rating numérico: soft mismatch
			continue
		}
		if rating < minRating {
			continue
		}

		// el trailer solo hace falta para los matches
		trailer := s.enricher.FetchTrailer(ctx, movie.ID)

		matched = append(matched, models.MovieCard{
			Title:   movie.Title,
			Poster:  det.Poster,
			Genres:  det.Genres,
			Rating:  det.Rating,
			Cast:    det.Cast,
			Trailer: trailer,
		})
	}

	return matched
}
