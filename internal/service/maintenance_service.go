package service

import (
	"context"

	"cinerec/internal/cache"
	"cinerec/internal/catalog"
	"cinerec/internal/repository"
)

// MaintenanceService expone el estado del catálogo cargado y permite
// vaciar los caches de Redis (TMDB y recomendaciones).
type MaintenanceService struct {
	cat     *catalog.Catalog
	sims    *catalog.Matrix
	movies  *repository.MovieRepository
	simRepo *repository.SimilarityRepository
}

func NewMaintenanceService(
	cat *catalog.Catalog,
	sims *catalog.Matrix,
	movies *repository.MovieRepository,
	simRepo *repository.SimilarityRepository,
) *MaintenanceService {
	return &MaintenanceService{
		cat:     cat,
		sims:    sims,
		movies:  movies,
		simRepo: simRepo,
	}
}

// CatalogSummary compara lo cargado en memoria contra lo persistido en
// Mongo. Si los conteos no calzan, alguien tocó las colecciones después
// del arranque y hace falta reiniciar (el estado en memoria es inmutable
// por diseño del proceso).
type CatalogSummary struct {
	CatalogSize        int   `json:"catalogSize"`
	MatrixSize         int   `json:"matrixSize"`
	MoviesInMongo      int64 `json:"moviesInMongo"`
	SimilarityRowsInDB int64 `json:"similarityRowsInMongo"`
}

func (s *MaintenanceService) GetSummary(ctx context.Context) (*CatalogSummary, error) {
	moviesCount, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	simsCount, err := s.simRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &CatalogSummary{
		CatalogSize:        s.cat.Len(),
		MatrixSize:         s.sims.Size(),
		MoviesInMongo:      moviesCount,
		SimilarityRowsInDB: simsCount,
	}, nil
}

// FlushCacheResult reporta cuántas keys se borraron por prefijo.
type FlushCacheResult struct {
	TMDBKeysDeleted int64 `json:"tmdbKeysDeleted"`
	RecKeysDeleted  int64 `json:"recKeysDeleted"`
}

func (s *MaintenanceService) FlushCaches(ctx context.Context) (*FlushCacheResult, error) {
	tmdbDeleted, err := cache.DeleteByPrefix(ctx, "tmdb:")
	if err != nil {
		return nil, err
	}
	recDeleted, err := cache.DeleteByPrefix(ctx, "rec:")
	if err != nil {
		return nil, err
	}
	return &FlushCacheResult{
		TMDBKeysDeleted: tmdbDeleted,
		RecKeysDeleted:  recDeleted,
	}, nil
}
