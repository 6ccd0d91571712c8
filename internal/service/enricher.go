package service

import (
	"context"

	"cinerec/internal/tmdb"
)

// Enricher resuelve los datos de display de una película. Lo implementa
// el cliente TMDB; los tests usan un fake. Por contrato nunca falla:
// las fallas se absorben en el boundary y llegan como valores fallback.
type Enricher interface {
	FetchDetails(ctx context.Context, movieID int) tmdb.Details
	FetchTrailer(ctx context.Context, movieID int) string
}
