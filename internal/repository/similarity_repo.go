package repository

import (
	"context"
	"fmt"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SimilarityRepository struct {
	col *mongo.Collection
}

func NewSimilarityRepository() *SimilarityRepository {
	return &SimilarityRepository{col: db.DB().Collection("similarities")}
}

// LoadMatrix trae todas las filas ordenadas por pos y arma la matriz.
// Verifica que las filas sean contiguas (0..N-1): una fila faltante
// desalinearía todos los lookups.
func (r *SimilarityRepository) LoadMatrix(ctx context.Context) ([][]float64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pos", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows [][]float64
	for cur.Next(ctx) {
		var doc models.SimilarityRowDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.Pos != len(rows) {
			return nil, fmt.Errorf("similarity row pos=%d fuera de orden, esperaba pos=%d", doc.Pos, len(rows))
		}
		rows = append(rows, doc.Scores)
	}
	return rows, cur.Err()
}

func (r *SimilarityRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// UpsertRow inserta o reemplaza una fila por pos (lo usa el ETL).
func (r *SimilarityRepository) UpsertRow(ctx context.Context, row *models.SimilarityRowDoc) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"pos": row.Pos}, row, opts)
	return err
}
