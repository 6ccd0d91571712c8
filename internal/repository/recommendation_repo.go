package repository

import (
	"context"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecommendationRepository guarda el historial de recomendaciones
// servidas (para revisarlas después desde Mongo, no se lee en runtime).
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{col: db.DB().Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	_, err := r.col.InsertOne(ctx, rec)
	return err
}
