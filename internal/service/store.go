package service

import (
	"context"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
)

// RecommendationStore is the persistence port the services depend on.
// repository.RecommendationRepository implements it against Postgres;
// repository.MemoryStore substitutes it in tests. GetByID and Update return
// models.ErrNotFound for an absent id; Delete is idempotent.
type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	GetByID(ctx context.Context, id int64) (*models.Recommendation, error)
	List(ctx context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error)
	Update(ctx context.Context, rec *models.Recommendation) error
	Delete(ctx context.Context, id int64) error
}
