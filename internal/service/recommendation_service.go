package service

import (
	"context"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecommendationService implements the CRUD and list/filter operations.
type RecommendationService struct {
	store  RecommendationStore
	logger *zap.Logger
}

func NewRecommendationService(store RecommendationStore, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		store:  store,
		logger: logger,
	}
}

// Create validates the payload, assigns timestamps and persists a new record.
// The store assigns the surrogate key.
func (s *RecommendationService) Create(ctx context.Context, req *dto.CreateRecommendationRequest) (*models.Recommendation, error) {
	rec, err := buildRecommendation(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec.CreatedDate = now
	rec.UpdatedDate = now

	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("Recommendation created",
		zap.Int64("recommendation_id", rec.ID),
		zap.Int64("base_product_id", rec.BaseProductID),
		zap.Int64("recommended_product_id", rec.RecommendedProductID),
	)
	return rec, nil
}

func (s *RecommendationService) Get(ctx context.Context, id int64) (*models.Recommendation, error) {
	return s.store.GetByID(ctx, id)
}

// List validates the filter criteria before touching the store, then returns
// the conjunction of all supplied criteria in creation order.
func (s *RecommendationService) List(ctx context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.store.List(ctx, filter)
}

// Update applies a partial-update payload to an existing record and refreshes
// its updated_date.
func (s *RecommendationService) Update(ctx context.Context, id int64, fields map[string]any) (*models.Recommendation, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rec.ApplyUpdate(fields); err != nil {
		return nil, err
	}
	rec.UpdatedDate = time.Now().UTC()

	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("Recommendation updated", zap.Int64("recommendation_id", id))
	return rec, nil
}

// Delete removes a record. Deleting an absent id succeeds; delete is
// idempotent.
func (s *RecommendationService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Recommendation deleted", zap.Int64("recommendation_id", id))
	return nil
}

func buildRecommendation(req *dto.CreateRecommendationRequest) (*models.Recommendation, error) {
	if req.BaseProductID == nil {
		return nil, models.NewValidationError("Invalid Recommendation: missing base_product_id")
	}
	if req.RecommendedProductID == nil {
		return nil, models.NewValidationError("Invalid Recommendation: missing recommended_product_id")
	}
	if req.RecommendationType == nil {
		return nil, models.NewValidationError("Invalid Recommendation: missing recommendation_type")
	}
	if req.ConfidenceScore == nil {
		return nil, models.NewValidationError("Invalid Recommendation: missing confidence_score")
	}

	rec := &models.Recommendation{
		BaseProductID:                 *req.BaseProductID,
		RecommendedProductID:          *req.RecommendedProductID,
		RecommendationType:            *req.RecommendationType,
		Status:                        models.StatusActive,
		ConfidenceScore:               decimal.NewFromFloat(*req.ConfidenceScore),
		BaseProductDescription:        req.BaseProductDescription,
		RecommendedProductDescription: req.RecommendedProductDescription,
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.BaseProductPrice != nil {
		price := decimal.NewFromFloat(*req.BaseProductPrice)
		rec.BaseProductPrice = &price
	}
	if req.RecommendedProductPrice != nil {
		price := decimal.NewFromFloat(*req.RecommendedProductPrice)
		rec.RecommendedProductPrice = &price
	}

	// Validation sees the exact values the caller sent; a value like 1.004
	// must fail the range check, not be rounded into range. Storage precision
	// is applied only after the record passes.
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	rec.ConfidenceScore = rec.ConfidenceScore.Round(2)
	if rec.BaseProductPrice != nil {
		price := rec.BaseProductPrice.Round(2)
		rec.BaseProductPrice = &price
	}
	if rec.RecommendedProductPrice != nil {
		price := rec.RecommendedProductPrice.Round(2)
		rec.RecommendedProductPrice = &price
	}
	return rec, nil
}
