package dto

import (
	"time"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
)

type CreateRecommendationRequest struct {
	BaseProductID                 *int64   `json:"base_product_id"`
	RecommendedProductID          *int64   `json:"recommended_product_id"`
	RecommendationType            *string  `json:"recommendation_type"`
	Status                        *string  `json:"status"`
	ConfidenceScore               *float64 `json:"confidence_score"`
	BaseProductPrice              *float64 `json:"base_product_price"`
	RecommendedProductPrice       *float64 `json:"recommended_product_price"`
	BaseProductDescription        *string  `json:"base_product_description"`
	RecommendedProductDescription *string  `json:"recommended_product_description"`
}

type RecommendationResponse struct {
	RecommendationID              int64    `json:"recommendation_id"`
	BaseProductID                 int64    `json:"base_product_id"`
	RecommendedProductID          int64    `json:"recommended_product_id"`
	RecommendationType            string   `json:"recommendation_type"`
	Status                        string   `json:"status"`
	ConfidenceScore               float64  `json:"confidence_score"`
	BaseProductPrice              *float64 `json:"base_product_price"`
	RecommendedProductPrice       *float64 `json:"recommended_product_price"`
	BaseProductDescription        *string  `json:"base_product_description"`
	RecommendedProductDescription *string  `json:"recommended_product_description"`
	CreatedDate                   string   `json:"created_date"`
	UpdatedDate                   string   `json:"updated_date"`
}

func NewRecommendationResponse(rec *models.Recommendation) *RecommendationResponse {
	resp := &RecommendationResponse{
		RecommendationID:              rec.ID,
		BaseProductID:                 rec.BaseProductID,
		RecommendedProductID:          rec.RecommendedProductID,
		RecommendationType:            rec.RecommendationType,
		Status:                        rec.Status,
		ConfidenceScore:               rec.ConfidenceScore.InexactFloat64(),
		BaseProductDescription:        rec.BaseProductDescription,
		RecommendedProductDescription: rec.RecommendedProductDescription,
		CreatedDate:                   rec.CreatedDate.Format(time.RFC3339),
		UpdatedDate:                   rec.UpdatedDate.Format(time.RFC3339),
	}
	if rec.BaseProductPrice != nil {
		price := rec.BaseProductPrice.InexactFloat64()
		resp.BaseProductPrice = &price
	}
	if rec.RecommendedProductPrice != nil {
		price := rec.RecommendedProductPrice.InexactFloat64()
		resp.RecommendedProductPrice = &price
	}
	return resp
}

func NewRecommendationListResponse(recs []*models.Recommendation) []*RecommendationResponse {
	responses := make([]*RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, NewRecommendationResponse(rec))
	}
	return responses
}

// CustomDiscountEntry is one entry of the custom discount batch. Each field is
// a discount percentage applied to that record's current price, not an
// absolute price.
type CustomDiscountEntry struct {
	BaseProductPrice        *float64 `json:"base_product_price"`
	RecommendedProductPrice *float64 `json:"recommended_product_price"`
}

type DiscountResponse struct {
	Message     string  `json:"message"`
	UpdatedIDs  []int64 `json:"updated_ids"`
	NotFoundIDs []int64 `json:"not_found_ids,omitempty"`
}
