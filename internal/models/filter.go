package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RecommendationFilter carries the optional list criteria. All supplied
// criteria are ANDed together; a nil criterion is not applied. MinConfidence is
// an inclusive lower bound, unlike the other exact-match criteria, because
// callers use it to find "confident enough" recommendations.
type RecommendationFilter struct {
	BaseProductID      *int64
	RecommendationType *string
	Status             *string
	MinConfidence      *decimal.Decimal

	// Limit caps the number of returned records; zero means unlimited.
	Limit int
}

// Validate normalizes and checks the criteria before any records are touched.
// Enum criteria are matched case-insensitively, so they are lowered here.
func (f *RecommendationFilter) Validate() error {
	if f.RecommendationType != nil {
		s := strings.ToLower(strings.TrimSpace(*f.RecommendationType))
		if !ValidRecommendationType(s) {
			return NewValidationError("recommendation_type must be one of %v", recommendationTypeValues())
		}
		*f.RecommendationType = s
	}
	if f.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*f.Status))
		if !ValidStatus(s) {
			return NewValidationError("status must be one of %v", statusValues())
		}
		*f.Status = s
	}
	if f.MinConfidence != nil {
		if err := validateConfidence(*f.MinConfidence); err != nil {
			return err
		}
	}
	if f.Limit < 0 {
		return NewValidationError("limit must not be negative")
	}
	return nil
}

// Matches reports whether rec satisfies every supplied criterion. The filter
// must have been validated first.
func (f *RecommendationFilter) Matches(rec *Recommendation) bool {
	if f.BaseProductID != nil && rec.BaseProductID != *f.BaseProductID {
		return false
	}
	if f.RecommendationType != nil && rec.RecommendationType != *f.RecommendationType {
		return false
	}
	if f.Status != nil && rec.Status != *f.Status {
		return false
	}
	if f.MinConfidence != nil && rec.ConfidenceScore.LessThan(*f.MinConfidence) {
		return false
	}
	return true
}
