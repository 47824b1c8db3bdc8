package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Valid values for recommendation_type and status. The columns are plain text;
// membership is enforced at the boundary rather than by a database enum.
const (
	TypeCrossSell = "cross-sell"
	TypeUpSell    = "up-sell"
	TypeAccessory = "accessory"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// MaxDescriptionLength matches the VARCHAR(1023) description columns.
const MaxDescriptionLength = 1023

var (
	recommendationTypes = map[string]bool{
		TypeCrossSell: true,
		TypeUpSell:    true,
		TypeAccessory: true,
	}
	statuses = map[string]bool{
		StatusActive:   true,
		StatusInactive: true,
	}
)

// Recommendation is a stored association between a base product and a
// recommended product. Prices and descriptions are optional; nil means the
// column is NULL.
type Recommendation struct {
	ID                            int64            `db:"recommendation_id"`
	BaseProductID                 int64            `db:"base_product_id"`
	RecommendedProductID          int64            `db:"recommended_product_id"`
	RecommendationType            string           `db:"recommendation_type"`
	Status                        string           `db:"status"`
	ConfidenceScore               decimal.Decimal  `db:"confidence_score"`
	BaseProductPrice              *decimal.Decimal `db:"base_product_price"`
	RecommendedProductPrice       *decimal.Decimal `db:"recommended_product_price"`
	BaseProductDescription        *string          `db:"base_product_description"`
	RecommendedProductDescription *string          `db:"recommended_product_description"`
	CreatedDate                   time.Time        `db:"created_date"`
	UpdatedDate                   time.Time        `db:"updated_date"`
}

// ValidRecommendationType reports whether s is one of the closed type set.
func ValidRecommendationType(s string) bool {
	return recommendationTypes[s]
}

// ValidStatus reports whether s is one of the closed status set.
func ValidStatus(s string) bool {
	return statuses[s]
}

func recommendationTypeValues() []string {
	return sortedKeys(recommendationTypes)
}

func statusValues() []string {
	return sortedKeys(statuses)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks a fully populated record against the field rules. It is used
// on the create path, after all fields have been assigned.
func (r *Recommendation) Validate() error {
	if r.BaseProductID <= 0 {
		return NewValidationError("base_product_id must be a positive integer")
	}
	if r.RecommendedProductID <= 0 {
		return NewValidationError("recommended_product_id must be a positive integer")
	}
	if !ValidRecommendationType(r.RecommendationType) {
		return NewValidationError("Invalid recommendation_type: %s", r.RecommendationType)
	}
	if !ValidStatus(r.Status) {
		return NewValidationError("Invalid status: %s", r.Status)
	}
	if err := validateConfidence(r.ConfidenceScore); err != nil {
		return err
	}
	if err := validatePrice("base_product_price", r.BaseProductPrice); err != nil {
		return err
	}
	if err := validatePrice("recommended_product_price", r.RecommendedProductPrice); err != nil {
		return err
	}
	if err := validateDescription("base_product_description", r.BaseProductDescription); err != nil {
		return err
	}
	return validateDescription("recommended_product_description", r.RecommendedProductDescription)
}

// ApplyUpdate applies a partial-update payload. Only recommendation_type,
// status and confidence_score are updatable; enum values are case-normalized.
// The caller refreshes UpdatedDate after a successful apply.
func (r *Recommendation) ApplyUpdate(fields map[string]any) error {
	if len(fields) == 0 {
		return NewValidationError("update must include at least one of recommendation_type, status, confidence_score")
	}
	for key, val := range fields {
		switch key {
		case "recommendation_type":
			s, err := normalizeEnum(key, val)
			if err != nil {
				return err
			}
			if !ValidRecommendationType(s) {
				return NewValidationError("recommendation_type must be one of %v", recommendationTypeValues())
			}
			r.RecommendationType = s
		case "status":
			s, err := normalizeEnum(key, val)
			if err != nil {
				return err
			}
			if !ValidStatus(s) {
				return NewValidationError("status must be one of %v", statusValues())
			}
			r.Status = s
		case "confidence_score":
			cs, err := toDecimal(val)
			if err != nil {
				return NewValidationError("confidence_score must be numeric")
			}
			if err := validateConfidence(cs); err != nil {
				return err
			}
			r.ConfidenceScore = cs.Round(2)
		default:
			return NewValidationError("Unknown field: %s", key)
		}
	}
	return nil
}

func validateConfidence(cs decimal.Decimal) error {
	if cs.IsNegative() || cs.GreaterThan(decimal.NewFromInt(1)) {
		return NewValidationError("confidence_score must be in [0, 1]")
	}
	return nil
}

func validatePrice(field string, price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return NewValidationError("%s must not be negative", field)
	}
	return nil
}

func validateDescription(field string, desc *string) error {
	if desc != nil && len(*desc) > MaxDescriptionLength {
		return NewValidationError("%s must be at most %d characters", field, MaxDescriptionLength)
	}
	return nil
}

func normalizeEnum(field string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", NewValidationError("%s must be a string", field)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", NewValidationError("%s is required", field)
	}
	return s, nil
}

func toDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Decimal{}, NewValidationError("value must be numeric")
	}
}
