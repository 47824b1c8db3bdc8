package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// DiscountService applies percentage discounts across stored recommendations.
// All percent math is multiplicative: new = round(old * (1 - pct/100), 2), so
// repeated discounts compound off the current stored price.
type DiscountService struct {
	store  RecommendationStore
	logger *zap.Logger
}

func NewDiscountService(store RecommendationStore, logger *zap.Logger) *DiscountService {
	return &DiscountService{
		store:  store,
		logger: logger,
	}
}

// ApplyFlatDiscount discounts every accessory recommendation by percent. The
// accessory scope is a fixed business rule, not a caller-supplied filter.
// Records whose prices are both NULL still count as updated: their
// updated_date is refreshed. Zero matches is a success with an empty id list.
func (s *DiscountService) ApplyFlatDiscount(ctx context.Context, percent decimal.Decimal) (*dto.DiscountResponse, error) {
	if !validDiscountPercent(percent) {
		return nil, models.NewValidationError("Discount must be between 0 and 100")
	}

	scope := models.TypeAccessory
	matched, err := s.store.List(ctx, models.RecommendationFilter{RecommendationType: &scope})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := make([]int64, 0, len(matched))
	for _, rec := range matched {
		applyDiscountToPrices(rec, &percent, &percent)
		rec.UpdatedDate = now
		if err := s.store.Update(ctx, rec); err != nil {
			s.logger.Error("Flat discount aborted by storage failure",
				zap.Int64("recommendation_id", rec.ID),
				zap.Int64s("updated_ids", updated),
				zap.Error(err),
			)
			return nil, err
		}
		updated = append(updated, rec.ID)
	}

	s.logger.Info("Flat discount applied",
		zap.String("percent", percent.String()),
		zap.Int("count", len(updated)),
	)
	return &dto.DiscountResponse{
		Message:    fmt.Sprintf("Applied %s%% discount to %d accessory recommendations", percent.String(), len(updated)),
		UpdatedIDs: updated,
	}, nil
}

// ApplyCustomDiscounts applies per-record percent discounts in one batch. The
// whole batch is validated before any record is written; an id that does not
// resolve is reported as not found and does not block the rest of the batch.
func (s *DiscountService) ApplyCustomDiscounts(ctx context.Context, entries map[string]dto.CustomDiscountEntry) (*dto.DiscountResponse, error) {
	batch, err := validateCustomBatch(entries)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := make([]int64, 0, len(batch))
	var notFound []int64
	for _, entry := range batch {
		rec, err := s.store.GetByID(ctx, entry.id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				notFound = append(notFound, entry.id)
				continue
			}
			return nil, err
		}

		applyDiscountToPrices(rec, entry.basePercent, entry.recommendedPercent)
		rec.UpdatedDate = now
		if err := s.store.Update(ctx, rec); err != nil {
			s.logger.Error("Custom discount batch aborted by storage failure",
				zap.Int64("recommendation_id", entry.id),
				zap.Int64s("updated_ids", updated),
				zap.Error(err),
			)
			return nil, err
		}
		updated = append(updated, rec.ID)
	}

	s.logger.Info("Custom discounts applied",
		zap.Int("updated", len(updated)),
		zap.Int("not_found", len(notFound)),
	)
	return &dto.DiscountResponse{
		Message:     fmt.Sprintf("Applied custom discounts to %d recommendations", len(updated)),
		UpdatedIDs:  updated,
		NotFoundIDs: notFound,
	}, nil
}

type customDiscount struct {
	id                 int64
	basePercent        *decimal.Decimal // nil means not supplied
	recommendedPercent *decimal.Decimal
}

// validateCustomBatch parses and validates every entry up front so that a bad
// percentage anywhere aborts the batch before any record is mutated. Entries
// come back sorted by id for deterministic application order.
func validateCustomBatch(entries map[string]dto.CustomDiscountEntry) ([]customDiscount, error) {
	if len(entries) == 0 {
		return nil, models.NewValidationError("Request body must map recommendation_id to discount objects")
	}

	batch := make([]customDiscount, 0, len(entries))
	for key, entry := range entries {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, models.NewValidationError("Invalid recommendation_id: %s", key)
		}

		parsed := customDiscount{id: id}
		if entry.BaseProductPrice != nil {
			pct := decimal.NewFromFloat(*entry.BaseProductPrice)
			if !validDiscountPercent(pct) {
				return nil, models.NewValidationError("Discount for recommendation %d must be between 0 and 100", id)
			}
			parsed.basePercent = &pct
		}
		if entry.RecommendedProductPrice != nil {
			pct := decimal.NewFromFloat(*entry.RecommendedProductPrice)
			if !validDiscountPercent(pct) {
				return nil, models.NewValidationError("Discount for recommendation %d must be between 0 and 100", id)
			}
			parsed.recommendedPercent = &pct
		}
		batch = append(batch, parsed)
	}

	sort.Slice(batch, func(i, j int) bool { return batch[i].id < batch[j].id })
	return batch, nil
}

// validDiscountPercent enforces the (0, 100) exclusive range shared by both
// discount protocols.
func validDiscountPercent(pct decimal.Decimal) bool {
	return pct.IsPositive() && pct.LessThan(decimalHundred)
}

// applyDiscountToPrices reduces each non-NULL price by its percent. A nil
// percent means no discount was supplied for that field. NULL prices stay
// NULL.
func applyDiscountToPrices(rec *models.Recommendation, basePercent, recommendedPercent *decimal.Decimal) {
	if rec.BaseProductPrice != nil && basePercent != nil {
		price := discountedPrice(*rec.BaseProductPrice, *basePercent)
		rec.BaseProductPrice = &price
	}
	if rec.RecommendedProductPrice != nil && recommendedPercent != nil {
		price := discountedPrice(*rec.RecommendedProductPrice, *recommendedPercent)
		rec.RecommendedProductPrice = &price
	}
}

// discountedPrice is round(price * (1 - pct/100), 2). Round is half away from
// zero, which is half-up-to-cent for non-negative prices.
func discountedPrice(price, pct decimal.Decimal) decimal.Decimal {
	multiplier := decimalOne.Sub(pct.Div(decimalHundred))
	return price.Mul(multiplier).Round(2)
}
