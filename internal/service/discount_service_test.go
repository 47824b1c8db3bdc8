package service

import (
	"context"
	"testing"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDiscountService() (*DiscountService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewDiscountService(store, zap.NewNop()), store
}

// storeRecommendation inserts a record directly, bypassing the create
// validation, so tests control prices and types exactly.
func storeRecommendation(t *testing.T, store *repository.MemoryStore, recType string, basePrice, recPrice *decimal.Decimal) *models.Recommendation {
	t.Helper()
	now := time.Now().UTC()
	rec := &models.Recommendation{
		BaseProductID:           101,
		RecommendedProductID:    201,
		RecommendationType:      recType,
		Status:                  models.StatusActive,
		ConfidenceScore:         decimal.RequireFromString("0.80"),
		BaseProductPrice:        basePrice,
		RecommendedProductPrice: recPrice,
		CreatedDate:             now,
		UpdatedDate:             now,
	}
	require.NoError(t, store.Create(context.Background(), rec))
	return rec
}

func requirePrice(t *testing.T, expected string, actual *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, actual)
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

func TestFlatDiscountReducesAccessoryPrices(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	accessory := storeRecommendation(t, store, models.TypeAccessory, decPtr("29.99"), decPtr("4.99"))
	crossSell := storeRecommendation(t, store, models.TypeCrossSell, decPtr("29.99"), decPtr("4.99"))

	result, err := svc.ApplyFlatDiscount(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, []int64{accessory.ID}, result.UpdatedIDs)
	assert.Contains(t, result.Message, "10%")

	got, err := store.GetByID(ctx, accessory.ID)
	require.NoError(t, err)
	requirePrice(t, "26.99", got.BaseProductPrice)
	requirePrice(t, "4.49", got.RecommendedProductPrice)
	assert.True(t, got.UpdatedDate.After(accessory.UpdatedDate) || got.UpdatedDate.Equal(accessory.UpdatedDate))

	// non-accessory records are out of scope
	untouched, err := store.GetByID(ctx, crossSell.ID)
	require.NoError(t, err)
	requirePrice(t, "29.99", untouched.BaseProductPrice)
}

func TestFlatDiscountLeavesNullPricesNull(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeAccessory, nil, decPtr("9.99"))

	result, err := svc.ApplyFlatDiscount(ctx, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, []int64{rec.ID}, result.UpdatedIDs)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BaseProductPrice)
	requirePrice(t, "5.00", got.RecommendedProductPrice)
}

func TestFlatDiscountCountsPricelessRecordsAsUpdated(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeAccessory, nil, nil)
	before := rec.UpdatedDate

	result, err := svc.ApplyFlatDiscount(ctx, decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal(t, []int64{rec.ID}, result.UpdatedIDs)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BaseProductPrice)
	assert.False(t, got.UpdatedDate.Before(before), "updated_date refreshed even without a price change")
}

func TestFlatDiscountZeroMatchesIsSuccess(t *testing.T) {
	svc, store := newDiscountService()
	storeRecommendation(t, store, models.TypeUpSell, decPtr("10.00"), nil)

	result, err := svc.ApplyFlatDiscount(context.Background(), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Empty(t, result.UpdatedIDs)
}

func TestFlatDiscountRejectsOutOfRangePercent(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()
	rec := storeRecommendation(t, store, models.TypeAccessory, decPtr("19.99"), nil)

	for _, pct := range []string{"0", "100", "-5", "150"} {
		_, err := svc.ApplyFlatDiscount(ctx, decimal.RequireFromString(pct))
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, "percent %s", pct)
		assert.Contains(t, verr.Error(), "between 0 and 100")
	}

	// nothing was mutated
	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "19.99", got.BaseProductPrice)
}

func TestFlatDiscountCompoundsAcrossCalls(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()
	rec := storeRecommendation(t, store, models.TypeAccessory, decPtr("19.99"), nil)

	_, err := svc.ApplyFlatDiscount(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "17.99", got.BaseProductPrice)

	// the second application works off the stored price, not the original
	_, err = svc.ApplyFlatDiscount(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	got, err = store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "16.19", got.BaseProductPrice)
}

func TestCustomDiscountsApplyPerRecordPercentages(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	first := storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), decPtr("9.99"))
	second := storeRecommendation(t, store, models.TypeUpSell, decPtr("29.99"), decPtr("4.99"))

	result, err := svc.ApplyCustomDiscounts(ctx, map[string]dto.CustomDiscountEntry{
		"1": {BaseProductPrice: float64Ptr(5), RecommendedProductPrice: float64Ptr(10)},
		"2": {BaseProductPrice: float64Ptr(15), RecommendedProductPrice: float64Ptr(20)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, second.ID}, result.UpdatedIDs)
	assert.Empty(t, result.NotFoundIDs)

	got, err := store.GetByID(ctx, first.ID)
	require.NoError(t, err)
	requirePrice(t, "18.99", got.BaseProductPrice)
	requirePrice(t, "8.99", got.RecommendedProductPrice)

	got, err = store.GetByID(ctx, second.ID)
	require.NoError(t, err)
	requirePrice(t, "25.49", got.BaseProductPrice)
	requirePrice(t, "3.99", got.RecommendedProductPrice)
}

func TestCustomDiscountsSkipUnknownIDs(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), nil)

	result, err := svc.ApplyCustomDiscounts(ctx, map[string]dto.CustomDiscountEntry{
		"1":   {BaseProductPrice: float64Ptr(10)},
		"999": {BaseProductPrice: float64Ptr(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{rec.ID}, result.UpdatedIDs)
	assert.Equal(t, []int64{999}, result.NotFoundIDs)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "17.99", got.BaseProductPrice)
}

func TestCustomDiscountsPartialFieldsAndNullPrices(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), nil)

	result, err := svc.ApplyCustomDiscounts(ctx, map[string]dto.CustomDiscountEntry{
		"1": {RecommendedProductPrice: float64Ptr(50)},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{rec.ID}, result.UpdatedIDs)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "19.99", got.BaseProductPrice)
	assert.Nil(t, got.RecommendedProductPrice, "null price stays null")
}

func TestCustomDiscountsEntryWithoutFieldsLeavesPricesUntouched(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), decPtr("9.99"))

	result, err := svc.ApplyCustomDiscounts(ctx, map[string]dto.CustomDiscountEntry{
		"1": {},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{rec.ID}, result.UpdatedIDs)

	// an absent percent is not a zero percent; both prices stay as stored
	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "19.99", got.BaseProductPrice)
	requirePrice(t, "9.99", got.RecommendedProductPrice)
}

func TestCustomDiscountsRejectEmptyBatch(t *testing.T) {
	svc, _ := newDiscountService()

	_, err := svc.ApplyCustomDiscounts(context.Background(), nil)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "must map recommendation_id")

	_, err = svc.ApplyCustomDiscounts(context.Background(), map[string]dto.CustomDiscountEntry{})
	require.ErrorAs(t, err, &verr)
}

func TestCustomDiscountsValidateWholeBatchBeforeApplying(t *testing.T) {
	svc, store := newDiscountService()
	ctx := context.Background()

	rec := storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), nil)

	// one bad percentage aborts the batch, including the valid entry
	_, err := svc.ApplyCustomDiscounts(ctx, map[string]dto.CustomDiscountEntry{
		"1": {BaseProductPrice: float64Ptr(10)},
		"2": {BaseProductPrice: float64Ptr(150)},
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "recommendation 2")

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	requirePrice(t, "19.99", got.BaseProductPrice)
}

func TestCustomDiscountsRejectBadIDKey(t *testing.T) {
	svc, _ := newDiscountService()

	_, err := svc.ApplyCustomDiscounts(context.Background(), map[string]dto.CustomDiscountEntry{
		"not-a-number": {BaseProductPrice: float64Ptr(10)},
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "Invalid recommendation_id")
}

func TestCustomDiscountsRejectBoundaryPercentages(t *testing.T) {
	svc, store := newDiscountService()
	storeRecommendation(t, store, models.TypeCrossSell, decPtr("19.99"), nil)

	for _, pct := range []float64{0, 100} {
		_, err := svc.ApplyCustomDiscounts(context.Background(), map[string]dto.CustomDiscountEntry{
			"1": {BaseProductPrice: float64Ptr(pct)},
		})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, "percent %v", pct)
	}
}
