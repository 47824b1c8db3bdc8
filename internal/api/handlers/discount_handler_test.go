package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discountURL = baseURL + "/apply_discount"

func TestApplyFlatDiscount(t *testing.T) {
	app := newTestApp()

	accessory := createRecommendation(t, app, createPayload())
	other := createPayload()
	other["recommendation_type"] = "cross-sell"
	crossSell := createRecommendation(t, app, other)

	resp := doJSON(t, app, http.MethodPut, discountURL+"?discount=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.DiscountResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, []int64{accessory.RecommendationID}, result.UpdatedIDs)
	assert.NotEmpty(t, result.Message)

	// 10% off 29.99/4.99, rounded half up to the cent
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, accessory.RecommendationID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched dto.RecommendationResponse
	decodeBody(t, resp, &fetched)
	require.NotNil(t, fetched.BaseProductPrice)
	assert.InDelta(t, 26.99, *fetched.BaseProductPrice, 1e-9)
	require.NotNil(t, fetched.RecommendedProductPrice)
	assert.InDelta(t, 4.49, *fetched.RecommendedProductPrice, 1e-9)

	// the cross-sell record is out of the flat discount's scope
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, crossSell.RecommendationID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &fetched)
	assert.InDelta(t, 29.99, *fetched.BaseProductPrice, 1e-9)
}

func TestApplyFlatDiscountValidation(t *testing.T) {
	app := newTestApp()
	createRecommendation(t, app, createPayload())

	for _, query := range []string{"?discount=0", "?discount=100", "?discount=-10", "?discount=abc"} {
		resp := doJSON(t, app, http.MethodPut, discountURL+query, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}

	// no parameter and no body
	resp := doJSON(t, app, http.MethodPut, discountURL, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "required")
}

func TestApplyFlatDiscountZeroMatches(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPut, discountURL+"?discount=25", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.DiscountResponse
	decodeBody(t, resp, &result)
	assert.Empty(t, result.UpdatedIDs)
}

func TestApplyCustomDiscounts(t *testing.T) {
	app := newTestApp()

	first := createPayload()
	first["base_product_price"] = 19.99
	first["recommended_product_price"] = 9.99
	firstRec := createRecommendation(t, app, first)

	second := createPayload()
	second["base_product_price"] = 29.99
	second["recommended_product_price"] = 4.99
	secondRec := createRecommendation(t, app, second)

	resp := doJSON(t, app, http.MethodPut, discountURL, map[string]any{
		fmt.Sprint(firstRec.RecommendationID):  map[string]any{"base_product_price": 5, "recommended_product_price": 10},
		fmt.Sprint(secondRec.RecommendationID): map[string]any{"base_product_price": 15, "recommended_product_price": 20},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.DiscountResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, []int64{firstRec.RecommendationID, secondRec.RecommendationID}, result.UpdatedIDs)

	var fetched dto.RecommendationResponse
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, firstRec.RecommendationID), nil)
	decodeBody(t, resp, &fetched)
	assert.InDelta(t, 18.99, *fetched.BaseProductPrice, 1e-9)
	assert.InDelta(t, 8.99, *fetched.RecommendedProductPrice, 1e-9)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, secondRec.RecommendationID), nil)
	decodeBody(t, resp, &fetched)
	assert.InDelta(t, 25.49, *fetched.BaseProductPrice, 1e-9)
	assert.InDelta(t, 3.99, *fetched.RecommendedProductPrice, 1e-9)
}

func TestApplyCustomDiscountsReportsNotFoundIDs(t *testing.T) {
	app := newTestApp()
	created := createRecommendation(t, app, createPayload())

	resp := doJSON(t, app, http.MethodPut, discountURL, map[string]any{
		fmt.Sprint(created.RecommendationID): map[string]any{"base_product_price": 10},
		"999":                               map[string]any{"base_product_price": 10},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.DiscountResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, []int64{created.RecommendationID}, result.UpdatedIDs)
	assert.Equal(t, []int64{999}, result.NotFoundIDs)
}

func TestApplyCustomDiscountsEmptyBodyRejected(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPut, discountURL, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "must map recommendation_id")
}

func TestApplyCustomDiscountsOutOfRangePercentRejected(t *testing.T) {
	app := newTestApp()
	created := createRecommendation(t, app, createPayload())

	resp := doJSON(t, app, http.MethodPut, discountURL, map[string]any{
		fmt.Sprint(created.RecommendationID): map[string]any{"base_product_price": 150},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// record untouched
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, created.RecommendationID), nil)
	var fetched dto.RecommendationResponse
	decodeBody(t, resp, &fetched)
	assert.InDelta(t, 29.99, *fetched.BaseProductPrice, 1e-9)
}
