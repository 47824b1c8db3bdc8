package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFilterValidateNormalizesEnums(t *testing.T) {
	filter := RecommendationFilter{
		RecommendationType: strPtr("CROSS-SELL"),
		Status:             strPtr(" Active "),
	}
	require.NoError(t, filter.Validate())
	assert.Equal(t, TypeCrossSell, *filter.RecommendationType)
	assert.Equal(t, StatusActive, *filter.Status)
}

func TestFilterValidateRejectsBadCriteria(t *testing.T) {
	tests := []struct {
		name   string
		filter RecommendationFilter
	}{
		{"bad type", RecommendationFilter{RecommendationType: strPtr("bundle")}},
		{"bad status", RecommendationFilter{Status: strPtr("archived")}},
		{"confidence below range", RecommendationFilter{MinConfidence: decPtr("-0.1")}},
		{"confidence above range", RecommendationFilter{MinConfidence: decPtr("1.1")}},
		{"negative limit", RecommendationFilter{Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestFilterMatchesConjunction(t *testing.T) {
	rec := validRecommendation()
	rec.BaseProductID = 10
	rec.RecommendationType = TypeUpSell
	rec.Status = StatusActive
	rec.ConfidenceScore = decimal.RequireFromString("0.75")

	empty := RecommendationFilter{}
	assert.True(t, empty.Matches(rec), "empty filter matches everything")

	all := RecommendationFilter{
		BaseProductID:      int64Ptr(10),
		RecommendationType: strPtr(TypeUpSell),
		Status:             strPtr(StatusActive),
		MinConfidence:      decPtr("0.75"),
	}
	assert.True(t, all.Matches(rec), "every criterion satisfied")

	wrongBase := all
	wrongBase.BaseProductID = int64Ptr(11)
	assert.False(t, wrongBase.Matches(rec), "one failing criterion rejects the record")
}

func TestFilterConfidenceIsInclusiveMinimum(t *testing.T) {
	rec := validRecommendation()
	rec.ConfidenceScore = decimal.RequireFromString("0.75")

	equal := RecommendationFilter{MinConfidence: decPtr("0.75")}
	assert.True(t, equal.Matches(rec), "equal confidence is included")

	above := RecommendationFilter{MinConfidence: decPtr("0.76")}
	assert.False(t, above.Matches(rec), "confidence below the threshold is excluded")

	below := RecommendationFilter{MinConfidence: decPtr("0.74")}
	assert.True(t, below.Matches(rec))
}
