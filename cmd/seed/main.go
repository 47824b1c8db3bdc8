package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/repository"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/config"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/logger"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS recommendations (
    recommendation_id               BIGSERIAL PRIMARY KEY,
    base_product_id                 BIGINT NOT NULL,
    recommended_product_id          BIGINT NOT NULL,
    recommendation_type             TEXT NOT NULL,
    status                          TEXT NOT NULL DEFAULT 'active',
    confidence_score                NUMERIC(3,2) NOT NULL,
    base_product_price              NUMERIC(14,2),
    recommended_product_price       NUMERIC(14,2),
    base_product_description        VARCHAR(1023),
    recommended_product_description VARCHAR(1023),
    created_date                    TIMESTAMPTZ NOT NULL,
    updated_date                    TIMESTAMPTZ NOT NULL
)`

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the recommendations table before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *reset {
		appLogger.Info("Dropping recommendations table")
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS recommendations"); err != nil {
			appLogger.Fatal("Failed to drop table", zap.Error(err))
		}
	}

	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		appLogger.Fatal("Failed to create table", zap.Error(err))
	}

	recRepo := repository.NewRecommendationRepository(db, appLogger)

	appLogger.Info("Seeding sample recommendations")
	now := time.Now().UTC()
	for _, rec := range sampleRecommendations() {
		rec.CreatedDate = now
		rec.UpdatedDate = now
		if err := recRepo.Create(ctx, rec); err != nil {
			appLogger.Fatal("Failed to seed recommendation",
				zap.Int64("base_product_id", rec.BaseProductID),
				zap.Error(err),
			)
		}
		appLogger.Info("Seeded recommendation",
			zap.Int64("recommendation_id", rec.ID),
			zap.String("recommendation_type", rec.RecommendationType),
		)
	}

	appLogger.Info("Database seeding completed")
}

func sampleRecommendations() []*models.Recommendation {
	return []*models.Recommendation{
		sample(101, 201, models.TypeCrossSell, models.StatusActive, "0.85", price("19.99"), price("9.99"),
			"Wireless mouse", "Mouse pad"),
		sample(101, 202, models.TypeUpSell, models.StatusActive, "0.70", price("19.99"), price("49.99"),
			"Wireless mouse", "Gaming mouse"),
		sample(102, 203, models.TypeAccessory, models.StatusActive, "0.90", price("29.99"), price("4.99"),
			"Mechanical keyboard", "Keycap set"),
		sample(103, 204, models.TypeAccessory, models.StatusInactive, "0.55", nil, nil,
			"Monitor", "Monitor arm"),
	}
}

func sample(baseID, recID int64, recType, status, confidence string, basePrice, recPrice *decimal.Decimal, baseDesc, recDesc string) *models.Recommendation {
	return &models.Recommendation{
		BaseProductID:                 baseID,
		RecommendedProductID:          recID,
		RecommendationType:            recType,
		Status:                        status,
		ConfidenceScore:               decimal.RequireFromString(confidence),
		BaseProductPrice:              basePrice,
		RecommendedProductPrice:       recPrice,
		BaseProductDescription:        &baseDesc,
		RecommendedProductDescription: &recDesc,
	}
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
