package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var recommendationColumns = []string{
	"recommendation_id",
	"base_product_id",
	"recommended_product_id",
	"recommendation_type",
	"status",
	"confidence_score",
	"base_product_price",
	"recommended_product_price",
	"base_product_description",
	"recommended_product_description",
	"created_date",
	"updated_date",
}

// RecommendationRepository persists recommendations in Postgres.
type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts rec and assigns the generated surrogate key to rec.ID.
func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	query := squirrel.Insert("recommendations").
		Columns(recommendationColumns[1:]...).
		Values(
			rec.BaseProductID, rec.RecommendedProductID, rec.RecommendationType, rec.Status,
			rec.ConfidenceScore, rec.BaseProductPrice, rec.RecommendedProductPrice,
			rec.BaseProductDescription, rec.RecommendedProductDescription,
			rec.CreatedDate, rec.UpdatedDate,
		).
		Suffix("RETURNING recommendation_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rec.ID); err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	query := squirrel.Select(recommendationColumns...).
		From("recommendations").
		Where(squirrel.Eq{"recommendation_id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec models.Recommendation
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.BaseProductID, &rec.RecommendedProductID, &rec.RecommendationType,
		&rec.Status, &rec.ConfidenceScore, &rec.BaseProductPrice, &rec.RecommendedProductPrice,
		&rec.BaseProductDescription, &rec.RecommendedProductDescription,
		&rec.CreatedDate, &rec.UpdatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select recommendation %d: %w", id, err)
	}

	return &rec, nil
}

// List returns records matching the filter in creation order. The filter must
// already be validated; criteria left nil are not applied.
func (r *RecommendationRepository) List(ctx context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	query := squirrel.Select(recommendationColumns...).
		From("recommendations").
		OrderBy("recommendation_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.BaseProductID != nil {
		query = query.Where(squirrel.Eq{"base_product_id": *filter.BaseProductID})
	}
	if filter.RecommendationType != nil {
		query = query.Where(squirrel.Eq{"recommendation_type": *filter.RecommendationType})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.MinConfidence != nil {
		query = query.Where(squirrel.GtOrEq{"confidence_score": *filter.MinConfidence})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var recommendations []*models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		if err := rows.Scan(
			&rec.ID, &rec.BaseProductID, &rec.RecommendedProductID, &rec.RecommendationType,
			&rec.Status, &rec.ConfidenceScore, &rec.BaseProductPrice, &rec.RecommendedProductPrice,
			&rec.BaseProductDescription, &rec.RecommendedProductDescription,
			&rec.CreatedDate, &rec.UpdatedDate,
		); err != nil {
			return nil, err
		}
		recommendations = append(recommendations, &rec)
	}

	return recommendations, rows.Err()
}

// Update writes every mutable column of rec back to its row.
func (r *RecommendationRepository) Update(ctx context.Context, rec *models.Recommendation) error {
	query := squirrel.Update("recommendations").
		Set("recommendation_type", rec.RecommendationType).
		Set("status", rec.Status).
		Set("confidence_score", rec.ConfidenceScore).
		Set("base_product_price", rec.BaseProductPrice).
		Set("recommended_product_price", rec.RecommendedProductPrice).
		Set("base_product_description", rec.BaseProductDescription).
		Set("recommended_product_description", rec.RecommendedProductDescription).
		Set("updated_date", rec.UpdatedDate).
		Where(squirrel.Eq{"recommendation_id": rec.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update recommendation %d: %w", rec.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the row if it exists. Deleting an absent id is not an error.
func (r *RecommendationRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("recommendations").
		Where(squirrel.Eq{"recommendation_id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete recommendation %d: %w", id, err)
	}
	return nil
}
