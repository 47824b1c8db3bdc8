package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// List godoc
// @Summary List recommendations
// @Description List recommendations, optionally filtered. All supplied filters are ANDed; confidence_score is an inclusive minimum.
// @Tags recommendations
// @Produce json
// @Param base_product_id query int false "Exact base product id"
// @Param recommendation_type query string false "cross-sell, up-sell or accessory"
// @Param status query string false "active or inactive"
// @Param confidence_score query number false "Minimum confidence score (inclusive)"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	recs, err := h.recService.List(c.Context(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewRecommendationListResponse(recs))
}

// Get godoc
// @Summary Get a recommendation
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation id"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 404 {object} map[string]string
// @Router /recommendations/{id} [get]
func (h *RecommendationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	rec, err := h.recService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFoundResponse(c, id)
		}
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewRecommendationResponse(rec))
}

// Create godoc
// @Summary Create a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.CreateRecommendationRequest true "Recommendation to create"
// @Success 201 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Router /recommendations [post]
func (h *RecommendationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, models.NewValidationError("Invalid request body"))
	}

	rec, err := h.recService.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Location(fmt.Sprintf("/recommendations/%d", rec.ID))
	return c.Status(fiber.StatusCreated).JSON(dto.NewRecommendationResponse(rec))
}

// Update godoc
// @Summary Update a recommendation
// @Description Partial update; only recommendation_type, status and confidence_score are updatable.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation id"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recommendations/{id} [put]
func (h *RecommendationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return respondError(c, h.logger, models.NewValidationError("Invalid request body"))
	}

	rec, err := h.recService.Update(c.Context(), id, fields)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFoundResponse(c, id)
		}
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewRecommendationResponse(rec))
}

// Delete godoc
// @Summary Delete a recommendation
// @Description Idempotent; deleting an absent id still returns 204.
// @Tags recommendations
// @Param id path int true "Recommendation id"
// @Success 204
// @Router /recommendations/{id} [delete]
func (h *RecommendationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.recService.Delete(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, models.NewValidationError("Recommendation id must be an integer")
	}
	return id, nil
}

func parseListFilter(c *fiber.Ctx) (models.RecommendationFilter, error) {
	var filter models.RecommendationFilter

	if raw := c.Query("base_product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, models.NewValidationError("base_product_id must be an integer")
		}
		filter.BaseProductID = &id
	}
	if raw := c.Query("recommendation_type"); raw != "" {
		filter.RecommendationType = &raw
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("confidence_score"); raw != "" {
		minConfidence, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, models.NewValidationError("confidence_score must be numeric")
		}
		filter.MinConfidence = &minConfidence
	}
	filter.Limit = c.QueryInt("limit", 0)

	return filter, nil
}

func notFoundResponse(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("Recommendation with id '%d' was not found.", id),
	})
}

// respondError maps the error taxonomy to HTTP: validation failures are 400,
// missing records 404, anything else is a storage failure surfaced as 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": verr.Error(),
		})
	}
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	logger.Error("Request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
