package handlers

import (
	"bytes"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/dto"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	discountService *service.DiscountService
	logger          *zap.Logger
}

func NewDiscountHandler(discountService *service.DiscountService, logger *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
		logger:          logger,
	}
}

// ApplyDiscount godoc
// @Summary Apply a price discount
// @Description With a discount query parameter, applies that flat percentage to all accessory recommendations. With a JSON body mapping recommendation ids to discount objects, applies per-record percentages in one batch.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param discount query number false "Flat discount percent, exclusive (0, 100)"
// @Param request body map[string]dto.CustomDiscountEntry false "Custom discount batch"
// @Success 200 {object} dto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Router /recommendations/apply_discount [put]
func (h *DiscountHandler) ApplyDiscount(c *fiber.Ctx) error {
	if raw := c.Query("discount"); raw != "" {
		return h.applyFlat(c, raw)
	}
	if len(bytes.TrimSpace(c.Body())) > 0 {
		return h.applyCustom(c)
	}
	return respondError(c, h.logger, models.NewValidationError("Discount parameter is required"))
}

func (h *DiscountHandler) applyFlat(c *fiber.Ctx, raw string) error {
	percent, err := decimal.NewFromString(raw)
	if err != nil {
		return respondError(c, h.logger, models.NewValidationError("Discount must be numeric"))
	}

	result, err := h.discountService.ApplyFlatDiscount(c.Context(), percent)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(result)
}

func (h *DiscountHandler) applyCustom(c *fiber.Ctx) error {
	var entries map[string]dto.CustomDiscountEntry
	if err := c.BodyParser(&entries); err != nil {
		return respondError(c, h.logger, models.NewValidationError("Request body must map recommendation_id to discount objects"))
	}

	result, err := h.discountService.ApplyCustomDiscounts(c.Context(), entries)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(result)
}
