package api

import (
	"github.com/CSCI-GA-2820-FA25-003/recommendations/docs"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/api/handlers"
	"github.com/CSCI-GA-2820-FA25-003/recommendations/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func SetupRouter(
	recHandler *handlers.RecommendationHandler,
	discountHandler *handlers.DiscountHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec through its init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Product Recommendation REST API Service",
			"version": "1.0",
			"paths": fiber.Map{
				"recommendations": "/recommendations",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})

	recs := app.Group("/recommendations")
	// apply_discount is registered before the :id routes so it is not
	// captured as an id parameter.
	recs.Put("/apply_discount", discountHandler.ApplyDiscount)
	recs.Get("", recHandler.List)
	recs.Post("", recHandler.Create)
	recs.Get("/:id", recHandler.Get)
	recs.Put("/:id", recHandler.Update)
	recs.Delete("/:id", recHandler.Delete)

	return app
}
