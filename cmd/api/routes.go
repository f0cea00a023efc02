package main

import (
	"time"

	"speak-byte/internal/config"
	"speak-byte/internal/domain"
	"speak-byte/internal/handler"
	"speak-byte/internal/metrics"
	"speak-byte/internal/middleware"
	"speak-byte/internal/service"
	"speak-byte/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// appDeps are the services the HTTP layer is built from.
type appDeps struct {
	auth      service.AuthService
	speaking  service.SpeakingService
	points    service.PointsService
	cache     domain.Cache // optional, used by the health check
	validator *validation.Validator
}

func newApp(serverCfg config.ServerConfig, deps appDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// metrics wraps the logger so it sees the status rendered by the error handler
	app.Use(metrics.Middleware())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	if deps.validator == nil {
		deps.validator = validation.NewValidator()
	}
	vm := middleware.NewValidationMiddleware(deps.validator)
	healthHandler := handler.NewHealthHandler(deps.cache)
	speakingHandler := handler.NewSpeakingHandler(deps.speaking, deps.validator)
	pointsHandler := handler.NewPointsHandler(deps.points)
	protected := middleware.Protected(deps.auth)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	speaking := api.Group("/speaking")
	speaking.Post("/compare", speakingHandler.Compare)
	speaking.Post("/check", protected, speakingHandler.CheckSpeaking)

	courses := api.Group("/courses", protected)
	courses.Get("/:courseId/points/me", vm.ValidateCourseID(), pointsHandler.GetMyPoints)
	courses.Post("/:courseId/points/me/sync", vm.ValidateCourseID(), pointsHandler.SyncMyPoints)
	courses.Get("/:courseId/team-points", vm.ValidateCourseID(), pointsHandler.GetTeamPoints)
	courses.Get("/:courseId/ranking", vm.ValidateCourseID(), vm.ValidateRankingLimit(), pointsHandler.GetRanking)

	return app
}
