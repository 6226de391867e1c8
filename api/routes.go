package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduling-simulator/config"
)

// NewApp builds the fiber application serving the simulation API.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "cpu-scheduling-simulator"})
	app.Use(recover.New())
	app.Use(logger.New())
	SetupRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/scenarios", handler.ListScenarios)
		v1.Get("/scenarios/:name", handler.RunScenario)
	}
}
