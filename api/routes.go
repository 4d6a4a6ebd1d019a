package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the http application with every scheduler route registered under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/:algorithm/csv", handler.Export)
	}

	return app
}
