package main

import (
	"fmt"
	"log/slog"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logger"
)

func main() {
	cfg := config.GetSchedulerConfig()
	slog.SetDefault(logger.Build(cfg.LogLevel))

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("listening", slog.String("addr", addr), slog.Int("time_quantum", cfg.RoundRobinTimeQuantum))
	if err := app.Listen(addr); err != nil {
		slog.Error("server stopped", logger.ErrAttr(err))
		os.Exit(1)
	}
}
