// Package main is the entry point for the wallet ledger service. It wires
// configuration, PostgreSQL, Redis and the HTTP server, and shuts down
// gracefully on SIGINT/SIGTERM.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wallet/internal/config"
	"wallet/internal/repositories"
	"wallet/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repositories.InitDB()
	if err != nil {
		slog.Error("database initialization failed", "error", err)
		os.Exit(1)
	}

	redisClient := repositories.InitRedis()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, redisClient)

	go func() {
		addr := ":" + config.GetEnv("PORT", "8080")
		slog.Info("server listening", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = redisClient.Close()
}
