package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/interfaces/api/handlers"
	"github.com/JorgeJ97/task-management-backend/interfaces/api/middleware"
	"github.com/JorgeJ97/task-management-backend/interfaces/api/routes"
	"github.com/JorgeJ97/task-management-backend/pkg/di"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize DI container
	container := di.NewContainer()

	// Initialize all dependencies (including logger)
	if err := container.Initialize(); err != nil {
		// ใช้ log พื้นฐานก่อน logger init
		panic("Failed to initialize container: " + err.Error())
	}
	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		BodyLimit:    1 * 1024 * 1024,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.Recover())
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CorsMiddleware(cfg.App.FrontendURL))
	app.Use(middleware.LoggerMiddleware())
	app.Use(container.Metrics.Middleware())

	// storage ต้องเป็น nil interface จริงๆ ถ้าไม่มี Redis
	var limiterStorage fiber.Storage
	if container.RedisStorage != nil {
		limiterStorage = container.RedisStorage
	}
	app.Use(middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window, limiterStorage))

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h, routes.Options{
		Token:   container.TokenOptions(),
		Metrics: container.Metrics.Handler(),
	})

	setupGracefulShutdown(app, container)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api/v1",
		"metrics", "http://localhost:"+port+"/metrics",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
