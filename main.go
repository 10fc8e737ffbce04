package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"photo-catalog/app"
	"photo-catalog/config"
	"photo-catalog/database"
	"photo-catalog/handlers"
	"photo-catalog/middleware"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// Initialize SQLite catalog database
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	repo := database.NewRepository(db)
	application, err := app.New(repo, config.AppConfig.StoragePath, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	logger.Info("storage directory ready", "path", config.AppConfig.StoragePath)

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		UnescapePath:          true,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.AppConfig.CORSOrigins,
			AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	srv.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := srv.Group("/api")
	api.Get("/stats", handlers.GetStats(application))

	api.Get("/photos", handlers.ListPhotos(application))
	api.Get("/photos/:uuid", handlers.GetPhoto(application))
	api.Patch("/photos/:uuid", handlers.UpdatePhoto(application))
	api.Post("/photos/:uuid/favorite", handlers.ToggleFavorite(application))
	api.Delete("/photos/:uuid", handlers.DeletePhoto(application))

	api.Get("/photos/:uuid/tags", handlers.GetPhotoTags(application))
	api.Post("/photos/:uuid/tags", handlers.TagPhoto(application))
	api.Delete("/photos/:uuid/tags/:name", handlers.UntagPhoto(application))

	api.Get("/albums", handlers.GetAlbums(application))
	api.Post("/albums", handlers.CreateAlbum(application))
	api.Put("/albums/:name", handlers.UpdateAlbum(application))
	api.Delete("/albums/:name", handlers.DeleteAlbum(application))
	api.Get("/albums/:name/photos", handlers.GetAlbumPhotos(application))
	api.Get("/albums/:name/candidates", handlers.GetAlbumCandidates(application))
	api.Post("/albums/:name/photos", handlers.AddPhotoToAlbum(application))
	api.Delete("/albums/:name/photos/:uuid", handlers.RemovePhotoFromAlbum(application))

	api.Get("/tags", handlers.GetTags(application))
	api.Post("/tags", handlers.CreateTag(application))
	api.Put("/tags/:name", handlers.RenameTag(application))
	api.Delete("/tags/:name", handlers.DeleteTag(application))

	api.Post("/imports/file", handlers.ImportFile(application))
	api.Post("/imports/directory", handlers.ImportDirectory(application))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := srv.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler
	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= 500 {
			logger.Error("unhandled error", "path", c.Path(), "error", err)
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
