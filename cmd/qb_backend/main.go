package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/services"
	"github.com/quietbooks/quietbooks/internal/handlers"
	"github.com/quietbooks/quietbooks/internal/middleware"
	"github.com/quietbooks/quietbooks/internal/repositories/database/sqlite"
	"github.com/quietbooks/quietbooks/pkg/config"
	"github.com/quietbooks/quietbooks/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.InitSchema(ctx, db); err != nil {
		logger.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := sqlite.NewRepositoryProvider(db)
	svcs := services.NewServiceContainer(repos)

	if err := svcs.Account.SeedDefaultChart(ctx, cfg.UserName); err != nil {
		logger.Error("Failed to seed chart of accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if _, err := svcs.Period.GetCurrentPeriod(ctx); err != nil {
		logger.Error("Failed to prepare current period", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.StructuredLoggingMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	handlers.RegisterHandlers(router, svcs)

	logger.Info("Starting server", slog.String("port", cfg.Port), slog.String("db", cfg.DBPath))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
