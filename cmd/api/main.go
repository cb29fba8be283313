package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/umamihq/umami-backend/internal/api/handlers"
	"github.com/umamihq/umami-backend/internal/api/router"
	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/integrations"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/providers"
	"github.com/umamihq/umami-backend/internal/repository/sqlite"
	"github.com/umamihq/umami-backend/internal/services"
	"github.com/umamihq/umami-backend/internal/worker"
	"github.com/umamihq/umami-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db, migrations.FS); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Retailer adapters; registration order fixes merge order
	registry := providers.NewRegistry(
		providers.NewInstacartAPI(cfg.Retailer, log),
		providers.NewWalmartAPI(cfg.Retailer, log),
	)

	recipeRepo := integrations.NewSanityClient(cfg.CMS)
	userRepo := sqlite.NewUserRepository(db)
	listRepo := sqlite.NewShoppingListRepository(db)

	grocerySvc := services.NewGroceryService(registry, log)
	userSvc := services.NewUserService(userRepo, log)
	listSvc := services.NewShoppingListService(grocerySvc, listRepo, log)
	recSvc := services.NewRecommendationService(recipeRepo, log)

	trending := worker.NewTrendingRefresher(recSvc, cfg.Worker.TrendingRefreshSpec, cfg.Worker.TrendingFeedSize, log)
	if err := trending.Start(context.Background()); err != nil {
		log.Fatalf("failed to start trending refresher: %v", err)
	}
	defer trending.Stop()

	h := &router.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Grocery:      handlers.NewGroceryHandler(grocerySvc, log),
		Recipe:       handlers.NewRecipeHandler(recipeRepo, recSvc, userSvc, trending, log),
		ShoppingList: handlers.NewShoppingListHandler(listSvc, recipeRepo, log),
		User:         handlers.NewUserHandler(userSvc, log),
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.ErrorWithErr(err, "forced shutdown")
	}
	log.Info("server stopped")
}
