package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/umamihq/umami-backend/internal/api/handlers"
	"github.com/umamihq/umami-backend/internal/api/middleware"
	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/metrics"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Grocery      *handlers.GroceryHandler
	Recipe       *handlers.RecipeHandler
	ShoppingList *handlers.ShoppingListHandler
	User         *handlers.UserHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		r.Route("/api/v1/grocery", func(r chi.Router) {
			r.Get("/search", h.Grocery.Search)
			r.Get("/stores", h.Grocery.Stores)
			r.Get("/compare", h.Grocery.Compare)
		})

		r.Route("/api/v1/recipes", func(r chi.Router) {
			r.Get("/", h.Recipe.List)
			r.Get("/trending", h.Recipe.Trending)
			r.Get("/{slug}", h.Recipe.GetBySlug)
		})

		// Recommendations personalize when a valid token is present
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthMiddleware(cfg.Auth.JWTSecret))
			r.Get("/api/v1/recommendations", h.Recipe.Recommendations)
		})
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		r.Route("/api/v1/users/me", func(r chi.Router) {
			r.Get("/", h.User.Me)
			r.Get("/preferences", h.User.GetPreferences)
			r.Put("/preferences", h.User.UpdatePreferences)
		})

		r.Route("/api/v1/shopping-lists", func(r chi.Router) {
			r.Get("/", h.ShoppingList.List)
			r.Post("/", h.ShoppingList.Create)
			r.Post("/from-ingredients", h.ShoppingList.CreateFromIngredients)
			r.Post("/from-recipe", h.ShoppingList.CreateFromRecipe)
			r.Get("/{id}", h.ShoppingList.Get)
			r.Put("/{id}", h.ShoppingList.Rename)
			r.Delete("/{id}", h.ShoppingList.Delete)
			r.Patch("/{id}/items/{itemID}", h.ShoppingList.ToggleItem)
		})
	})

	return r
}
