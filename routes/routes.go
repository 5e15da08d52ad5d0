package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/handlers"
	"github.com/upb/blog-api/middleware"
)

// defaultRequestTimeout applies when the config leaves RequestTimeout unset
const defaultRequestTimeout = 60 * time.Second

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	timeout := defaultRequestTimeout
	allowedOrigins := []string{"http://localhost:*", "https://*"}
	if deps.Config != nil {
		if deps.Config.Server.RequestTimeout > 0 {
			timeout = deps.Config.Server.RequestTimeout
		}
		if len(deps.Config.CORS.AllowedOrigins) > 0 {
			allowedOrigins = deps.Config.CORS.AllowedOrigins
		}
	}

	// Core middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(chimw.Timeout(timeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", handlers.RootHandler())
	r.Get("/api-docs.json", handlers.APIDocsHandler())

	// Health check endpoints
	var health *handlers.HealthHandler
	if deps.DB != nil {
		health = handlers.NewHealthHandler(deps.DB.DB, deps.Logger)
	} else {
		health = handlers.NewHealthHandler(nil, deps.Logger)
	}
	r.Get("/healthz", health.HandleHealth)
	r.Get("/readyz", health.HandleReadiness)

	r.Route("/api", func(r chi.Router) {
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.LoginHandler(deps))
			r.Post("/register", handlers.RegisterHandler(deps))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/me", handlers.GetCurrentUserHandler(deps))
			r.Patch("/{id}", handlers.UpdateUserHandler(deps))
		})

		r.Route("/blogs", func(r chi.Router) {
			r.With(deps.AuthMiddleware.RequireAuth).Get("/", handlers.ListBlogsHandler(deps))
			r.With(deps.AuthMiddleware.RequireAuth).Post("/", handlers.CreateBlogHandler(deps))
			r.With(deps.AuthMiddleware.RequireAuth).Get("/{id}", handlers.GetBlogHandler(deps))

			// RequireOwner authenticates before checking ownership
			r.With(deps.OwnershipMiddleware.RequireOwner).Put("/{id}", handlers.UpdateBlogHandler(deps))
			r.With(deps.OwnershipMiddleware.RequireOwner).Delete("/{id}", handlers.DeleteBlogHandler(deps))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Get("/", handlers.ListCategoriesHandler(deps))
			r.Post("/", handlers.CreateCategoryHandler(deps))
			r.Put("/{id}", handlers.UpdateCategoryHandler(deps))
			r.Delete("/{id}", handlers.DeleteCategoryHandler(deps))
		})
	})

	// 404 handler
	r.NotFound(handlers.NotFoundHandler())

	return r
}
