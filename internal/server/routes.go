package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"claydash/internal/filters"
	"claydash/internal/handlers"
	"claydash/internal/handlers/api"
	"claydash/internal/loader"
	"claydash/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, l *loader.Loader, registry *filters.Registry) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	core := handlers.New(s.Cfg, l, registry)
	apiHandler := api.NewHandler(core, l)

	// Auth routes - only wired when OIDC is configured
	if s.Cfg.AuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Login page (always available)
	s.App.Get("/login", core.LoginPage)

	// Dashboard pages
	s.App.Get("/", authMiddleware.RequireAuth, core.Overview)
	s.App.Get("/companies", authMiddleware.RequireAuth, core.Companies)
	s.App.Get("/decision-makers", authMiddleware.RequireAuth, core.DecisionMakers)
	s.App.Get("/jobs", authMiddleware.RequireAuth, core.Jobs)

	// Facet selection, refresh and export
	s.App.Post("/filters", authMiddleware.RequireAuth, core.SetFilter)
	s.App.Post("/filters/clear", authMiddleware.RequireAuth, core.ClearFilters)
	s.App.Post("/refresh", authMiddleware.RequireAuth, core.Refresh)
	s.App.Get("/export/:entity", authMiddleware.RequireAuth, core.Export)

	// JSON API
	s.App.Get("/api/health", apiHandler.Health)
	s.App.Get("/api/charts/:page", authMiddleware.RequireAuth, apiHandler.Charts)
	s.App.Get("/api/tables/:entity", authMiddleware.RequireAuth, apiHandler.Table)
	s.App.Get("/api/filters", authMiddleware.RequireAuth, apiHandler.Filters)
	s.App.Post("/api/filters", authMiddleware.RequireAuth, apiHandler.SetFilter)
	s.App.Delete("/api/filters/:name", authMiddleware.RequireAuth, apiHandler.RemoveFilter)
	s.App.Delete("/api/filters", authMiddleware.RequireAuth, apiHandler.ClearFilters)

	// Prometheus scrape endpoint
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
