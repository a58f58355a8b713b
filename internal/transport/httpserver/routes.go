package httpserver

import (
	"net/http"
	"time"

	"collabhive-go/internal/config"
	"collabhive-go/internal/metrics"
	"collabhive-go/internal/transport/httpserver/handler"
	authmw "collabhive-go/internal/transport/httpserver/middleware"
	"collabhive-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, profiles authmw.ProfileSaver, m *metrics.Metrics, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	auth := authmw.NewSupabaseAuth(cfg.Supabase, profiles, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/v0/health", handlers.Common.Health)

		r.Route("/v1", func(r chi.Router) {
			if cfg.RateLimit.Enabled {
				r.Use(authmw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware)
			}

			r.Group(func(r chi.Router) {
				r.Use(auth.Optional)

				r.Get("/projects", handlers.Projects.Search)
				r.Get("/projects/{projectId}", handlers.Projects.GetProject)
				r.Get("/profiles/{userId}", handlers.Profiles.GetProfile)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware)

				r.Post("/projects", handlers.Projects.CreateProject)
				r.Patch("/projects/{projectId}", handlers.Projects.ToggleFavorite)
				r.Put("/projects/{projectId}", handlers.Projects.UpdateProject)
				r.Delete("/projects/{projectId}", handlers.Projects.DeleteProject)
				r.Post("/projects/{projectId}/links", handlers.Projects.CreateLink)
				r.Delete("/projects/{projectId}/links/{linkId}", handlers.Projects.DeleteLink)

				r.Get("/collaboration/creator-requests", handlers.Collaboration.ListCreatorRequests)
				r.Get("/collaboration/creator-projects", handlers.Collaboration.ListCreatorProjects)
				r.Get("/collaboration/collaborator-projects", handlers.Collaboration.ListCollaboratorProjects)
				r.Post("/collaboration/{projectId}", handlers.Collaboration.RequestToJoin)
				r.Put("/collaboration/{projectId}", handlers.Collaboration.Manage)
				r.Delete("/collaboration/{projectId}", handlers.Collaboration.Leave)

				r.Put("/profiles", handlers.Profiles.UpdateProfile)
				r.Post("/profiles/links", handlers.Profiles.CreateLink)
				r.Delete("/profiles/links/{linkId}", handlers.Profiles.DeleteLink)
			})
		})
	})

	return r
}
