package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter mounts all routes behind the CORS policy.
func NewRouter(h *Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Health)
	r.Get("/health", h.Health)
	r.Post("/upload-resume", h.UploadResume)
	r.Get("/insights", h.GetInsights)
	r.Get("/insights/{id}", h.GetInsight)
	r.Get("/test-ai", h.TestAI)

	return r
}
