package router

import (
	"net/http"

	"feedback-system/internal/handlers"
	customMiddleware "feedback-system/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewAPIRouter wires the feedback API routes.
func NewAPIRouter(feedbackHandler *handlers.FeedbackHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"feedback-api"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", feedbackHandler.Search)

		r.Get("/feedback", feedbackHandler.List)
		r.Post("/feedback", feedbackHandler.Create)
		r.Put("/feedback/{id}", feedbackHandler.UpdateByID)
		r.Delete("/feedback/{id}", feedbackHandler.DeleteByID)

		r.Put("/feedback/email/{email}", feedbackHandler.UpdateByEmail)
		r.Delete("/feedback/email/{email}", feedbackHandler.DeleteByEmail)
	})

	return r
}
