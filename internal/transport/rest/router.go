package rest

import "net/http"

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	Impressions *ImpressionHandler
	Categories  *CategoryHandler
	Quiz        *QuizHandler
	Health      *HealthHandler
}

// NewRouter builds the ServeMux with all REST routes. Middleware is applied
// by the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /impressions", h.Impressions.List)
	mux.HandleFunc("POST /impressions", h.Impressions.Create)
	mux.HandleFunc("GET /impressions/{id}", h.Impressions.Get)
	mux.HandleFunc("PATCH /impressions/{id}", h.Impressions.Update)
	mux.HandleFunc("DELETE /impressions/{id}", h.Impressions.Delete)

	mux.HandleFunc("GET /categories", h.Categories.List)
	mux.HandleFunc("POST /categories", h.Categories.Create)
	mux.HandleFunc("PATCH /categories/{id}", h.Categories.Update)
	mux.HandleFunc("DELETE /categories/{id}", h.Categories.Delete)

	mux.HandleFunc("POST /quiz/generate", h.Quiz.Generate)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
