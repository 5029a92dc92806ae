package rest

import (
	"net/http"

	"github.com/xampe11/notes-app/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Auth       *AuthHandler
	Notes      *NoteHandler
	Categories *CategoryHandler
	Health     *HealthHandler

	RequireAuth   middleware.Middleware
	OptionalAuth  middleware.Middleware
	AuthRateLimit middleware.Middleware
}

// NewRouter builds the HTTP route table.
//
// Collection GET endpoints accept anonymous requests; single-note reads and
// every mutation require a valid token. The credential endpoints are public
// but rate-limited per IP.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	required := deps.RequireAuth
	optional := deps.OptionalAuth
	limited := deps.AuthRateLimit

	// Health probes.
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	// Auth.
	mux.Handle("POST /api/auth/register", limited(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/auth/login", limited(http.HandlerFunc(deps.Auth.Login)))
	mux.Handle("GET /api/auth/me", required(http.HandlerFunc(deps.Auth.Me)))

	// Notes.
	mux.Handle("GET /api/notes", optional(http.HandlerFunc(deps.Notes.List)))
	mux.Handle("GET /api/notes/{id}", required(http.HandlerFunc(deps.Notes.Get)))
	mux.Handle("POST /api/notes", required(http.HandlerFunc(deps.Notes.Create)))
	mux.Handle("PUT /api/notes/{id}", required(http.HandlerFunc(deps.Notes.Update)))
	mux.Handle("PATCH /api/notes/{id}/archive", required(http.HandlerFunc(deps.Notes.ToggleArchive)))
	mux.Handle("DELETE /api/notes/{id}", required(http.HandlerFunc(deps.Notes.Delete)))

	// Categories.
	mux.Handle("GET /api/categories", optional(http.HandlerFunc(deps.Categories.List)))
	mux.Handle("POST /api/categories", required(http.HandlerFunc(deps.Categories.Create)))
	mux.Handle("DELETE /api/categories/{id}", required(http.HandlerFunc(deps.Categories.Delete)))

	// Note tagging.
	mux.Handle("GET /api/notes/{id}/categories", required(http.HandlerFunc(deps.Categories.ListForNote)))
	mux.Handle("POST /api/notes/{id}/categories/{categoryId}", required(http.HandlerFunc(deps.Categories.AddToNote)))
	mux.Handle("DELETE /api/notes/{id}/categories/{categoryId}", required(http.HandlerFunc(deps.Categories.RemoveFromNote)))

	return mux
}
