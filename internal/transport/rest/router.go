package rest

import "net/http"

// Handlers groups everything the router serves.
type Handlers struct {
	Auth     *AuthHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
	Health   *HealthHandler
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	// Projects
	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("PUT /api/projects/{id}", h.Projects.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)
	mux.HandleFunc("GET /api/projects/{id}/tasks", h.Projects.Tasks)
	mux.HandleFunc("GET /api/projects/{id}/summary", h.Projects.Summary)

	// Tasks
	mux.HandleFunc("POST /api/tasks", h.Tasks.Create)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.Tasks.Patch)
	mux.HandleFunc("POST /api/tasks/{id}/comments", h.Tasks.AddComment)
	mux.HandleFunc("DELETE /api/tasks/{id}/comments/{commentId}", h.Tasks.RemoveComment)

	// Health probes
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return mux
}
