package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with the middleware stack and all routes
// configured. AllowedOrigins comes from the server configuration.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.RegisterEmployee)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.RegisterProject)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", h.LogEntry)
			r.Put("/{id}", h.UpdateEntry)
			r.Delete("/{id}", h.DeleteEntry)
		})

		r.Get("/report", h.Report)
		r.Get("/top", h.TopEmployees)
		r.Get("/overworked", h.Overworked)
		r.Get("/distribution", h.EmployeeDistribution)

		r.Route("/project-records", func(r chi.Router) {
			r.Get("/", h.ListProjectRecords)
			r.Post("/", h.CreateProjectRecord)
			r.Get("/{id}/assignments", h.ListAssignments)
			r.Post("/{id}/assignments", h.AssignUser)
		})
	})

	return r
}
