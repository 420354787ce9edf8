package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jobdesk/jobdesk-api/internal/api"
	"github.com/jobdesk/jobdesk-api/internal/api/middleware"
	"github.com/jobdesk/jobdesk-api/internal/api/shared"
)

// routerDeps carries the handlers and middleware the router wires up.
type routerDeps struct {
	authContext *middleware.AuthContext
	auth        *api.AuthHandler
	companies   *api.CompanyHandler
	jobs        *api.JobHandler
	users       *api.UserHandler
}

// newRouter builds the HTTP routing tree. Identity extraction runs on
// every request; guard chains run per route group, before any handler
// decodes a body.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)
	r.Use(deps.authContext.Populate)

	adminOnly := middleware.NewChain(middleware.RequireAdmin())
	selfOrAdmin := middleware.NewChain(middleware.RequireSelfOrAdmin("username"))

	r.Get("/health", healthHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", deps.auth.Token)
		r.Post("/register", deps.auth.Register)
	})

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", deps.companies.List)
		r.Get("/{handle}", deps.companies.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly.Middleware)
			r.Post("/", deps.companies.Create)
			r.Patch("/{handle}", deps.companies.Update)
			r.Delete("/{handle}", deps.companies.Delete)
		})
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", deps.jobs.List)
		r.Get("/{id}", deps.jobs.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly.Middleware)
			r.Post("/", deps.jobs.Create)
			r.Patch("/{id}", deps.jobs.Update)
			r.Delete("/{id}", deps.jobs.Delete)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(adminOnly.Middleware)
			r.Post("/", deps.users.Create)
			r.Get("/", deps.users.List)
		})

		r.Route("/{username}", func(r chi.Router) {
			r.Use(selfOrAdmin.Middleware)
			r.Get("/", deps.users.Get)
			r.Patch("/", deps.users.Update)
			r.Delete("/", deps.users.Delete)
			r.Post("/jobs/{id}", deps.users.Apply)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithPipelineError(w, r, shared.NotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithPipelineError(w, r, shared.NotFound("route not found"))
	})

	return r
}

// healthHandler reports process liveness.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
