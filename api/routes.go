package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes mounts the CRUD routes for every record type under /api.
// Messages have no PUT: a submitted message is never edited.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.metaHandler.getAPIInfo())

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Post("/", handlers.projectHandler.createProject())
			r.Get("/{id}", handlers.projectHandler.getProject())
			r.Put("/{id}", handlers.projectHandler.updateProject())
			r.Delete("/{id}", handlers.projectHandler.deleteProject())
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.getAllSkills())
			r.Post("/", handlers.skillHandler.createSkill())
			r.Get("/{id}", handlers.skillHandler.getSkill())
			r.Put("/{id}", handlers.skillHandler.updateSkill())
			r.Delete("/{id}", handlers.skillHandler.deleteSkill())
		})

		r.Route("/experiences", func(r chi.Router) {
			r.Get("/", handlers.experienceHandler.getAllExperiences())
			r.Post("/", handlers.experienceHandler.createExperience())
			r.Get("/{id}", handlers.experienceHandler.getExperience())
			r.Put("/{id}", handlers.experienceHandler.updateExperience())
			r.Delete("/{id}", handlers.experienceHandler.deleteExperience())
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", handlers.messageHandler.getAllMessages())
			r.Post("/", handlers.messageHandler.createMessage())
			r.Get("/{id}", handlers.messageHandler.getMessage())
			r.Delete("/{id}", handlers.messageHandler.deleteMessage())
		})
	})
}

// setupMetaRoutes mounts the probes that sit outside /api.
func setupMetaRoutes(r chi.Router, handlers *routeHandlers, router router) {
	r.Get("/healthz", handlers.metaHandler.getHealth())
	if router.metrics != nil {
		r.Method("GET", "/metrics", router.metrics.Handler())
	}
}
