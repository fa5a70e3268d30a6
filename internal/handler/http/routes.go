package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/search", h.searchNotes)
			r.Get("/tags", h.listTags)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getNote)
				r.Put("/", h.updateNote)
				r.Delete("/", h.deleteNote)
			})
		})

		r.Route("/api/ai", func(r chi.Router) {
			r.Post("/summarize", h.summarize)
			r.Post("/expand", h.expandContent)
			r.Post("/scrape-and-summarize", h.scrapeAndSummarize)
			r.Post("/chat", h.chatWithNotes)
		})
	})

	return router
}
