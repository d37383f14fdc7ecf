package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RequestID, middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.createSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getSession)
			r.Delete("/", h.closeSession)
			r.Get("/notifications", h.notifications)
			r.Post("/drag/{event}", h.drag)

			r.Route("/files", func(r chi.Router) {
				r.With(h.withContentDigest).Post("/", h.addFiles)
				r.With(h.withContentDigest).Put("/", h.synchronizeFiles)
				r.Get("/{index}", h.downloadFile)
				r.Delete("/{index}", h.removeFile)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
