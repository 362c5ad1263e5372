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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/ping", h.ping)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/advertisements", h.listAdvertisements)
		r.Get("/advertisement/{id}", h.getAdvertisement)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/logout", h.logout)
		r.Post("/advertisement", h.createAdvertisement)
		r.Delete("/advertisement/{id}", h.deleteAdvertisement)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
