package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

const rateWindow = time.Minute

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		h.withSecureHeaders(),
		withGZip,
	)
	if h.cfg.RateLimit > 0 {
		router.Use(httprate.Limit(h.cfg.RateLimit, rateWindow, httprate.WithKeyFuncs(httprate.KeyByIP)))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/filter", h.findUserByLoginName)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
