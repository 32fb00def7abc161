package http

import (
	"github.com/DvEyZ/rkblog-be/internal/service"
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
		r.Post("/api/auth/token", h.token)
	})

	// routes open to any authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(service.AnyAuthenticated))

		r.Get("/api/accounts", h.listAccounts)
		r.Get("/api/accounts/{name}", h.getAccount)
		r.Put("/api/accounts/{name}", h.updateAccount)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{title}", h.getPost)
		r.Post("/api/posts", h.createPost)
		r.Put("/api/posts/{title}", h.updatePost)
		r.Delete("/api/posts/{title}", h.deletePost)
	})

	// routes restricted to administrators
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(service.RequireAdmin))

		r.Post("/api/accounts", h.createAccount)
		r.Delete("/api/accounts/{name}", h.deleteAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
