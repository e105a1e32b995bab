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

	// bodies are JSON only; requests without a body pass through
	router.Use(middleware.AllowContentType("application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/create", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/get", h.getUser)
		r.Post("/api/user/update", h.updateUser)
		r.Delete("/api/user/delete", h.deleteUser)

		r.Post("/api/todo/create", h.createTodo)
		r.Get("/api/todo/get", h.listTodos)
		r.Get("/api/todo/get/{id}", h.getTodo)
		r.Post("/api/todo/update/{id}", h.updateTodo)
		r.Post("/api/todo/markdone/{id}", h.markTodoDone)
		r.Delete("/api/todo/delete/{id}", h.deleteTodo)
		r.Post("/api/todo/delete/{id}", h.deleteTodo)

		r.Post("/api/group/create", h.createGroup)
		r.Get("/api/group/get", h.listGroups)
		r.Post("/api/group/update/{id}", h.updateGroup)
		r.Delete("/api/group/delete/{id}", h.deleteGroup)
		r.Post("/api/group/delete/{id}", h.deleteGroup)
	})

	return router
}
