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

	router.Post("/api/chat/messages", h.chatMessage)
	router.Post("/api/uploads", h.uploadEntry)
	router.Get("/api/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
