package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(requestLogger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	readers := NewReadersController(cfg.Readers)
	books := NewBooksController(cfg.Books)
	authors := NewAuthorsController(cfg.Authors)

	router.GET("/health", health.Status)

	readers.register(router, "/readers", readers.List)
	books.register(router, "/books", books.List)
	authors.register(router, "/authors", authors.List)

	return router
}
