package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	accessHandler "github.com/MrJamesThe3rd/contas/internal/http/access"
	recordHandler "github.com/MrJamesThe3rd/contas/internal/http/record"
	"github.com/MrJamesThe3rd/contas/internal/ratelimit"
)

func New(
	limiter *ratelimit.Limiter,
	accessV1 *accessHandler.Handler,
	recordsV1 *recordHandler.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		// Pagination metadata travels in headers; browsers only see them
		// when exposed here.
		ExposedHeaders:   []string{"X-Total", "X-Offset", "X-Limit", "X-Acesso-ID"},
		AllowCredentials: true,
	}))

	router.Use(ratelimit.Middleware(limiter, nil))

	accessV1.Routes(router)
	recordsV1.Routes(router)

	return router
}
