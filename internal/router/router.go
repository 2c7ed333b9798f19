// Package router assembles the HTTP surface of the service: public short-link
// routes, the auth group and the token-guarded user operations.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/middlewares"
)

// Handlers carries the endpoint handlers the router wires up.
type Handlers struct {
	Register  http.HandlerFunc
	Login     http.HandlerFunc
	Refresh   http.HandlerFunc
	Logout    http.HandlerFunc
	Shorten   http.HandlerFunc
	Resolve   http.HandlerFunc
	Redirect  http.HandlerFunc
	ListURLs  http.HandlerFunc
	UpdateURL http.HandlerFunc
	DeleteURL http.HandlerFunc
}

// New builds the chi router. The identity middleware runs on every route and
// never rejects; routes that need a caller add RequireAuth. The auth group
// additionally runs each request inside a database transaction.
func New(
	db *sqlx.DB,
	tokens middlewares.TokenVerifier,
	users middlewares.UserValidator,
	h Handlers,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.AuthMiddleware(tokens, users))

	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)
			r.Post("/logout", h.Logout)
		})
	})

	r.Post("/url", h.Shorten)
	r.Get("/resolve/{shortCode}", h.Resolve)

	r.Route("/user-operations", func(r chi.Router) {
		r.Use(middlewares.RequireAuth)

		r.Get("/urls", h.ListURLs)
		r.Patch("/urls/{id}", h.UpdateURL)
		r.Delete("/urls/{id}", h.DeleteURL)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Registered last so the wildcard cannot shadow the fixed routes above.
	r.Get("/{shortCode}", h.Redirect)

	return r
}
