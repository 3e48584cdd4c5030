package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/rizalfh/movie-chat-api/internal/handler"
)

// RegisterRoutes maps every endpoint onto the provided Echo instance.
// There are no route groups and no auth middleware: every endpoint is
// public, and the only state a handler touches is the shared store.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, m *handler.CatalogHandler, ch *handler.ChatHandler) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Read-only movie catalog.
	e.GET("/movies", m.ListMovies)

	// Account endpoints. Register and login carry credentials; logout
	// only carries the claimed username.
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)

	// Per-movie chat log: post a message, read a movie's history.
	e.POST("/chat", ch.PostChat)
	e.GET("/chat/:movie_id", ch.ListChats)
}
