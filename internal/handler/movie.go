package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rizalfh/movie-chat-api/internal/config"
	"github.com/rizalfh/movie-chat-api/internal/repository"
)

// CatalogHandler serves the read-only movie catalog.
type CatalogHandler struct {
	Cfg    config.Config
	Movies *repository.MovieRepo
}

func NewCatalogHandler(cfg config.Config, m *repository.MovieRepo) *CatalogHandler {
	return &CatalogHandler{Cfg: cfg, Movies: m}
}

// ListMovies returns every movie row, with backdrop and poster paths
// rewritten from TMDB-relative paths to absolute URLs. Null paths stay
// null.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
	}

	for i := range movies {
		if p := movies[i].BackdropPath; p != nil {
			abs := h.Cfg.ImageBaseURL + *p
			movies[i].BackdropPath = &abs
		}
		if p := movies[i].PosterPath; p != nil {
			abs := h.Cfg.ImageBaseURL + *p
			movies[i].PosterPath = &abs
		}
	}
	return c.JSON(http.StatusOK, movies)
}
