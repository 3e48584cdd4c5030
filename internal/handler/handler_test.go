package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rizalfh/movie-chat-api/internal/config"
	"github.com/rizalfh/movie-chat-api/internal/database"
	"github.com/rizalfh/movie-chat-api/internal/handler"
	"github.com/rizalfh/movie-chat-api/internal/repository"
	"github.com/rizalfh/movie-chat-api/internal/router"
)

const testImageBase = "https://image.tmdb.org/t/p/original"

// newTestServer wires the full application against an in-memory SQLite
// database: real repositories, real handlers, real routes. The stack is
// one SQL statement deep, so there is nothing worth mocking.
func newTestServer(t *testing.T) (*echo.Echo, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Bootstrap(context.Background(), db))
	_, err = db.Exec(`
		CREATE TABLE movies (
			id INTEGER PRIMARY KEY,
			adult BOOLEAN NOT NULL DEFAULT 0,
			backdrop_path TEXT,
			genre_ids TEXT NOT NULL DEFAULT '',
			origin_country TEXT NOT NULL DEFAULT '',
			original_language TEXT,
			original_name TEXT,
			original_title TEXT,
			overview TEXT,
			popularity REAL NOT NULL DEFAULT 0,
			poster_path TEXT,
			first_air_date TEXT,
			release_date TEXT,
			name TEXT,
			title TEXT,
			video BOOLEAN NOT NULL DEFAULT 0,
			vote_average REAL NOT NULL DEFAULT 0,
			vote_count INTEGER NOT NULL DEFAULT 0
		)`)
	require.NoError(t, err)

	// MinCost keeps the bcrypt rounds cheap for tests.
	cfg := config.Config{
		Port:         "0",
		BcryptCost:   bcrypt.MinCost,
		ImageBaseURL: testImageBase,
	}

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, repository.NewUserRepo(db)),
		handler.NewCatalogHandler(cfg, repository.NewMovieRepo(db)),
		handler.NewChatHandler(repository.NewChatRepo(db)),
	)
	return e, db
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type statusBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) statusBody {
	t.Helper()
	var b statusBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return b
}
