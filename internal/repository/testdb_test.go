package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/rizalfh/movie-chat-api/internal/database"
)

// newTestDB opens an in-memory SQLite database with the full schema,
// including the movies table that production assumes pre-exists. The pool
// is pinned to one connection so every statement sees the same in-memory
// database.
func newTestDB(t *testing.T) *sql.DB {
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
	return db
}
