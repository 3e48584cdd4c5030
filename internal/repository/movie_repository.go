package repository

import (
	"context"
	"database/sql"

	"github.com/rizalfh/movie-chat-api/internal/model"
)

type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// ListAll returns every movie row. The table is read-only from this
// service's perspective and no pagination is applied.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT
			id, adult, backdrop_path, genre_ids, origin_country,
			original_language, original_name, original_title,
			overview, popularity, poster_path, first_air_date,
			release_date, name, title, video, vote_average, vote_count
		FROM movies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(
			&m.ID, &m.Adult, &m.BackdropPath, &m.GenreIDs, &m.OriginCountry,
			&m.OriginalLanguage, &m.OriginalName, &m.OriginalTitle,
			&m.Overview, &m.Popularity, &m.PosterPath, &m.FirstAirDate,
			&m.ReleaseDate, &m.Name, &m.Title, &m.Video, &m.VoteAverage, &m.VoteCount,
		); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
