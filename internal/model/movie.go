package model

// Movie mirrors the externally populated `movies` table and is serialized
// straight into the /movies response. The schema accommodates both movie
// and TV shaped records from a TMDB export, hence the duplicated
// name/title and air/release date columns. Nullable columns are pointers
// and serialize as JSON null when absent.
type Movie struct {
	ID               int64   `json:"id"`
	Adult            bool    `json:"adult"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIDs         string  `json:"genre_ids"`
	OriginCountry    string  `json:"origin_country"`
	OriginalLanguage *string `json:"original_language"`
	OriginalName     *string `json:"original_name"`
	OriginalTitle    *string `json:"original_title"`
	Overview         *string `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path"`
	FirstAirDate     *string `json:"first_air_date"`
	ReleaseDate      *string `json:"release_date"`
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}
