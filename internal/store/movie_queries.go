// Read queries for the API. This keeps store.go focused on write/update
// operations. Every movie row comes back with its episode count computed in
// the query, so "complete" versus "in progress" is always derived fresh.

package store

import (
	"database/sql"
	"sort"
	"strings"

	"github.com/kien091/movie-system/internal/models"
)

const movieColumns = `
        m.id, m.title, m.description, m.genre, m.total_episode, m.director,
        m.poster, m.trailer, m.nation, m.release_date, m.rating, m.total_view,
        COUNT(e.id) AS episode_count, m.created_at, m.updated_at
`

const movieBaseQuery = `
    SELECT ` + movieColumns + `
    FROM movies m
    LEFT JOIN episodes e ON e.movie_id = m.id
`

// FindAll fetches every movie in natural store order (insertion/id order),
// with episode counts and actor sets loaded for the filter engine.
func (s *Store) FindAll() ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery + " GROUP BY m.id ORDER BY m.id")
}

// FindByGenre fetches movies whose genre contains the given text,
// case-insensitively.
func (s *Store) FindByGenre(genre string) ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery+" WHERE m.genre LIKE ? GROUP BY m.id ORDER BY m.id", "%"+genre+"%")
}

// FindFeatureFilms fetches the single-episode movies.
func (s *Store) FindFeatureFilms() ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery + " WHERE m.total_episode <= 1 GROUP BY m.id ORDER BY m.id")
}

// FindCompleted fetches movies whose episode count has reached the declared
// total.
func (s *Store) FindCompleted() ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery + " GROUP BY m.id HAVING COUNT(e.id) = m.total_episode ORDER BY m.id")
}

// FindTheatrical fetches the western theatrical releases, which the catalog
// buckets under the "Âu Mỹ" nation value.
func (s *Store) FindTheatrical() ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery+" WHERE m.nation = ? GROUP BY m.id ORDER BY m.id", "Âu Mỹ")
}

// TopByViews fetches the most-viewed movies, used for the favorite carousel.
func (s *Store) TopByViews(limit int) ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery+" GROUP BY m.id ORDER BY m.total_view DESC LIMIT ?", limit)
}

// TopNewest fetches the most recently added movies for the sidebar.
func (s *Store) TopNewest(limit int) ([]*models.Movie, error) {
	return s.queryMovies(movieBaseQuery+" GROUP BY m.id ORDER BY m.created_at DESC, m.id DESC LIMIT ?", limit)
}

// GetMovieByID fetches a single movie with its episodes, actors and reviews.
func (s *Store) GetMovieByID(id int64) (*models.Movie, error) {
	movies, err := s.queryMovies(movieBaseQuery+" WHERE m.id = ? GROUP BY m.id", id)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, sql.ErrNoRows
	}
	movie := movies[0]

	rows, err := s.db.Query(
		"SELECT id, episode_number, title, video_url FROM episodes WHERE movie_id = ? ORDER BY episode_number", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ep models.Episode
		if err := rows.Scan(&ep.ID, &ep.EpisodeNumber, &ep.Title, &ep.VideoURL); err != nil {
			return nil, err
		}
		ep.MovieID = id
		movie.Episodes = append(movie.Episodes, &ep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reviewRows, err := s.db.Query(
		"SELECT id, user_id, content, created_at FROM reviews WHERE movie_id = ? ORDER BY created_at DESC", id)
	if err != nil {
		return nil, err
	}
	defer reviewRows.Close()
	for reviewRows.Next() {
		var rv models.Review
		if err := reviewRows.Scan(&rv.ID, &rv.UserID, &rv.Content, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rv.MovieID = id
		movie.Reviews = append(movie.Reviews, &rv)
	}
	return movie, reviewRows.Err()
}

// AllGenres returns the distinct genres across the catalog, sorted. The
// genre column is free text that may hold several comma-separated genres, so
// the distinct column values are split and deduplicated here.
func (s *Store) AllGenres() ([]string, error) {
	values, err := s.distinctColumn("genre")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var genres []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			genre := strings.TrimSpace(part)
			if genre == "" || seen[genre] {
				continue
			}
			seen[genre] = true
			genres = append(genres, genre)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// AllNations returns the distinct nation values, sorted.
func (s *Store) AllNations() ([]string, error) {
	return s.distinctColumn("nation")
}

// AllReleaseDates returns the distinct release date strings, sorted.
func (s *Store) AllReleaseDates() ([]string, error) {
	return s.distinctColumn("release_date")
}

func (s *Store) distinctColumn(column string) ([]string, error) {
	// column is one of a fixed set of identifiers above, never user input.
	rows, err := s.db.Query("SELECT DISTINCT " + column + " FROM movies WHERE " + column + " != '' ORDER BY " + column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

// queryMovies runs a movie query and attaches the actor sets in a second
// query, keeping the round trips at two regardless of catalog size.
func (s *Store) queryMovies(query string, args ...interface{}) ([]*models.Movie, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*models.Movie
	byID := make(map[int64]*models.Movie)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.Genre, &m.TotalEpisode, &m.Director,
			&m.Poster, &m.Trailer, &m.Nation, &m.ReleaseDate, &m.Rating, &m.TotalView,
			&m.EpisodeCount, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		movies = append(movies, &m)
		byID[m.ID] = &m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return movies, nil
	}

	actorRows, err := s.db.Query(`
        SELECT ma.movie_id, a.id, a.name
        FROM movie_actors ma
        JOIN actors a ON a.id = ma.actor_id
        ORDER BY a.name
    `)
	if err != nil {
		return nil, err
	}
	defer actorRows.Close()
	for actorRows.Next() {
		var movieID int64
		var actor models.Actor
		if err := actorRows.Scan(&movieID, &actor.ID, &actor.Name); err != nil {
			return nil, err
		}
		if m, ok := byID[movieID]; ok {
			m.Actors = append(m.Actors, &actor)
		}
	}
	return movies, actorRows.Err()
}
