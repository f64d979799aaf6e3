// To handle all database interactions. This is our data access layer,
// keeping SQL queries separate from business logic. This file holds the
// write/update operations; read queries for the API live in movie_queries.go.

package store

import (
	"database/sql"
	"time"

	"github.com/kien091/movie-system/internal/models"
)

// Store provides all functions to interact with the database.
type Store struct {
	db *sql.DB
}

// New creates a new Store instance.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateMovie inserts a new movie and returns it with its assigned ID.
func (s *Store) CreateMovie(m *models.Movie) (*models.Movie, error) {
	query := `
        INSERT INTO movies
        (title, description, genre, total_episode, director, poster, trailer, nation, release_date, rating, total_view, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	now := time.Now()
	res, err := s.db.Exec(query, m.Title, m.Description, m.Genre, m.TotalEpisode, m.Director,
		m.Poster, m.Trailer, m.Nation, m.ReleaseDate, m.Rating, m.TotalView, now, now)
	if err != nil {
		return nil, err
	}
	m.ID, _ = res.LastInsertId()
	m.CreatedAt = now
	m.UpdatedAt = now
	return m, nil
}

// DeleteMovie removes a movie. The schema's ON DELETE CASCADE takes its
// episodes, reviews, favorites and watch history with it; actor rows survive
// because they are only linked through the join table.
func (s *Store) DeleteMovie(id int64) error {
	_, err := s.db.Exec("DELETE FROM movies WHERE id = ?", id)
	return err
}

// AddEpisode appends an episode to a movie.
func (s *Store) AddEpisode(movieID int64, episodeNumber int, title, videoURL string) (*models.Episode, error) {
	query := "INSERT INTO episodes (movie_id, episode_number, title, video_url, created_at) VALUES (?, ?, ?, ?, ?)"
	res, err := s.db.Exec(query, movieID, episodeNumber, title, videoURL, time.Now())
	if err != nil {
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &models.Episode{
		ID:            id,
		MovieID:       movieID,
		EpisodeNumber: episodeNumber,
		Title:         title,
		VideoURL:      videoURL,
	}, nil
}

// GetOrCreateActor finds an actor by name or creates it if it doesn't exist.
func (s *Store) GetOrCreateActor(name string) (*models.Actor, error) {
	var actor models.Actor
	err := s.db.QueryRow("SELECT id, name FROM actors WHERE name = ?", name).Scan(&actor.ID, &actor.Name)
	if err == sql.ErrNoRows {
		res, err := s.db.Exec("INSERT INTO actors (name) VALUES (?)", name)
		if err != nil {
			return nil, err
		}
		actor.ID, _ = res.LastInsertId()
		actor.Name = name
		return &actor, nil
	} else if err != nil {
		return nil, err
	}
	return &actor, nil
}

// AssignActor links an actor to a movie. Assigning the same pair twice is
// not an error.
func (s *Store) AssignActor(movieID, actorID int64) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO movie_actors (movie_id, actor_id) VALUES (?, ?)", movieID, actorID)
	return err
}

// AddReview stores a user review of a movie.
func (s *Store) AddReview(movieID, userID int64, content string) (*models.Review, error) {
	query := "INSERT INTO reviews (movie_id, user_id, content, created_at) VALUES (?, ?, ?, ?)"
	now := time.Now()
	res, err := s.db.Exec(query, movieID, userID, content, now)
	if err != nil {
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &models.Review{ID: id, MovieID: movieID, UserID: userID, Content: content, CreatedAt: now}, nil
}

// AddFavorite marks a movie as a favorite of a user. Favoriting twice is a
// no-op.
func (s *Store) AddFavorite(movieID, userID int64) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO favorites (movie_id, user_id, created_at) VALUES (?, ?, ?)",
		movieID, userID, time.Now())
	return err
}

// RemoveFavorite deletes a favorite mark.
func (s *Store) RemoveFavorite(movieID, userID int64) error {
	_, err := s.db.Exec("DELETE FROM favorites WHERE movie_id = ? AND user_id = ?", movieID, userID)
	return err
}

// RecordWatch appends a watch history entry for a user and episode.
func (s *Store) RecordWatch(movieID, userID int64, episodeNumber int) error {
	_, err := s.db.Exec("INSERT INTO watch_history (movie_id, user_id, episode_number, watched_at) VALUES (?, ?, ?, ?)",
		movieID, userID, episodeNumber, time.Now())
	return err
}

// IncrementViewCount bumps a movie's view counter with a single atomic
// update statement.
func (s *Store) IncrementViewCount(movieID int64) error {
	_, err := s.db.Exec("UPDATE movies SET total_view = total_view + 1 WHERE id = ?", movieID)
	return err
}

// UpdateRating replaces a movie's aggregate rating.
func (s *Store) UpdateRating(movieID int64, rating float64) error {
	_, err := s.db.Exec("UPDATE movies SET rating = ?, updated_at = ? WHERE id = ?", rating, time.Now(), movieID)
	return err
}
