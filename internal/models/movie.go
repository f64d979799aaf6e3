// This file defines the core data structures (models) for the application.
// These structs represent the movies, episodes and actors in the catalog.

package models

import "time"

// Movie represents a single movie in the catalog. Genre and ReleaseDate are
// free text: genre may hold several comma-separated genres, release date may
// be a year or a range.
type Movie struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Genre        string     `json:"genre"`
	TotalEpisode int        `json:"total_episode"`
	Director     string     `json:"director"`
	Poster       string     `json:"poster,omitempty"`
	Trailer      string     `json:"trailer,omitempty"`
	Nation       string     `json:"nation"`
	ReleaseDate  string     `json:"release_date"`
	Rating       float64    `json:"rating"`
	TotalView    int64      `json:"total_view"`
	EpisodeCount int        `json:"episode_count"`      // derived at query time, never stored
	Episodes     []*Episode `json:"episodes,omitempty"` // omitempty hides it when not loaded
	Actors       []*Actor   `json:"actors,omitempty"`
	Reviews      []*Review  `json:"reviews,omitempty"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

// Complete reports whether the declared episode count has been reached.
// The data model does not enforce EpisodeCount <= TotalEpisode; the status is
// computed here from the two counters rather than stored.
func (m *Movie) Complete() bool {
	return m.EpisodeCount == m.TotalEpisode
}

// Episode is a single episode of a movie, owned by it (deleting the movie
// deletes its episodes).
type Episode struct {
	ID            int64     `json:"id"`
	MovieID       int64     `json:"movie_id"`
	EpisodeNumber int       `json:"episode_number"`
	Title         string    `json:"title"`
	VideoURL      string    `json:"video_url"`
	CreatedAt     time.Time `json:"-"`
}

// Actor is shared between movies through a join table, not owned by any one.
type Actor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Review is a user review of a movie.
type Review struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite marks a movie as a favorite of a user.
type Favorite struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchHistory records that a user watched an episode of a movie.
type WatchHistory struct {
	ID            int64     `json:"id"`
	MovieID       int64     `json:"movie_id"`
	UserID        int64     `json:"user_id"`
	EpisodeNumber int       `json:"episode_number"`
	WatchedAt     time.Time `json:"watched_at"`
}
