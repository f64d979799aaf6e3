package testutil

import (
	"testing"

	"github.com/kien091/movie-system/internal/models"
	"github.com/kien091/movie-system/internal/store"
)

// SeedMovie inserts a movie with the given number of episodes and actor
// names, returning it with its assigned ID.
func SeedMovie(t *testing.T, st *store.Store, movie *models.Movie, episodes int, actorNames ...string) *models.Movie {
	t.Helper()

	created, err := st.CreateMovie(movie)
	if err != nil {
		t.Fatalf("Failed to seed movie %q: %v", movie.Title, err)
	}
	for i := 1; i <= episodes; i++ {
		if _, err := st.AddEpisode(created.ID, i, "", ""); err != nil {
			t.Fatalf("Failed to seed episode %d of %q: %v", i, movie.Title, err)
		}
	}
	for _, name := range actorNames {
		actor, err := st.GetOrCreateActor(name)
		if err != nil {
			t.Fatalf("Failed to seed actor %q: %v", name, err)
		}
		if err := st.AssignActor(created.ID, actor.ID); err != nil {
			t.Fatalf("Failed to assign actor %q: %v", name, err)
		}
	}
	created.EpisodeCount = episodes
	return created
}
