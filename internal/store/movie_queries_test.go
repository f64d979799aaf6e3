package store_test

import (
	"reflect"
	"testing"

	"github.com/kien091/movie-system/internal/models"
	"github.com/kien091/movie-system/internal/store"
	"github.com/kien091/movie-system/internal/testutil"
)

// seedCatalog inserts a small catalog with known counts, views and actors.
func seedCatalog(t *testing.T, s *store.Store) {
	t.Helper()
	testutil.SeedMovie(t, s, &models.Movie{
		Title: "Drama Series", Genre: "Drama", TotalEpisode: 12,
		Nation: "Hàn Quốc", ReleaseDate: "2021", Rating: 8.5, TotalView: 500,
	}, 12, "Song Kang")
	testutil.SeedMovie(t, s, &models.Movie{
		Title: "Action Series", Genre: "Drama,Action", TotalEpisode: 24,
		Nation: "Trung Quốc", ReleaseDate: "2020-2021", Rating: 7.0, TotalView: 900,
	}, 10, "Jackie Chan")
	testutil.SeedMovie(t, s, &models.Movie{
		Title: "Cartoon Feature", Genre: "Hoạt hình", TotalEpisode: 1,
		Nation: "Nhật Bản", ReleaseDate: "2019", Rating: 9.1, TotalView: 300,
	}, 1)
	testutil.SeedMovie(t, s, &models.Movie{
		Title: "Theatrical Feature", Genre: "Hành động", TotalEpisode: 1,
		Nation: "Âu Mỹ", ReleaseDate: "2022", Rating: 8.0, TotalView: 700,
	}, 1, "Tom Hardy")
}

func titles(movies []*models.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestFindAll(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))
	seedCatalog(t, s)

	movies, err := s.FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(movies) != 4 {
		t.Fatalf("expected 4 movies, got %d", len(movies))
	}

	// Natural store order is insertion order.
	want := []string{"Drama Series", "Action Series", "Cartoon Feature", "Theatrical Feature"}
	if !reflect.DeepEqual(titles(movies), want) {
		t.Errorf("unexpected order: %v", titles(movies))
	}

	// Episode counts are derived in the query.
	if movies[0].EpisodeCount != 12 || movies[1].EpisodeCount != 10 {
		t.Errorf("episode counts not loaded: %d, %d", movies[0].EpisodeCount, movies[1].EpisodeCount)
	}
	if !movies[0].Complete() {
		t.Error("movie with all episodes should be complete")
	}
	if movies[1].Complete() {
		t.Error("movie missing episodes should not be complete")
	}

	// Actor sets are attached for the search engine.
	if len(movies[0].Actors) != 1 || movies[0].Actors[0].Name != "Song Kang" {
		t.Errorf("actors not loaded: %+v", movies[0].Actors)
	}
	if len(movies[2].Actors) != 0 {
		t.Errorf("expected no actors on the cartoon, got %d", len(movies[2].Actors))
	}
}

func TestCategoryQueries(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))
	seedCatalog(t, s)

	t.Run("FindByGenre", func(t *testing.T) {
		movies, err := s.FindByGenre("Hoạt hình")
		if err != nil {
			t.Fatalf("FindByGenre failed: %v", err)
		}
		if want := []string{"Cartoon Feature"}; !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})

	t.Run("FindFeatureFilms", func(t *testing.T) {
		movies, err := s.FindFeatureFilms()
		if err != nil {
			t.Fatalf("FindFeatureFilms failed: %v", err)
		}
		if want := []string{"Cartoon Feature", "Theatrical Feature"}; !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})

	t.Run("FindCompleted", func(t *testing.T) {
		movies, err := s.FindCompleted()
		if err != nil {
			t.Fatalf("FindCompleted failed: %v", err)
		}
		want := []string{"Drama Series", "Cartoon Feature", "Theatrical Feature"}
		if !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})

	t.Run("FindTheatrical", func(t *testing.T) {
		movies, err := s.FindTheatrical()
		if err != nil {
			t.Fatalf("FindTheatrical failed: %v", err)
		}
		if want := []string{"Theatrical Feature"}; !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})
}

func TestTopQueries(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))
	seedCatalog(t, s)

	t.Run("TopByViews orders descending and limits", func(t *testing.T) {
		movies, err := s.TopByViews(2)
		if err != nil {
			t.Fatalf("TopByViews failed: %v", err)
		}
		want := []string{"Action Series", "Theatrical Feature"}
		if !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})

	t.Run("TopNewest returns latest insertions first", func(t *testing.T) {
		movies, err := s.TopNewest(2)
		if err != nil {
			t.Fatalf("TopNewest failed: %v", err)
		}
		want := []string{"Theatrical Feature", "Cartoon Feature"}
		if !reflect.DeepEqual(titles(movies), want) {
			t.Errorf("got %v, want %v", titles(movies), want)
		}
	})
}

func TestAggregates(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))
	seedCatalog(t, s)

	t.Run("AllGenres splits comma-separated values", func(t *testing.T) {
		genres, err := s.AllGenres()
		if err != nil {
			t.Fatalf("AllGenres failed: %v", err)
		}
		want := []string{"Action", "Drama", "Hoạt hình", "Hành động"}
		if !reflect.DeepEqual(genres, want) {
			t.Errorf("got %v, want %v", genres, want)
		}
	})

	t.Run("AllNations", func(t *testing.T) {
		nations, err := s.AllNations()
		if err != nil {
			t.Fatalf("AllNations failed: %v", err)
		}
		if len(nations) != 4 {
			t.Errorf("expected 4 distinct nations, got %v", nations)
		}
	})

	t.Run("AllReleaseDates", func(t *testing.T) {
		dates, err := s.AllReleaseDates()
		if err != nil {
			t.Fatalf("AllReleaseDates failed: %v", err)
		}
		want := []string{"2019", "2020-2021", "2021", "2022"}
		if !reflect.DeepEqual(dates, want) {
			t.Errorf("got %v, want %v", dates, want)
		}
	})
}

func TestGetMovieByID(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))
	seeded := testutil.SeedMovie(t, s, &models.Movie{
		Title: "Detail Movie", Genre: "Drama", TotalEpisode: 3,
	}, 3, "Lead Actor")

	t.Run("Loads episodes and actors", func(t *testing.T) {
		movie, err := s.GetMovieByID(seeded.ID)
		if err != nil {
			t.Fatalf("GetMovieByID failed: %v", err)
		}
		if len(movie.Episodes) != 3 {
			t.Errorf("expected 3 episodes, got %d", len(movie.Episodes))
		}
		if movie.Episodes[0].EpisodeNumber != 1 {
			t.Errorf("episodes not ordered by number: %+v", movie.Episodes[0])
		}
		if len(movie.Actors) != 1 {
			t.Errorf("expected 1 actor, got %d", len(movie.Actors))
		}
		if movie.EpisodeCount != 3 {
			t.Errorf("expected derived episode count 3, got %d", movie.EpisodeCount)
		}
	})

	t.Run("Missing movie returns an error", func(t *testing.T) {
		if _, err := s.GetMovieByID(9999); err == nil {
			t.Error("expected an error for a missing movie")
		}
	})
}
