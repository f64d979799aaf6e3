// The filter/sort engine for the movie catalog. All functions here are pure:
// they only read the slice they are given and always return a fresh slice, so
// they are safe to call concurrently from multiple requests.

package catalog

import (
	"sort"
	"strings"

	"github.com/kien091/movie-system/internal/models"
)

// Status narrows movies by their completion state, which is derived from the
// loaded episode count versus the declared total, never stored.
type Status int

const (
	StatusAny Status = iota
	StatusComplete
	StatusInProgress
)

// ParseStatus maps a request token to a Status. Unrecognized tokens fall back
// to StatusAny so a typo degrades to "no filtering" rather than an error.
// The Vietnamese tokens are kept for compatibility with the original site.
func ParseStatus(token string) Status {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "complete", "hoàn thành":
		return StatusComplete
	case "in-progress", "đang tiến hành":
		return StatusInProgress
	default:
		return StatusAny
	}
}

// Sort selects the comparator applied after filtering.
type Sort int

const (
	SortNone Sort = iota
	SortViews
	SortRating
)

// ParseSort maps a request token to a Sort, falling back to SortNone.
func ParseSort(token string) Sort {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "views", "lượt xem":
		return SortViews
	case "rating", "đánh giá":
		return SortRating
	default:
		return SortNone
	}
}

// Criteria is a set of optional filters combined with logical AND. Genre and
// Year are case-insensitive substring matches; the empty string and the
// "all" sentinels mean no constraint.
type Criteria struct {
	Status Status
	Genre  string
	Year   string
}

// noConstraint reports whether a text criterion should be skipped.
func noConstraint(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || v == "all" || v == "tất cả"
}

// Filter returns the movies satisfying every criterion in c, preserving the
// input order.
func Filter(movies []*models.Movie, c Criteria) []*models.Movie {
	result := make([]*models.Movie, 0, len(movies))
	for _, m := range movies {
		if !matches(m, c) {
			continue
		}
		result = append(result, m)
	}
	return result
}

func matches(m *models.Movie, c Criteria) bool {
	switch c.Status {
	case StatusComplete:
		if m.EpisodeCount != m.TotalEpisode {
			return false
		}
	case StatusInProgress:
		if m.EpisodeCount >= m.TotalEpisode {
			return false
		}
	}
	if !noConstraint(c.Genre) && !containsFold(m.Genre, c.Genre) {
		return false
	}
	if !noConstraint(c.Year) && !containsFold(m.ReleaseDate, c.Year) {
		return false
	}
	return true
}

// Search returns the movies where any of title, genre, director, nation,
// release date or an actor name contains the query, case-insensitively. An
// empty query matches everything.
func Search(movies []*models.Movie, query string) []*models.Movie {
	result := make([]*models.Movie, 0, len(movies))
	for _, m := range movies {
		if !matchesQuery(m, query) {
			continue
		}
		result = append(result, m)
	}
	return result
}

func matchesQuery(m *models.Movie, query string) bool {
	if containsFold(m.Title, query) ||
		containsFold(m.Genre, query) ||
		containsFold(m.Director, query) ||
		containsFold(m.Nation, query) ||
		containsFold(m.ReleaseDate, query) {
		return true
	}
	for _, actor := range m.Actors {
		if containsFold(actor.Name, query) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring test. strings.ToLower is
// locale-independent in Go, so "ACTION" and "action" always compare equal.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SortMovies returns a copy of movies ordered by the given sort key,
// descending. The sort is stable, so ties keep their relative input order.
// SortNone returns the copy unordered.
func SortMovies(movies []*models.Movie, by Sort) []*models.Movie {
	sorted := make([]*models.Movie, len(movies))
	copy(sorted, movies)
	switch by {
	case SortViews:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalView > sorted[j].TotalView
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}
	return sorted
}
