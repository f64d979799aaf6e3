package catalog_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/kien091/movie-system/internal/catalog"
	"github.com/kien091/movie-system/internal/models"
)

func numberedMovies(n int) []*models.Movie {
	movies := make([]*models.Movie, 0, n)
	for i := 1; i <= n; i++ {
		movies = append(movies, &models.Movie{ID: int64(i), Title: fmt.Sprintf("Movie %d", i)})
	}
	return movies
}

func TestPaginate(t *testing.T) {
	t.Run("Slices and reports totals", func(t *testing.T) {
		movies := numberedMovies(35)
		page := catalog.Paginate(movies, 1, 16)
		if page.TotalElements != 35 {
			t.Errorf("expected 35 total elements, got %d", page.TotalElements)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", page.TotalPages)
		}
		if len(page.Items) != 16 {
			t.Errorf("expected 16 items on page 1, got %d", len(page.Items))
		}
		if page.Items[0].ID != 17 {
			t.Errorf("page 1 should start at movie 17, got %d", page.Items[0].ID)
		}
	})

	t.Run("Concatenating all pages reproduces the list", func(t *testing.T) {
		movies := numberedMovies(35)
		first := catalog.Paginate(movies, 0, 16)

		var all []*models.Movie
		for i := 0; i < first.TotalPages; i++ {
			all = append(all, catalog.Paginate(movies, i, 16).Items...)
		}
		if !reflect.DeepEqual(movieIDs(all), movieIDs(movies)) {
			t.Errorf("round trip lost or reordered elements: got %d items", len(all))
		}
	})

	t.Run("Empty list reports one empty page", func(t *testing.T) {
		page := catalog.Paginate(nil, 0, 16)
		if len(page.Items) != 0 {
			t.Errorf("expected no items, got %d", len(page.Items))
		}
		if page.TotalPages != 1 {
			t.Errorf("empty list should report 1 total page, got %d", page.TotalPages)
		}
		if page.TotalElements != 0 {
			t.Errorf("empty list should report 0 elements, got %d", page.TotalElements)
		}
	})

	t.Run("Out of range page index is empty, not an error", func(t *testing.T) {
		movies := numberedMovies(5)
		page := catalog.Paginate(movies, 7, 16)
		if len(page.Items) != 0 {
			t.Errorf("out-of-range page should be empty, got %d items", len(page.Items))
		}
		if page.TotalPages != 1 {
			t.Errorf("expected 1 total page, got %d", page.TotalPages)
		}
	})

	t.Run("Non-positive size falls back to the default", func(t *testing.T) {
		movies := numberedMovies(40)
		page := catalog.Paginate(movies, 0, 0)
		if page.PageSize != catalog.DefaultPageSize {
			t.Errorf("expected default page size %d, got %d", catalog.DefaultPageSize, page.PageSize)
		}
		if len(page.Items) != catalog.DefaultPageSize {
			t.Errorf("expected %d items, got %d", catalog.DefaultPageSize, len(page.Items))
		}
	})

	t.Run("Negative page index is clamped to zero", func(t *testing.T) {
		movies := numberedMovies(3)
		page := catalog.Paginate(movies, -2, 16)
		if page.PageIndex != 0 {
			t.Errorf("expected page index 0, got %d", page.PageIndex)
		}
		if len(page.Items) != 3 {
			t.Errorf("expected all 3 items, got %d", len(page.Items))
		}
	})
}
