package catalog

import "github.com/kien091/movie-system/internal/models"

// DefaultPageSize is used when a request does not specify a page size.
const DefaultPageSize = 16

// Page is one slice of a movie list plus the metadata needed to render
// pagination controls.
type Page struct {
	Items         []*models.Movie `json:"items"`
	PageIndex     int             `json:"page_index"`
	PageSize      int             `json:"page_size"`
	TotalElements int             `json:"total_elements"`
	TotalPages    int             `json:"total_pages"`
}

// Paginate slices movies into the zero-based page of the given size.
// TotalPages is ceil(len/size) with a floor of one, so even an empty list
// reports a single empty page and page 0 is always addressable. A page index
// past the end yields empty Items rather than an error, and a non-positive
// size falls back to DefaultPageSize.
func Paginate(movies []*models.Movie, pageIndex, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageIndex < 0 {
		pageIndex = 0
	}

	total := len(movies)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := pageIndex * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]*models.Movie, 0, end-start)
	items = append(items, movies[start:end]...)

	return Page{
		Items:         items,
		PageIndex:     pageIndex,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
