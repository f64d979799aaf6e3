package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/kien091/movie-system/internal/catalog"
	"github.com/kien091/movie-system/internal/models"
)

const (
	carouselSize    = 16
	sidebarTopCount = 6
)

// sidebar holds the aggregates shown next to every catalog view.
type sidebar struct {
	Genres       []string        `json:"genres"`
	ReleaseDates []string        `json:"release_dates"`
	Nations      []string        `json:"nations"`
	TopNewest    []*models.Movie `json:"top_newest"`
	TopFavorite  []*models.Movie `json:"top_favorite"`
}

// catalogPage is the payload for all catalog views. How it is displayed is
// up to the client.
type catalogPage struct {
	Navigation    string          `json:"navigation"`
	Category      string          `json:"category,omitempty"`
	Page          catalog.Page    `json:"page"`
	Carousel      []*models.Movie `json:"carousel"`
	Cartoon       []*models.Movie `json:"cartoon,omitempty"`
	Sidebar       sidebar         `json:"sidebar"`
	Authenticated bool            `json:"authenticated"`
}

// getPageParams extracts the zero-based page index and the page size.
func getPageParams(r *http.Request) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = catalog.DefaultPageSize
	}
	return
}

// buildSidebar assembles the aggregate lists shared by every catalog view.
func (s *Server) buildSidebar() (sidebar, error) {
	genres, err := s.store.AllGenres()
	if err != nil {
		return sidebar{}, err
	}
	releaseDates, err := s.store.AllReleaseDates()
	if err != nil {
		return sidebar{}, err
	}
	nations, err := s.store.AllNations()
	if err != nil {
		return sidebar{}, err
	}
	topNewest, err := s.store.TopNewest(sidebarTopCount)
	if err != nil {
		return sidebar{}, err
	}
	topFavorite, err := s.store.TopByViews(carouselSize)
	if err != nil {
		return sidebar{}, err
	}
	return sidebar{
		Genres:       genres,
		ReleaseDates: releaseDates,
		Nations:      nations,
		TopNewest:    topNewest,
		TopFavorite:  topFavorite,
	}, nil
}

// respondCatalogPage paginates the movie list and wraps it with the sidebar
// aggregates and the session flag.
func (s *Server) respondCatalogPage(w http.ResponseWriter, r *http.Request, navigation, category string, movies []*models.Movie, extra func(*catalogPage)) {
	page, size := getPageParams(r)

	side, err := s.buildSidebar()
	if err != nil {
		log.Printf("Failed to build sidebar aggregates: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	payload := catalogPage{
		Navigation:    navigation,
		Category:      category,
		Page:          catalog.Paginate(movies, page, size),
		Carousel:      side.TopFavorite,
		Sidebar:       side,
		Authenticated: getUserFromContext(r) != nil,
	}
	if extra != nil {
		extra(&payload)
	}
	RespondWithJSON(w, http.StatusOK, payload)
}

// handleHome serves the full catalog view: the series section, the cartoon
// section and the default sidebar aggregates.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	movies, err := s.store.FindAll()
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}
	cartoon, err := s.store.FindByGenre(catalog.CartoonGenre)
	if err != nil {
		log.Printf("Failed to load cartoon section: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	series := catalog.FilterSeries(movies)
	s.respondCatalogPage(w, r, "Series", "", series, func(p *catalogPage) {
		p.Cartoon = cartoon
	})
}

// handleFilterByCategory serves one predefined catalog slice, selected by
// the category token.
func (s *Server) handleFilterByCategory(w http.ResponseWriter, r *http.Request) {
	cat := catalog.ResolveCategory(r.URL.Query().Get("category"))

	var movies []*models.Movie
	var err error
	switch cat.Kind {
	case catalog.CategorySeries:
		movies, err = s.store.FindAll()
		if err == nil {
			movies = catalog.FilterSeries(movies)
		}
	case catalog.CategoryFeatureFilm:
		movies, err = s.store.FindFeatureFilms()
	case catalog.CategoryComplete:
		movies, err = s.store.FindCompleted()
	case catalog.CategoryTheatrical:
		movies, err = s.store.FindTheatrical()
	case catalog.CategoryCartoon:
		movies, err = s.store.FindByGenre(catalog.CartoonGenre)
	default:
		// Unknown token: the label passes through verbatim and the whole
		// catalog is served.
		movies, err = s.store.FindAll()
	}
	if err != nil {
		log.Printf("Failed to load category %q: %v", cat.Token, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	s.respondCatalogPage(w, r, cat.Label, cat.Token, movies, nil)
}

// handleSearch serves the free-text search view.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")

	movies, err := s.store.FindAll()
	if err != nil {
		log.Printf("Failed to load catalog for search: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	results := catalog.Search(movies, query)
	navigation := fmt.Sprintf("Kết quả tìm kiếm: %q", query)
	s.respondCatalogPage(w, r, navigation, "search", results, nil)
}

// handleFilterByCriteria serves the multi-criteria filtered view. Unknown
// status/sort tokens degrade to no-op per the permissive parsers.
func (s *Server) handleFilterByCriteria(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := catalog.Criteria{
		Status: catalog.ParseStatus(q.Get("status")),
		Genre:  q.Get("genre"),
		Year:   q.Get("year"),
	}
	sortBy := catalog.ParseSort(q.Get("sort"))

	movies, err := s.store.FindAll()
	if err != nil {
		log.Printf("Failed to load catalog for filtering: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	filtered := catalog.SortMovies(catalog.Filter(movies, criteria), sortBy)
	s.respondCatalogPage(w, r, "Kết quả lọc", "search", filtered, nil)
}
