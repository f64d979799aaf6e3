package catalog

import "github.com/kien091/movie-system/internal/models"

// CartoonGenre is the genre marker the original catalog uses for cartoons.
const CartoonGenre = "Hoạt hình"

// CategoryKind identifies which catalog slice a category token selects.
type CategoryKind int

const (
	// CategoryUnknown is returned for tokens outside the fixed vocabulary.
	// The label echoes the token and the caller decides what to serve.
	CategoryUnknown CategoryKind = iota
	CategorySeries
	CategoryFeatureFilm
	CategoryComplete
	CategoryTheatrical
	CategoryCartoon
)

// Category is the resolved form of a category token: a navigation label plus
// the kind the store/engine uses to pick the matching query.
type Category struct {
	Token string       `json:"token"`
	Label string       `json:"label"`
	Kind  CategoryKind `json:"-"`
}

// ResolveCategory maps a category token to its navigation label and query
// kind. Unknown tokens are not an error; they pass through verbatim.
func ResolveCategory(token string) Category {
	switch token {
	case "series":
		return Category{Token: token, Label: "Series", Kind: CategorySeries}
	case "feature-film":
		return Category{Token: token, Label: "Feature film", Kind: CategoryFeatureFilm}
	case "complete":
		return Category{Token: token, Label: "Completed", Kind: CategoryComplete}
	case "english-language-films":
		return Category{Token: token, Label: "Theatrical", Kind: CategoryTheatrical}
	case "cartoon":
		return Category{Token: token, Label: "Cartoon", Kind: CategoryCartoon}
	default:
		return Category{Token: token, Label: token, Kind: CategoryUnknown}
	}
}

// IsSeries reports whether a movie belongs to the "series" bucket.
func IsSeries(m *models.Movie) bool {
	return m.TotalEpisode > 1
}

// FilterSeries keeps only the movies with more than one declared episode.
func FilterSeries(movies []*models.Movie) []*models.Movie {
	result := make([]*models.Movie, 0, len(movies))
	for _, m := range movies {
		if IsSeries(m) {
			result = append(result, m)
		}
	}
	return result
}
