package models

// Sortable fields accepted by the catalog service.
const (
	SortByTitle       = "title"
	SortByPublisher   = "publisher"
	SortByReleaseDate = "releaseDate"
	SortByRating      = "rating"
	SortByPrice       = "price"
)

// DefaultSortField is the canonical sort applied when none is chosen.
const DefaultSortField = SortByTitle

// SortFields lists the sortable fields in display order.
var SortFields = []string{
	SortByTitle,
	SortByPublisher,
	SortByReleaseDate,
	SortByRating,
	SortByPrice,
}

// IsSortField reports whether the service accepts field as a sort key.
func IsSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// DefaultPageSize is the page size applied when none is chosen.
const DefaultPageSize = 10

// PageSizes lists the page sizes the service supports.
var PageSizes = []int{5, 10, 20, 50}

// IsPageSize reports whether the service supports size as a page size.
func IsPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Genres is the pick-list offered by the edit surface.
var Genres = []string{
	"Action", "Adventure", "RPG", "Strategy", "Sports", "Racing",
	"Simulation", "Puzzle", "Fighting", "Action-Adventure", "Action RPG",
}

// Platforms is the pick-list offered by the edit surface.
var Platforms = []string{
	"PC", "PlayStation 5", "PlayStation 4", "Xbox Series X/S", "Xbox One",
	"Nintendo Switch", "Multi-platform", "Mobile",
}
