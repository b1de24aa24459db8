package manager

import "github.com/kasuboski/moviedb/pkg/collection"

// AddMovieRequest describes a manually entered movie.
// Poster is free-form, a url or a path. An empty Poster is stored as null.
type AddMovieRequest struct {
	Title  string  `json:"title" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
	Year   int     `json:"year" validate:"gte=1000,lte=9999"`
	Poster string  `json:"poster"`
}

// UpdateMovieRequest replaces the rating of an existing movie.
type UpdateMovieRequest struct {
	Title  string  `json:"title" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
}

// FilterRequest bounds a filter query. A nil bound means unbounded on that side.
type FilterRequest struct {
	MinRating *float64 `json:"minRating,omitempty" validate:"omitempty,gte=0,lte=10"`
	StartYear *int     `json:"startYear,omitempty" validate:"omitempty,gte=1000,lte=9999"`
	EndYear   *int     `json:"endYear,omitempty" validate:"omitempty,gte=1000,lte=9999"`
}

// rounded returns a copy with the rating bound rounded to one decimal
func (f FilterRequest) rounded() FilterRequest {
	if f.MinRating != nil {
		r := collection.RoundRating(*f.MinRating)
		f.MinRating = &r
	}
	return f
}

// bounds resolves nil bounds to the widest allowed range
func (f FilterRequest) bounds() (minRating float64, startYear, endYear int) {
	minRating, startYear, endYear = collection.MinRating, collection.MinYear, collection.MaxYear
	if f.MinRating != nil {
		minRating = *f.MinRating
	}
	if f.StartYear != nil {
		startYear = *f.StartYear
	}
	if f.EndYear != nil {
		endYear = *f.EndYear
	}
	return minRating, startYear, endYear
}

// SortKey selects the attribute a listing is ordered by
type SortKey string

const (
	SortByRating SortKey = "rating"
	SortByYear   SortKey = "year"
)

// ParseSortKey accepts the sort keys understood by SortMovies
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByRating, SortByYear:
		return SortKey(s), true
	default:
		return "", false
	}
}
