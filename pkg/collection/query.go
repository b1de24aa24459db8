package collection

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Rated pairs a title with its rating.
type Rated struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

// Stats summarizes the ratings of a collection. Average and Median are nil
// for an empty collection.
type Stats struct {
	Total   int      `json:"total"`
	Average *float64 `json:"average"`
	Median  *float64 `json:"median"`
	Best    []Rated  `json:"best"`
	Worst   []Rated  `json:"worst"`
}

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

// AverageRating returns the mean rating rounded to one decimal. ok is false
// for an empty collection.
func AverageRating(c Collection) (avg float64, ok bool) {
	if c.Len() == 0 {
		return 0, false
	}

	var sum float64
	for _, m := range c.Movies() {
		sum += m.Rating
	}
	return RoundRating(sum / float64(c.Len())), true
}

// MedianRating returns the median rating rounded to one decimal. ok is false
// for an empty collection.
func MedianRating(c Collection) (median float64, ok bool) {
	n := c.Len()
	if n == 0 {
		return 0, false
	}

	ratings := make([]float64, 0, n)
	for _, m := range c.Movies() {
		ratings = append(ratings, m.Rating)
	}
	slices.Sort(ratings)

	if n%2 == 1 {
		return RoundRating(ratings[n/2]), true
	}
	return RoundRating((ratings[n/2-1] + ratings[n/2]) / 2), true
}

// BestRated returns every movie sharing the highest rating, in iteration order.
func BestRated(c Collection) []Rated {
	return extremes(c, func(a, b float64) bool { return a > b })
}

// WorstRated returns every movie sharing the lowest rating, in iteration order.
func WorstRated(c Collection) []Rated {
	return extremes(c, func(a, b float64) bool { return a < b })
}

// extremes scans once, restarting the result whenever a strictly better
// rating shows up and appending ties as they are found.
func extremes(c Collection, better func(a, b float64) bool) []Rated {
	out := []Rated{}
	for _, m := range c.Movies() {
		switch {
		case len(out) == 0 || better(m.Rating, out[0].Rating):
			out = append(out[:0], Rated{Title: m.Title, Rating: m.Rating})
		case m.Rating == out[0].Rating:
			out = append(out, Rated{Title: m.Title, Rating: m.Rating})
		}
	}
	return out
}

// RandomMovie picks one movie uniformly. A nil picker uses the global source.
func RandomMovie(c Collection, p Picker) (Movie, error) {
	if c.Len() == 0 {
		return Movie{}, ErrEmptyCollection
	}
	if p == nil {
		p = globalPicker{}
	}

	titles := c.titles
	m, _ := c.Get(titles[p.IntN(len(titles))])
	return m, nil
}

// FindBySubstring returns the movies whose title contains query, ignoring
// case. An empty query matches everything.
func FindBySubstring(c Collection, query string) Collection {
	fold := cases.Fold()
	needle := fold.String(query)

	found := New()
	for _, m := range c.Movies() {
		if strings.Contains(fold.String(m.Title), needle) {
			found.Set(m)
		}
	}
	return found
}

// SortByRating stable-sorts the movies by rating.
func SortByRating(c Collection, descending bool) []Movie {
	return sortBy(c, descending, func(m Movie) float64 { return m.Rating })
}

// SortByYear stable-sorts the movies by release year.
func SortByYear(c Collection, descending bool) []Movie {
	return sortBy(c, descending, func(m Movie) float64 { return float64(m.Year) })
}

func sortBy(c Collection, descending bool, key func(Movie) float64) []Movie {
	movies := c.Movies()
	slices.SortStableFunc(movies, func(a, b Movie) int {
		if descending {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return movies
}

// Filter keeps movies rated at least minRating and released within
// [startYear, endYear]. The result is ordered by rating, highest first.
func Filter(c Collection, minRating float64, startYear, endYear int) []Movie {
	out := []Movie{}
	for _, m := range SortByRating(c, true) {
		if m.Rating >= minRating && startYear <= m.Year && m.Year <= endYear {
			out = append(out, m)
		}
	}
	return out
}

// Summarize computes the figures shown by the stats command.
func Summarize(c Collection) Stats {
	s := Stats{
		Total: c.Len(),
		Best:  BestRated(c),
		Worst: WorstRated(c),
	}
	if avg, ok := AverageRating(c); ok {
		s.Average = &avg
	}
	if med, ok := MedianRating(c); ok {
		s.Median = &med
	}
	return s
}
