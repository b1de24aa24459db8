package collection

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
)

const (
	MinRating = 0.0
	MaxRating = 10.0

	MinYear = 1000
	MaxYear = 9999
)

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrValidation      = errors.New("invalid movie")
)

// Movie is a single entry of a collection. Title is the identity key.
type Movie struct {
	Title  string                    `json:"title" validate:"required"`
	Rating float64                   `json:"rating" validate:"gte=0,lte=10"`
	Year   int                       `json:"year" validate:"gte=1000,lte=9999"`
	Poster nullable.Nullable[string] `json:"poster"`
}

// NewMovie builds a normalized movie. An empty poster is stored as null.
func NewMovie(title string, year int, rating float64, poster string) Movie {
	return Movie{
		Title:  title,
		Rating: RoundRating(rating),
		Year:   year,
		Poster: NewPoster(poster),
	}
}

// Normalized returns a copy with the rating rounded and the poster collapsed to
// either null or a non-empty value.
func (m Movie) Normalized() Movie {
	m.Rating = RoundRating(m.Rating)
	m.Poster = NewPoster(m.PosterURL())
	return m
}

// PosterURL returns the poster value or an empty string when there is none.
func (m Movie) PosterURL() string {
	if !m.Poster.IsSpecified() || m.Poster.IsNull() {
		return ""
	}
	return m.Poster.MustGet()
}

// NewPoster wraps a poster value, treating the empty string as null.
func NewPoster(p string) nullable.Nullable[string] {
	if p == "" {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(p)
}

// RoundRating rounds to the nearest value with one fractional digit. The
// decision uses the exact binary value of r and exact halves go to the even
// digit, so 8.25 becomes 8.2 and 0.15 becomes 0.1.
func RoundRating(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return r
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(r, 'f', 1, 64), 64)
	if err != nil {
		return r
	}
	if rounded == 0 {
		return 0
	}
	return rounded
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the movie against the rating and year domains.
func Validate(m Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return ValidateStruct(m)
}

// ValidateStruct runs the validate tags of v and reports violations as
// ErrValidation.
func ValidateStruct(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// ValidateRating checks a standalone rating, as used by updates and filters.
func ValidateRating(r float64) error {
	if math.IsNaN(r) || r < MinRating || r > MaxRating {
		return fmt.Errorf("%w: rating %v must be between %.0f and %.0f", ErrValidation, r, MinRating, MaxRating)
	}
	return nil
}

// ValidateYear checks a standalone release year.
func ValidateYear(y int) error {
	if y < MinYear || y > MaxYear {
		return fmt.Errorf("%w: year %d must be between %d and %d", ErrValidation, y, MinYear, MaxYear)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Rating", "MinRating":
		return fmt.Sprintf("rating %v must be between %.0f and %.0f", fe.Value(), MinRating, MaxRating)
	case "Year", "StartYear", "EndYear":
		return fmt.Sprintf("year %v must be between %d and %d", fe.Value(), MinYear, MaxYear)
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", strings.ToLower(fe.Field()))
	default:
		return fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag())
	}
}
