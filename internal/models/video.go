package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// VideoProduct is a movie.
type VideoProduct struct {
	productBase
	Director    PersonName
	Rating      FilmRating
	ReleaseYear int
	RunTime     int // minutes
}

func NewVideoProduct(id int, name string, price decimal.Decimal, director PersonName, releaseYear, runTime int) (*VideoProduct, []Correction) {
	base, corrections := newProductBase(id, name, price)
	return &VideoProduct{
		productBase: base,
		Director:    director,
		Rating:      FilmRatingNotRated,
		ReleaseYear: releaseYear,
		RunTime:     runTime,
	}, corrections
}

// IsNewRelease reports whether the movie came out in year or later.
func (v *VideoProduct) IsNewRelease(year int) bool {
	return v.ReleaseYear >= year
}

func (v *VideoProduct) Kind() Kind {
	return KindMovie
}

func (v *VideoProduct) Details() []Detail {
	return []Detail{
		{Label: "Release Year", Value: strconv.Itoa(v.ReleaseYear)},
		{Label: "Film Rating", Value: v.Rating.String()},
		{Label: "Runtime", Value: strconv.Itoa(v.RunTime)},
		{Label: "Director Name", Value: v.Director.FullName()},
	}
}
