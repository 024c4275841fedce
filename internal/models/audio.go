package models

import "github.com/shopspring/decimal"

// AudioProduct is a music recording.
type AudioProduct struct {
	productBase
	Singer PersonName
	Genre  Genre
}

func NewAudioProduct(id int, name string, price decimal.Decimal, singer PersonName) (*AudioProduct, []Correction) {
	base, corrections := newProductBase(id, name, price)
	return &AudioProduct{
		productBase: base,
		Singer:      singer,
		Genre:       DefaultGenre,
	}, corrections
}

func (a *AudioProduct) Kind() Kind {
	return KindMusic
}

func (a *AudioProduct) Details() []Detail {
	return []Detail{
		{Label: "Singer Name", Value: a.Singer.FullName()},
		{Label: "Genre", Value: a.Genre.String()},
	}
}
