package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"Music", KindMusic},
		{"movie", KindMovie},
		{"E-Book", KindEBook},
		{"E book", KindEBook},
		{"ebook", KindEBook},
		{"Paper Book", KindPaperBook},
		{"Paper book", KindPaperBook},
		{"paper_book", KindPaperBook},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseKind("vinyl")
	assert.ErrorContains(t, err, `unknown Kind name "vinyl"`)
}

func TestKind_IsBook(t *testing.T) {
	assert.False(t, KindMusic.IsBook())
	assert.False(t, KindMovie.IsBook())
	assert.True(t, KindEBook.IsBook())
	assert.True(t, KindPaperBook.IsBook())
}

func TestParseFilmRating(t *testing.T) {
	tests := []struct {
		input    string
		expected FilmRating
	}{
		{"Not Rated", FilmRatingNotRated},
		{"", FilmRatingNotRated},
		{"g", FilmRatingG},
		{"PG", FilmRatingPG},
		{"PG-13", FilmRatingPG13},
		{"PG_13", FilmRatingPG13},
		{"r", FilmRatingR},
		{"NC-17", FilmRatingNC17},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilmRating(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseFilmRating("X")
	assert.Error(t, err)
}

func TestParseGenre(t *testing.T) {
	g, err := ParseGenre(" rnb ")
	require.NoError(t, err)
	assert.Equal(t, GenreRnB, g)

	g, err = ParseGenre("R&B")
	require.NoError(t, err)
	assert.Equal(t, GenreRnB, g)

	_, err = ParseGenre("Polka")
	assert.ErrorContains(t, err, "Blues, Classical, Country")
}

func TestEnumValidate(t *testing.T) {
	assert.Error(t, Genre(42).Validate())
	assert.Error(t, FilmRating(42).Validate())
	assert.Error(t, Kind(0).Validate())
	assert.Equal(t, "Genre(42)", Genre(42).String())

	_, err := json.Marshal(Kind(0))
	assert.Error(t, err)
}

func TestEnumCodecs(t *testing.T) {
	type row struct {
		Kind   Kind       `json:"kind" yaml:"kind"`
		Genre  Genre      `json:"genre" yaml:"genre"`
		Rating FilmRating `json:"rating" yaml:"rating"`
	}
	in := row{Kind: KindPaperBook, Genre: GenreCountry, Rating: FilmRatingPG13}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Paper Book","genre":"Country","rating":"PG-13"}`, string(data))

	var fromJSON row
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, in, fromJSON)

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: Paper Book")
	assert.Contains(t, string(out), "rating: PG-13")

	var fromYAML row
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, in, fromYAML)

	assert.Error(t, yaml.Unmarshal([]byte("genre: Polka"), &fromYAML))
}
