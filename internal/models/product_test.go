package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClampPrice(t *testing.T) {
	tests := []struct {
		name        string
		price       string
		expected    string
		wantClamped bool
	}{
		{name: "Negative", price: "-5", expected: "0.01", wantClamped: true},
		{name: "Zero", price: "0", expected: "0.01", wantClamped: true},
		{name: "Smallest valid cent", price: "0.01", expected: "0.01", wantClamped: false},
		{name: "Tiny positive kept exactly", price: "0.0001", expected: "0.0001", wantClamped: false},
		{name: "Regular price", price: "16.50", expected: "16.5", wantClamped: false},
		{name: "Just below ceiling", price: "999.999", expected: "999.999", wantClamped: false},
		{name: "Ceiling", price: "1000", expected: "999.99", wantClamped: true},
		{name: "Above ceiling", price: "1500", expected: "999.99", wantClamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ClampPrice(dec(tt.price))
			assert.True(t, got.Equal(dec(tt.expected)), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, tt.wantClamped, clamped)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		changed  bool
	}{
		{name: "Empty", input: "", expected: SentinelName, changed: true},
		{name: "Spaces", input: "   ", expected: SentinelName, changed: true},
		{name: "Tabs and newlines", input: "\t\n", expected: SentinelName, changed: true},
		{name: "Regular", input: "Yesterday", expected: "Yesterday", changed: false},
		{name: "Padded name kept as given", input: " Star Wars ", expected: " Star Wars ", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NormalizeName(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestNewProduct_Corrections(t *testing.T) {
	p, corrections := NewAudioProduct(1, " ", dec("0"), NewPersonName("Beatles", ""))

	assert.Equal(t, SentinelName, p.Name())
	assert.True(t, p.Price().Equal(MinPrice))
	require.Len(t, corrections, 2)
	assert.Equal(t, FieldName, corrections[0].Field)
	assert.Equal(t, FieldPrice, corrections[1].Field)
	assert.Equal(t, "Price adjusted to 0.01 (must be between 0.01 and 999.99)", corrections[1].Message())
}

func TestNewProduct_NoCorrections(t *testing.T) {
	p, corrections := NewPaperBook(3, "The Hobbit", dec("12.99"), NewPersonName("J.R.R.", "Tolkien"), 320)

	assert.Empty(t, corrections)
	assert.Equal(t, 3, p.ID())
	assert.Equal(t, "The Hobbit", p.Name())
	assert.True(t, p.ReviewRate().IsZero())
}

func TestSetPrice(t *testing.T) {
	p, _ := NewEBook(1, "The old Man and the Sea", dec("8.30"), NewPersonName("Ernest", "Hemmingway"), 127)

	c := p.SetPrice(dec("2500"))
	require.NotNil(t, c)
	assert.Equal(t, "2500", c.Given)
	assert.Equal(t, "999.99", c.Applied)
	assert.True(t, p.Price().Equal(MaxPrice))

	assert.Nil(t, p.SetPrice(dec("9.99")))
	assert.True(t, p.Price().Equal(dec("9.99")))
}

func TestSetReviewRate_Unvalidated(t *testing.T) {
	p, _ := NewAudioProduct(1, "Yesterday", dec("16.50"), NewPersonName("Beatles", ""))
	p.SetReviewRate(dec("-42.5"))
	assert.True(t, p.ReviewRate().Equal(dec("-42.5")))
}

func TestKindLabels(t *testing.T) {
	singer := NewPersonName("Madonna", "")
	author := NewPersonName("J.K.", "Rowling")

	audio, _ := NewAudioProduct(1, "Like a Prayer", dec("14.99"), singer)
	video, _ := NewVideoProduct(2, "Star Wars", dec("22"), NewPersonName("George", "Lucas"), 1977, 120)
	ebook, _ := NewEBook(3, "Harry Potter", dec("9.99"), author, 450)
	paper, _ := NewPaperBook(4, "Harry Potter", dec("24.99"), author, 450)

	tests := []struct {
		product  Product
		expected string
	}{
		{audio, "Music"},
		{video, "Movie"},
		{ebook, "E-Book"},
		{paper, "Paper Book"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.Kind().String())
		})
	}
}

func TestDetails(t *testing.T) {
	audio, _ := NewAudioProduct(1, "We are the World", dec("13.75"), NewPersonName("Michael", "Jackson"))
	audio.Genre = GenreCountry
	assert.Equal(t, []Detail{
		{Label: "Singer Name", Value: "Michael Jackson"},
		{Label: "Genre", Value: "Country"},
	}, audio.Details())

	video, _ := NewVideoProduct(2, "Sound of Music", dec("22"), NewPersonName("Robert", "Wise"), 1965, 175)
	video.Rating = FilmRatingG
	assert.Equal(t, []Detail{
		{Label: "Release Year", Value: "1965"},
		{Label: "Film Rating", Value: "G"},
		{Label: "Runtime", Value: "175"},
		{Label: "Director Name", Value: "Robert Wise"},
	}, video.Details())

	ebook, _ := NewEBook(3, "The old Man and the Sea", dec("8.30"), NewPersonName("Ernest", "Hemmingway"), 127)
	paper, _ := NewPaperBook(4, "The Hobbit", dec("12.99"), NewPersonName("J.R.R.", "Tolkien"), 320)
	assert.Equal(t, []Detail{{Label: "Author", Value: "Ernest Hemmingway"}, {Label: "Pages", Value: "127"}}, ebook.Details())
	assert.Equal(t, []Detail{{Label: "Author", Value: "J.R.R. Tolkien"}, {Label: "Pages", Value: "320"}}, paper.Details())
}

func TestDefaults(t *testing.T) {
	audio, _ := NewAudioProduct(1, "Yesterday", dec("16.50"), NewPersonName("Beatles", ""))
	video, _ := NewVideoProduct(2, "Star Wars", dec("22"), NewPersonName("George", "Lucas"), 1977, 120)

	assert.Equal(t, GenrePop, audio.Genre)
	assert.Equal(t, FilmRatingNotRated, video.Rating)
}

func TestIsNewRelease(t *testing.T) {
	video, _ := NewVideoProduct(1, "Star Wars", dec("22"), NewPersonName("George", "Lucas"), 1977, 120)

	tests := []struct {
		year     int
		expected bool
	}{
		{1976, true},
		{1977, true},
		{1978, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, video.IsNewRelease(tt.year), "year %d", tt.year)
	}
}

func TestDescribe(t *testing.T) {
	paper, _ := NewPaperBook(8, "The Hobbit", dec("12.99"), NewPersonName("J.R.R.", "Tolkien"), 320)
	paper.SetReviewRate(dec("9.7"))

	d := Describe(paper)

	assert.Equal(t, KindPaperBook, d.Kind)
	assert.Equal(t, 8, d.ID)
	assert.Equal(t, "The Hobbit", d.Name)
	assert.True(t, d.Price.Equal(dec("12.99")))
	assert.True(t, d.ReviewRate.Equal(dec("9.7")))
	assert.Equal(t, paper.Details(), d.Details)
}

func TestPersonName_FullName(t *testing.T) {
	assert.Equal(t, "John Smith", NewPersonName("John", "Smith").FullName())
	assert.Equal(t, "Beatles", NewPersonName("Beatles", "").FullName())
	assert.Equal(t, "Smith", NewPersonName("", "Smith").FullName())
	assert.Equal(t, "", PersonName{}.FullName())
}
