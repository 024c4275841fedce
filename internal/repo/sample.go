package repo

import (
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
)

// Sample holds the demonstration products in the order they are created.
type Sample struct {
	Yesterday       *models.AudioProduct
	LikeAPrayer     *models.AudioProduct
	WeAreTheWorld   *models.AudioProduct
	SoundOfMusic    *models.VideoProduct
	StarWars        *models.VideoProduct
	OldManAndTheSea *models.EBook
	TheHobbit       *models.PaperBook
	HarryPotter     *models.PaperBook
}

// CartOrder is the order the demonstration puts products in the cart. The
// last one, The Hobbit, is the eighth item and a full cart turns it away.
func (s Sample) CartOrder() []models.Product {
	return []models.Product{
		s.Yesterday,
		s.SoundOfMusic,
		s.WeAreTheWorld,
		s.HarryPotter,
		s.OldManAndTheSea,
		s.StarWars,
		s.LikeAPrayer,
		s.TheHobbit,
	}
}

func genre(g models.Genre) *models.Genre {
	return &g
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SampleCatalog creates the demonstration products in r.
func SampleCatalog(r *InMemoryProductRepository) Sample {
	var s Sample

	s.Yesterday = r.CreateAudio(AudioRequest{
		Name: "Yesterday", Price: price("16.50"), Singer: models.NewPersonName("Beatles", ""),
		Genre: genre(models.GenrePop), ReviewRate: price("9.8"),
	})
	s.LikeAPrayer = r.CreateAudio(AudioRequest{
		Name: "Like a Prayer", Price: price("14.99"), Singer: models.NewPersonName("Madonna", ""),
		Genre: genre(models.GenrePop), ReviewRate: price("8.9"),
	})
	s.WeAreTheWorld = r.CreateAudio(AudioRequest{
		Name: "We are the World", Price: price("13.75"), Singer: models.NewPersonName("Michael", "Jackson"),
		Genre: genre(models.GenreCountry), ReviewRate: price("9.1"),
	})

	s.SoundOfMusic = r.CreateVideo(VideoRequest{
		Name: "Sound of Music", Price: price("22"), Director: models.NewPersonName("Robert", "Wise"),
		Rating: models.FilmRatingG, ReleaseYear: 1965, RunTime: 175, ReviewRate: price("9.2"),
	})
	s.StarWars = r.CreateVideo(VideoRequest{
		Name: "Star Wars", Price: price("22"), Director: models.NewPersonName("George", "Lucas"),
		Rating: models.FilmRatingPG, ReleaseYear: 1977, RunTime: 120, ReviewRate: price("8.5"),
	})

	s.OldManAndTheSea = r.CreateEBook(BookRequest{
		Name: "The old Man and the Sea", Price: price("8.3"), Author: models.NewPersonName("Ernest", "Hemmingway"),
		Pages: 127, ReviewRate: price("9.5"),
	})
	s.TheHobbit = r.CreatePaperBook(BookRequest{
		Name: "The Hobbit", Price: price("12.99"), Author: models.NewPersonName("J.R.R.", "Tolkien"),
		Pages: 320, ReviewRate: price("9.7"),
	})
	s.HarryPotter = r.CreatePaperBook(BookRequest{
		Name: "Harry Potter", Price: price("24.99"), Author: models.NewPersonName("J.K.", "Rowling"),
		Pages: 450, ReviewRate: price("9.8"),
	})

	return s
}
