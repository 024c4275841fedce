package repo

import (
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryMetricsRepository struct {
	productRepo ProductRepository
}

func NewInMemoryMetricsRepository(productRepo ProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}

// GetCatalogMetrics implements MetricsRepository. Movies released in
// newReleaseYear or later count as new releases.
func (i *InMemoryMetricsRepository) GetCatalogMetrics(newReleaseYear int) (Metrics, error) {
	m := Metrics{AveragePrice: decimal.Zero}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	counts := map[models.Kind]int{}
	total := decimal.Zero
	for _, p := range products {
		counts[p.Kind()]++
		total = total.Add(p.Price())

		if v, ok := p.(*models.VideoProduct); ok && v.IsNewRelease(newReleaseYear) {
			m.NewReleases++
		}

		// first one wins on ties
		if m.TopRated.Name == "" || p.ReviewRate().GreaterThan(m.TopRated.ReviewRate) {
			m.TopRated = TopRatedProduct{Name: p.Name(), ReviewRate: p.ReviewRate()}
		}
	}

	for _, k := range []models.Kind{models.KindMusic, models.KindMovie, models.KindEBook, models.KindPaperBook} {
		m.ByKind = append(m.ByKind, KindCount{Kind: k, Count: counts[k]})
	}

	if m.TotalProducts > 0 {
		m.AveragePrice = total.Div(decimal.NewFromInt(int64(m.TotalProducts)))
	}
	return m, nil
}
