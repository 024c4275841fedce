package repo

import (
	"testing"

	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogMetrics(t *testing.T) {
	logger, _ := test.NewNullLogger()
	products := NewInMemoryProductRepository(logger)
	SampleCatalog(products)

	metrics := NewInMemoryMetricsRepository(products)

	tests := []struct {
		name        string
		year        int
		newReleases int
	}{
		{name: "Default threshold", year: 1970, newReleases: 1},
		{name: "Boundary year counts", year: 1977, newReleases: 1},
		{name: "Every movie", year: 1965, newReleases: 2},
		{name: "None", year: 2000, newReleases: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := metrics.GetCatalogMetrics(tt.year)
			require.NoError(t, err)

			assert.Equal(t, 8, m.TotalProducts)
			assert.Equal(t, tt.newReleases, m.NewReleases)
			assert.Equal(t, []KindCount{
				{Kind: models.KindMusic, Count: 3},
				{Kind: models.KindMovie, Count: 2},
				{Kind: models.KindEBook, Count: 1},
				{Kind: models.KindPaperBook, Count: 2},
			}, m.ByKind)
			assert.Equal(t, "16.94", m.AveragePrice.StringFixed(2))
			assert.Equal(t, "Yesterday", m.TopRated.Name)
			assert.Equal(t, "9.8", m.TopRated.ReviewRate.String())
		})
	}
}

func TestGetCatalogMetrics_Empty(t *testing.T) {
	logger, _ := test.NewNullLogger()
	m, err := NewInMemoryMetricsRepository(NewInMemoryProductRepository(logger)).GetCatalogMetrics(1970)
	require.NoError(t, err)

	assert.Zero(t, m.TotalProducts)
	assert.True(t, m.AveragePrice.IsZero())
	assert.Empty(t, m.TopRated.Name)
	assert.Len(t, m.ByKind, 4)
}
