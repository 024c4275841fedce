package repo

import (
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
)

type KindCount struct {
	Kind  models.Kind `json:"kind" yaml:"kind"`
	Count int         `json:"count" yaml:"count"`
}

type TopRatedProduct struct {
	Name       string          `json:"name" yaml:"name"`
	ReviewRate decimal.Decimal `json:"review_rate" yaml:"review_rate"`
}

type Metrics struct {
	TotalProducts int             `json:"total_products" yaml:"total_products"`
	ByKind        []KindCount     `json:"by_kind" yaml:"by_kind"`
	NewReleases   int             `json:"new_releases" yaml:"new_releases"`
	AveragePrice  decimal.Decimal `json:"average_price" yaml:"average_price"`
	TopRated      TopRatedProduct `json:"top_rated" yaml:"top_rated"`
}

type MetricsRepository interface {
	GetCatalogMetrics(newReleaseYear int) (Metrics, error)
}
