package repo

import (
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
)

type ProductFilter struct {
	Name     string
	Kind     *models.Kind
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// NewSince keeps only movies released in that year or later.
	NewSince *int
	Offset   *int
	Limit    *int
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
