package cart

import (
	"github.com/google/uuid"
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
)

// Report summarizes a cart: every item's description in insertion order
// plus count, total and average price. Amounts are exact; use the Rounded
// helpers for display.
type Report struct {
	CartID      uuid.UUID            `json:"cart_id" yaml:"cart_id"`
	Owner       string               `json:"owner" yaml:"owner"`
	Items       []models.Description `json:"items" yaml:"items"`
	TotalCount  int                  `json:"total_count" yaml:"total_count"`
	TotalAmount decimal.Decimal      `json:"total_amount" yaml:"total_amount"`
	AverageCost decimal.Decimal      `json:"average_cost" yaml:"average_cost"`
}

func (r Report) RoundedTotal() decimal.Decimal {
	return r.TotalAmount.Round(2)
}

func (r Report) RoundedAverage() decimal.Decimal {
	return r.AverageCost.Round(2)
}

// GenerateReport builds the cart summary. It does not modify the cart.
func (c *Cart) GenerateReport() Report {
	r := Report{
		CartID:      c.id,
		Owner:       c.owner.FullName(),
		Items:       make([]models.Description, 0, len(c.items)),
		TotalCount:  len(c.items),
		TotalAmount: decimal.Zero,
		AverageCost: decimal.Zero,
	}

	for _, p := range c.items {
		r.Items = append(r.Items, models.Describe(p))
		r.TotalAmount = r.TotalAmount.Add(p.Price())
	}

	if r.TotalCount > 0 {
		r.AverageCost = r.TotalAmount.Div(decimal.NewFromInt(int64(r.TotalCount)))
	}
	return r
}

// Presenter receives finished reports, typically to render them.
type Presenter interface {
	Present(r Report) error
}

// Display hands the current report to p.
func (c *Cart) Display(p Presenter) error {
	return p.Present(c.GenerateReport())
}
