package presenter

import (
	"fmt"
	"io"

	"github.com/rogerio-castellano/tinymart/internal/cart"
	"github.com/rogerio-castellano/tinymart/internal/models"
)

type itemView struct {
	Kind       string          `json:"kind" yaml:"kind"`
	ID         int             `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Price      string          `json:"price" yaml:"price"`
	ReviewRate string          `json:"review_rate" yaml:"review_rate"`
	Details    []models.Detail `json:"details" yaml:"details"`
}

type reportView struct {
	CartID      string     `json:"cart_id" yaml:"cart_id"`
	Owner       string     `json:"owner" yaml:"owner"`
	Items       []itemView `json:"items" yaml:"items"`
	TotalCount  int        `json:"total_count" yaml:"total_count"`
	TotalAmount string     `json:"total_amount" yaml:"total_amount"`
	AverageCost string     `json:"average_cost" yaml:"average_cost"`
}

func newReportView(r cart.Report) reportView {
	v := reportView{
		CartID:      r.CartID.String(),
		Owner:       r.Owner,
		Items:       make([]itemView, 0, len(r.Items)),
		TotalCount:  r.TotalCount,
		TotalAmount: r.RoundedTotal().StringFixed(2),
		AverageCost: r.RoundedAverage().StringFixed(2),
	}
	for _, d := range r.Items {
		v.Items = append(v.Items, newItemView(d))
	}
	return v
}

func newItemView(d models.Description) itemView {
	return itemView{
		Kind:       d.Kind.String(),
		ID:         d.ID,
		Name:       d.Name,
		Price:      d.Price.StringFixed(2),
		ReviewRate: d.ReviewRate.String(),
		Details:    d.Details,
	}
}

// JSON writes one indented JSON document per report.
type JSON struct {
	w io.Writer
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) Present(r cart.Report) error {
	if err := encode(FormatJSON, j.w, newReportView(r)); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// YAML writes one YAML document per report.
type YAML struct {
	w io.Writer
}

func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (y *YAML) Present(r cart.Report) error {
	if err := encode(FormatYAML, y.w, newReportView(r)); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	return nil
}
