package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/cart"
	"github.com/rogerio-castellano/tinymart/internal/models"
)

// Text writes the human readable cart listing.
type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Present(r cart.Report) error {
	var sb strings.Builder

	sb.WriteString("\nMy Cart\n")
	sb.WriteString("======\n")
	sb.WriteString(fmt.Sprintf("Cart Owner: %s\n", r.Owner))

	for _, item := range r.Items {
		writeItem(&sb, item)
	}

	sb.WriteString("\n===== Summary of Purchase ======\n")
	sb.WriteString(fmt.Sprintf("Total number of purchases: %d\n", r.TotalCount))
	sb.WriteString(fmt.Sprintf("Total purchasing amount: $%s\n", r.RoundedTotal().StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Average cost: $%s\n", r.RoundedAverage().StringFixed(2)))

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeItem(sb *strings.Builder, d models.Description) {
	sb.WriteString(fmt.Sprintf("\n[%s] Product ID: %d Product Name: %s\n", d.Kind, d.ID, d.Name))
	sb.WriteString(fmt.Sprintf("Price: $%s Product Review Rate: %s\n", d.Price, d.ReviewRate))
	for _, detail := range d.Details {
		sb.WriteString(fmt.Sprintf("%s: %s\n", detail.Label, detail.Value))
	}
}
