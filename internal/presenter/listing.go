package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/rogerio-castellano/tinymart/internal/repo"
	"gopkg.in/yaml.v3"
)

func encode(f Format, w io.Writer, v any) error {
	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type listingView struct {
	Total int        `json:"total" yaml:"total"`
	Items []itemView `json:"items" yaml:"items"`
}

// WriteListing renders one page of catalog entries and the number of
// products matching the query, without any cart summary.
func WriteListing(format string, w io.Writer, items []models.Description, total int) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	if f == FormatText {
		var sb strings.Builder
		for _, d := range items {
			writeItem(&sb, d)
		}
		sb.WriteString(fmt.Sprintf("\nShowing %d of %d products\n", len(items), total))
		_, err = io.WriteString(w, sb.String())
	} else {
		v := listingView{Total: total, Items: make([]itemView, 0, len(items))}
		for _, d := range items {
			v.Items = append(v.Items, newItemView(d))
		}
		err = encode(f, w, v)
	}
	if err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

type kindCountView struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count" yaml:"count"`
}

type metricsView struct {
	TotalProducts int             `json:"total_products" yaml:"total_products"`
	ByKind        []kindCountView `json:"by_kind" yaml:"by_kind"`
	NewReleases   int             `json:"new_releases" yaml:"new_releases"`
	AveragePrice  string          `json:"average_price" yaml:"average_price"`
	TopRated      string          `json:"top_rated,omitempty" yaml:"top_rated,omitempty"`
	TopRate       string          `json:"top_rate,omitempty" yaml:"top_rate,omitempty"`
}

func newMetricsView(m repo.Metrics) metricsView {
	v := metricsView{
		TotalProducts: m.TotalProducts,
		ByKind:        make([]kindCountView, 0, len(m.ByKind)),
		NewReleases:   m.NewReleases,
		AveragePrice:  m.AveragePrice.StringFixed(2),
		TopRated:      m.TopRated.Name,
	}
	if m.TopRated.Name != "" {
		v.TopRate = m.TopRated.ReviewRate.String()
	}
	for _, kc := range m.ByKind {
		v.ByKind = append(v.ByKind, kindCountView{Kind: kc.Kind.String(), Count: kc.Count})
	}
	return v
}

// WriteMetrics renders catalog statistics.
func WriteMetrics(format string, w io.Writer, m repo.Metrics) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	v := newMetricsView(m)
	if f == FormatText {
		var sb strings.Builder
		sb.WriteString("===== Catalog Metrics ======\n")
		sb.WriteString(fmt.Sprintf("Total products: %d\n", v.TotalProducts))
		for _, kc := range v.ByKind {
			sb.WriteString(fmt.Sprintf("%s: %d\n", kc.Kind, kc.Count))
		}
		sb.WriteString(fmt.Sprintf("New releases: %d\n", v.NewReleases))
		sb.WriteString(fmt.Sprintf("Average price: $%s\n", v.AveragePrice))
		if v.TopRated != "" {
			sb.WriteString(fmt.Sprintf("Top rated: %s (%s)\n", v.TopRated, v.TopRate))
		}
		_, err = io.WriteString(w, sb.String())
	} else {
		err = encode(f, w, v)
	}
	if err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
