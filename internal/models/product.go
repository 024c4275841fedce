package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SentinelName replaces empty or blank product names.
const SentinelName = "!No Name Product!"

var (
	// MinPrice and MaxPrice bound every stored price.
	MinPrice = decimal.RequireFromString("0.01")
	MaxPrice = decimal.RequireFromString("999.99")

	priceCeiling = decimal.NewFromInt(1000)
)

const (
	FieldName  = "name"
	FieldPrice = "price"
)

// Correction records a normalization applied to a product field. Callers
// decide how to surface it; nothing in this package logs.
type Correction struct {
	Field   string
	Given   string
	Applied string
}

func (c Correction) Message() string {
	switch c.Field {
	case FieldPrice:
		return fmt.Sprintf("Price adjusted to %s (must be between %s and %s)", c.Applied, MinPrice, MaxPrice)
	case FieldName:
		return fmt.Sprintf("Product name %q replaced with %q", c.Given, c.Applied)
	default:
		return fmt.Sprintf("%s adjusted from %q to %q", c.Field, c.Given, c.Applied)
	}
}

// NormalizeName keeps name as given unless it is blank, in which case the
// sentinel is returned along with true.
func NormalizeName(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return SentinelName, true
	}
	return name, false
}

// ClampPrice returns price unchanged when 0 < price < 1000. Non-positive
// prices become MinPrice and anything from 1000 up becomes MaxPrice.
func ClampPrice(price decimal.Decimal) (decimal.Decimal, bool) {
	if price.IsPositive() && price.LessThan(priceCeiling) {
		return price, false
	}
	if !price.IsPositive() {
		return MinPrice, true
	}
	return MaxPrice, true
}

// Detail is one labelled line of a variant's own fields.
type Detail struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Product is implemented only by the variants of this package:
// *AudioProduct, *VideoProduct, *EBook and *PaperBook.
type Product interface {
	ID() int
	Name() string
	Price() decimal.Decimal
	ReviewRate() decimal.Decimal
	Kind() Kind
	Details() []Detail

	sealed()
}

type productBase struct {
	id         int
	name       string
	price      decimal.Decimal
	reviewRate decimal.Decimal
}

func newProductBase(id int, name string, price decimal.Decimal) (productBase, []Correction) {
	var b productBase
	b.id = id

	var corrections []Correction
	if c := b.SetName(name); c != nil {
		corrections = append(corrections, *c)
	}
	if c := b.SetPrice(price); c != nil {
		corrections = append(corrections, *c)
	}
	return b, corrections
}

func (b *productBase) sealed() {}

func (b *productBase) ID() int {
	return b.id
}

func (b *productBase) Name() string {
	return b.name
}

func (b *productBase) Price() decimal.Decimal {
	return b.price
}

func (b *productBase) ReviewRate() decimal.Decimal {
	return b.reviewRate
}

// SetName stores name, falling back to SentinelName for blank input.
func (b *productBase) SetName(name string) *Correction {
	normalized, changed := NormalizeName(name)
	b.name = normalized
	if !changed {
		return nil
	}
	return &Correction{Field: FieldName, Given: name, Applied: normalized}
}

// SetPrice stores the clamped price and reports the clamp, if any.
func (b *productBase) SetPrice(price decimal.Decimal) *Correction {
	clamped, changed := ClampPrice(price)
	b.price = clamped
	if !changed {
		return nil
	}
	return &Correction{Field: FieldPrice, Given: price.String(), Applied: clamped.String()}
}

func (b *productBase) SetReviewRate(rate decimal.Decimal) {
	b.reviewRate = rate
}

// Description is the full description of a product: the common header
// followed by the variant's details, in display order.
type Description struct {
	Kind       Kind            `json:"kind" yaml:"kind"`
	ID         int             `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Price      decimal.Decimal `json:"price" yaml:"price"`
	ReviewRate decimal.Decimal `json:"review_rate" yaml:"review_rate"`
	Details    []Detail        `json:"details" yaml:"details"`
}

func Describe(p Product) Description {
	return Description{
		Kind:       p.Kind(),
		ID:         p.ID(),
		Name:       p.Name(),
		Price:      p.Price(),
		ReviewRate: p.ReviewRate(),
		Details:    p.Details(),
	}
}

var (
	_ Product = (*AudioProduct)(nil)
	_ Product = (*VideoProduct)(nil)
	_ Product = (*EBook)(nil)
	_ Product = (*PaperBook)(nil)
)
