// Package cart implements the bounded shopping cart.
//
// A Cart holds at most MaxItems products in insertion order. Rejected
// operations (full cart, empty cart, unknown product id) return false and
// log an informational message; none of them is an error. A Cart is not
// safe for concurrent use.
package cart

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/tinymart/internal/logging"
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/sirupsen/logrus"
)

// MaxItems is the capacity of every cart.
const MaxItems = 7

type Cart struct {
	id    uuid.UUID
	owner models.PersonName
	items []models.Product
	log   logrus.FieldLogger
}

type Option func(*Cart)

// WithLogger routes the cart's informational messages to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Cart) {
		c.log = log
	}
}

func WithID(id uuid.UUID) Option {
	return func(c *Cart) {
		c.id = id
	}
}

func New(owner models.PersonName, opts ...Option) *Cart {
	c := &Cart{
		id:    uuid.New(),
		owner: owner,
		items: make([]models.Product, 0, MaxItems),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	c.log = c.log.WithField("cart_id", c.id.String())
	return c
}

func (c *Cart) ID() uuid.UUID {
	return c.id
}

func (c *Cart) Owner() models.PersonName {
	return c.owner
}

func (c *Cart) SetOwner(owner models.PersonName) {
	c.owner = owner
}

func (c *Cart) ItemCount() int {
	return len(c.items)
}

// Items returns the cart content in insertion order. The slice is a copy.
func (c *Cart) Items() []models.Product {
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsFull() bool {
	return len(c.items) >= MaxItems
}

// AddItem appends p unless the cart is full.
func (c *Cart) AddItem(p models.Product) bool {
	if c.IsFull() {
		c.log.WithField("product_id", p.ID()).Info("Cart is full. Cannot add more items.")
		return false
	}

	c.items = append(c.items, p)
	return true
}

// RemoveItem removes the product with the given id, keeping the order of the
// remaining items.
func (c *Cart) RemoveItem(productID int) bool {
	if len(c.items) == 0 {
		c.log.Info("Cart is empty. No items to remove.")
		return false
	}

	for i, p := range c.items {
		if p.ID() == productID {
			c.items = slices.Delete(c.items, i, i+1)
			return true
		}
	}

	c.log.WithField("product_id", productID).Infof("Product with ID %d not found in cart.", productID)
	return false
}
