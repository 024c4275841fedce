package repo

import (
	"errors"

	"github.com/rogerio-castellano/tinymart/internal/models"
)

// ProductRepository defines the read side of the product catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
