package repo

import (
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/logging"
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AudioRequest struct {
	Name       string
	Price      decimal.Decimal
	Singer     models.PersonName
	Genre      *models.Genre // nil keeps models.DefaultGenre
	ReviewRate decimal.Decimal
}

type VideoRequest struct {
	Name        string
	Price       decimal.Decimal
	Director    models.PersonName
	Rating      models.FilmRating
	ReleaseYear int
	RunTime     int
	ReviewRate  decimal.Decimal
}

type BookRequest struct {
	Name       string
	Price      decimal.Decimal
	Author     models.PersonName
	Pages      int
	ReviewRate decimal.Decimal
}

// InMemoryProductRepository is the product catalog. It allocates product ids,
// builds the variants and keeps them in creation order.
// It is not safe for concurrent use.
type InMemoryProductRepository struct {
	products []models.Product
	ids      *IDSequence
	log      logrus.FieldLogger
}

var _ ProductRepository = (*InMemoryProductRepository)(nil)

// NewInMemoryProductRepository creates an empty catalog whose first product gets id 1.
// A nil log discards the correction warnings.
func NewInMemoryProductRepository(log logrus.FieldLogger) *InMemoryProductRepository {
	if log == nil {
		log = logging.Discard()
	}
	return &InMemoryProductRepository{
		products: []models.Product{},
		ids:      NewIDSequence(),
		log:      log,
	}
}

func (r *InMemoryProductRepository) CreateAudio(req AudioRequest) *models.AudioProduct {
	p, corrections := models.NewAudioProduct(r.ids.Next(), req.Name, req.Price, req.Singer)
	if req.Genre != nil {
		p.Genre = *req.Genre
	}
	p.SetReviewRate(req.ReviewRate)
	r.store(p, corrections)
	return p
}

func (r *InMemoryProductRepository) CreateVideo(req VideoRequest) *models.VideoProduct {
	p, corrections := models.NewVideoProduct(r.ids.Next(), req.Name, req.Price, req.Director, req.ReleaseYear, req.RunTime)
	p.Rating = req.Rating
	p.SetReviewRate(req.ReviewRate)
	r.store(p, corrections)
	return p
}

func (r *InMemoryProductRepository) CreateEBook(req BookRequest) *models.EBook {
	p, corrections := models.NewEBook(r.ids.Next(), req.Name, req.Price, req.Author, req.Pages)
	p.SetReviewRate(req.ReviewRate)
	r.store(p, corrections)
	return p
}

func (r *InMemoryProductRepository) CreatePaperBook(req BookRequest) *models.PaperBook {
	p, corrections := models.NewPaperBook(r.ids.Next(), req.Name, req.Price, req.Author, req.Pages)
	p.SetReviewRate(req.ReviewRate)
	r.store(p, corrections)
	return p
}

func (r *InMemoryProductRepository) store(p models.Product, corrections []models.Correction) {
	r.warn(p, corrections...)
	r.products = append(r.products, p)
}

func (r *InMemoryProductRepository) warn(p models.Product, corrections ...models.Correction) {
	for _, c := range corrections {
		r.log.WithFields(logrus.Fields{
			"product_id": p.ID(),
			"field":      c.Field,
			"given":      c.Given,
			"applied":    c.Applied,
		}).Warn(c.Message())
	}
}

type editable interface {
	SetPrice(price decimal.Decimal) *models.Correction
	SetReviewRate(rate decimal.Decimal)
}

// Reprice changes the price of a stored product, clamping it like at creation.
func (r *InMemoryProductRepository) Reprice(id int, price decimal.Decimal) (models.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c := p.(editable).SetPrice(price); c != nil {
		r.warn(p, *c)
	}
	return p, nil
}

func (r *InMemoryProductRepository) Rerate(id int, rate decimal.Decimal) (models.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	p.(editable).SetReviewRate(rate)
	return p, nil
}

// GetAll retrieves all products in creation order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name()), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.Kind != nil && p.Kind() != *pf.Kind {
		return false
	}
	if pf.MinPrice != nil && p.Price().LessThan(*pf.MinPrice) {
		return false
	}
	if pf.MaxPrice != nil && p.Price().GreaterThan(*pf.MaxPrice) {
		return false
	}
	if pf.NewSince != nil {
		v, ok := p.(*models.VideoProduct)
		if !ok || !v.IsNewRelease(*pf.NewSince) {
			return false
		}
	}
	return true
}

// Filter returns one page of the matching products and the total number of matches.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	var filtered []models.Product

	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	if pf.Offset != nil && *pf.Offset >= len(filtered) {
		return []models.Product{}, len(filtered), nil
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// Clear drops every stored product. Ids already handed out are not reused.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

// NextID reports the id the next created product will get.
func (r *InMemoryProductRepository) NextID() int {
	return r.ids.Peek()
}
