package repo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type ImportMode string

const (
	ImportSkip   ImportMode = "skip"
	ImportUpdate ImportMode = "update"
)

// ParseImportMode defaults to ImportSkip for anything but "update".
func ParseImportMode(s string) ImportMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ImportUpdate)) {
		return ImportUpdate
	}
	return ImportSkip
}

type ImportError struct {
	Row         int    `json:"row" yaml:"row"`
	Description string `json:"description" yaml:"description"`
}

func (e ImportError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Description)
}

type ImportResult struct {
	Imported int           `json:"imported" yaml:"imported"`
	Errors   []ImportError `json:"errors" yaml:"errors"`
}

type seedFile struct {
	Products []seedRow `yaml:"products"`
}

type seedRow struct {
	Kind        string            `yaml:"kind"`
	Name        string            `yaml:"name"`
	Price       string            `yaml:"price"`
	ReviewRate  string            `yaml:"review_rate"`
	Genre       string            `yaml:"genre"`
	Rating      string            `yaml:"rating"`
	ReleaseYear int               `yaml:"release_year"`
	RunTime     int               `yaml:"run_time"`
	Pages       int               `yaml:"pages"`
	Person      models.PersonName `yaml:"person"`
}

type parsedRow struct {
	seedRow
	kind       models.Kind
	price      decimal.Decimal
	reviewRate decimal.Decimal
	genre      *models.Genre
	rating     models.FilmRating
}

func parseRow(row seedRow) (parsedRow, error) {
	out := parsedRow{seedRow: row}

	if strings.TrimSpace(row.Kind) == "" {
		return out, errors.New("missing kind")
	}
	kind, err := models.ParseKind(row.Kind)
	if err != nil {
		return out, err
	}
	out.kind = kind

	if strings.TrimSpace(row.Price) == "" {
		return out, errors.New("missing price")
	}
	if out.price, err = decimal.NewFromString(strings.TrimSpace(row.Price)); err != nil {
		return out, fmt.Errorf("invalid price %q", row.Price)
	}
	if strings.TrimSpace(row.ReviewRate) != "" {
		if out.reviewRate, err = decimal.NewFromString(strings.TrimSpace(row.ReviewRate)); err != nil {
			return out, fmt.Errorf("invalid review rate %q", row.ReviewRate)
		}
	}

	switch {
	case kind == models.KindMusic:
		if row.Genre != "" {
			g, err := models.ParseGenre(row.Genre)
			if err != nil {
				return out, err
			}
			out.genre = &g
		}
	case kind == models.KindMovie:
		if out.rating, err = models.ParseFilmRating(row.Rating); err != nil {
			return out, err
		}
		if row.ReleaseYear < 0 {
			return out, errors.New("invalid release year")
		}
		if row.RunTime < 0 {
			return out, errors.New("invalid run time")
		}
	case kind.IsBook():
		if row.Pages < 0 {
			return out, errors.New("invalid pages")
		}
	}
	return out, nil
}

// ImportYAML adds the products of a seed document to the catalog. Rows that
// cannot be parsed are reported in the result and skipped; blank names and
// out-of-range prices are normalized like any other creation.
func (r *InMemoryProductRepository) ImportYAML(in io.Reader, mode ImportMode) (ImportResult, error) {
	var doc seedFile
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return ImportResult{}, fmt.Errorf("failed to read seed YAML: %w", err)
	}

	result := ImportResult{Errors: []ImportError{}}
	for i, raw := range doc.Products {
		rowNum := i + 1

		row, err := parseRow(raw)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Row: rowNum, Description: err.Error()})
			continue
		}

		existing, err := r.GetByName(row.Name)
		if err == nil {
			if mode != ImportUpdate {
				result.Errors = append(result.Errors, ImportError{Row: rowNum, Description: fmt.Sprintf("product '%s' already exists", row.Name)})
				continue
			}
			if existing.Kind() != row.kind {
				result.Errors = append(result.Errors, ImportError{Row: rowNum, Description: fmt.Sprintf("product '%s' exists with kind %s", row.Name, existing.Kind())})
				continue
			}
			if err := r.update(existing.ID(), row); err != nil {
				result.Errors = append(result.Errors, ImportError{Row: rowNum, Description: fmt.Sprintf("failed to update '%s'", row.Name)})
				continue
			}
			result.Imported++
			continue
		}

		r.create(row)
		result.Imported++
	}
	return result, nil
}

// update reprices an existing product and rerates it only when the row carries a review rate.
func (r *InMemoryProductRepository) update(id int, row parsedRow) error {
	if _, err := r.Reprice(id, row.price); err != nil {
		return err
	}
	if strings.TrimSpace(row.ReviewRate) == "" {
		return nil
	}
	_, err := r.Rerate(id, row.reviewRate)
	return err
}

func (r *InMemoryProductRepository) create(row parsedRow) models.Product {
	switch row.kind {
	case models.KindMusic:
		return r.CreateAudio(AudioRequest{Name: row.Name, Price: row.price, Singer: row.Person, Genre: row.genre, ReviewRate: row.reviewRate})
	case models.KindMovie:
		return r.CreateVideo(VideoRequest{
			Name:        row.Name,
			Price:       row.price,
			Director:    row.Person,
			Rating:      row.rating,
			ReleaseYear: row.ReleaseYear,
			RunTime:     row.RunTime,
			ReviewRate:  row.reviewRate,
		})
	case models.KindEBook:
		return r.CreateEBook(BookRequest{Name: row.Name, Price: row.price, Author: row.Person, Pages: row.Pages, ReviewRate: row.reviewRate})
	default:
		return r.CreatePaperBook(BookRequest{Name: row.Name, Price: row.price, Author: row.Person, Pages: row.Pages, ReviewRate: row.reviewRate})
	}
}
