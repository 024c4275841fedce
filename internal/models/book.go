package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// BookProduct carries what e-books and paper books share. It has no Kind
// and therefore is not a Product by itself.
type BookProduct struct {
	productBase
	Author PersonName
	Pages  int
}

func newBookProduct(id int, name string, price decimal.Decimal, author PersonName, pages int) (BookProduct, []Correction) {
	base, corrections := newProductBase(id, name, price)
	return BookProduct{productBase: base, Author: author, Pages: pages}, corrections
}

func (b *BookProduct) Details() []Detail {
	return []Detail{
		{Label: "Author", Value: b.Author.FullName()},
		{Label: "Pages", Value: strconv.Itoa(b.Pages)},
	}
}

type EBook struct {
	BookProduct
}

func NewEBook(id int, name string, price decimal.Decimal, author PersonName, pages int) (*EBook, []Correction) {
	book, corrections := newBookProduct(id, name, price, author, pages)
	return &EBook{BookProduct: book}, corrections
}

func (e *EBook) Kind() Kind {
	return KindEBook
}

type PaperBook struct {
	BookProduct
}

func NewPaperBook(id int, name string, price decimal.Decimal, author PersonName, pages int) (*PaperBook, []Correction) {
	book, corrections := newBookProduct(id, name, price, author, pages)
	return &PaperBook{BookProduct: book}, corrections
}

func (p *PaperBook) Kind() Kind {
	return KindPaperBook
}
