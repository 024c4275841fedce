package models

import "strings"

// PersonName holds the first and last name of a performer, director, author or cart owner.
type PersonName struct {
	FirstName string `json:"first_name" yaml:"first"`
	LastName  string `json:"last_name" yaml:"last"`
}

func NewPersonName(first, last string) PersonName {
	return PersonName{FirstName: first, LastName: last}
}

// FullName joins both parts with a single space. Mononyms ("Madonna", "") come back without trailing blanks.
func (n PersonName) FullName() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

func (n PersonName) String() string {
	return n.FullName()
}
