package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Genre is the music genre of an AudioProduct.
//
// Genres serialize to their string names in both JSON and YAML so that seed
// files and rendered reports stay readable.
type Genre uint8

const (
	GenreBlues Genre = iota
	GenreClassical
	GenreCountry
	GenreFolk
	GenreJazz
	GenreMetal
	GenrePop
	GenreRnB
	GenreRock
)

// DefaultGenre is assigned to audio products created without an explicit genre.
const DefaultGenre = GenrePop

var genreNames = [...]string{
	GenreBlues:     "Blues",
	GenreClassical: "Classical",
	GenreCountry:   "Country",
	GenreFolk:      "Folk",
	GenreJazz:      "Jazz",
	GenreMetal:     "Metal",
	GenrePop:       "Pop",
	GenreRnB:       "RnB",
	GenreRock:      "Rock",
}

// ParseGenre matches s against the genre names, ignoring case and surrounding blanks.
func ParseGenre(s string) (Genre, error) {
	normalized := strings.TrimSpace(s)
	for g, name := range genreNames {
		if strings.EqualFold(name, normalized) {
			return Genre(g), nil
		}
	}
	if strings.EqualFold(normalized, "r&b") {
		return GenreRnB, nil
	}
	return DefaultGenre, fmt.Errorf("unknown Genre name %q (valid: %s)", s, strings.Join(genreNames[:], ", "))
}

func (g Genre) String() string {
	if int(g) < len(genreNames) {
		return genreNames[g]
	}
	return fmt.Sprintf("Genre(%d)", uint8(g))
}

func (g Genre) Validate() error {
	if int(g) >= len(genreNames) {
		return fmt.Errorf("Genre value %d is not a known genre (valid range: 0-%d)", uint8(g), len(genreNames)-1)
	}
	return nil
}

func (g Genre) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Genre: %w", err)
	}
	return json.Marshal(g.String())
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into Genre: %w", err)
	}
	parsed, err := ParseGenre(str)
	if err != nil {
		return fmt.Errorf("unmarshaled Genre is invalid: %w", err)
	}
	*g = parsed
	return nil
}

func (g Genre) MarshalYAML() (interface{}, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Genre: %w", err)
	}
	return g.String(), nil
}

func (g *Genre) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into Genre: %w", err)
	}
	parsed, err := ParseGenre(str)
	if err != nil {
		return fmt.Errorf("unmarshaled Genre is invalid: %w", err)
	}
	*g = parsed
	return nil
}
