package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilmRating is the MPA rating of a VideoProduct. The zero value is FilmRatingNotRated.
type FilmRating uint8

const (
	FilmRatingNotRated FilmRating = iota
	FilmRatingG
	FilmRatingPG
	FilmRatingPG13
	FilmRatingR
	FilmRatingNC17
)

const (
	FilmRatingNotRatedStr = "Not Rated"
	FilmRatingGStr        = "G"
	FilmRatingPGStr       = "PG"
	FilmRatingPG13Str     = "PG-13"
	FilmRatingRStr        = "R"
	FilmRatingNC17Str     = "NC-17"
)

// ParseFilmRating accepts the display labels as well as the underscore and
// compact spellings ("PG_13", "nc17", "notrated").
func ParseFilmRating(s string) (FilmRating, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "").Replace(normalized)

	switch normalized {
	case "", "NOTRATED", "NR":
		return FilmRatingNotRated, nil
	case FilmRatingGStr:
		return FilmRatingG, nil
	case FilmRatingPGStr:
		return FilmRatingPG, nil
	case FilmRatingPG13Str, "PG13":
		return FilmRatingPG13, nil
	case FilmRatingRStr:
		return FilmRatingR, nil
	case FilmRatingNC17Str, "NC17":
		return FilmRatingNC17, nil
	default:
		return FilmRatingNotRated, fmt.Errorf("unknown FilmRating name %q (valid: %s, %s, %s, %s, %s, %s)", s,
			FilmRatingNotRatedStr, FilmRatingGStr, FilmRatingPGStr, FilmRatingPG13Str, FilmRatingRStr, FilmRatingNC17Str)
	}
}

func (r FilmRating) String() string {
	switch r {
	case FilmRatingNotRated:
		return FilmRatingNotRatedStr
	case FilmRatingG:
		return FilmRatingGStr
	case FilmRatingPG:
		return FilmRatingPGStr
	case FilmRatingPG13:
		return FilmRatingPG13Str
	case FilmRatingR:
		return FilmRatingRStr
	case FilmRatingNC17:
		return FilmRatingNC17Str
	default:
		return fmt.Sprintf("FilmRating(%d)", uint8(r))
	}
}

func (r FilmRating) Validate() error {
	if r > FilmRatingNC17 {
		return fmt.Errorf("FilmRating value %d is not a known rating (valid range: 0-%d)", uint8(r), uint8(FilmRatingNC17))
	}
	return nil
}

func (r FilmRating) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid FilmRating: %w", err)
	}
	return json.Marshal(r.String())
}

func (r *FilmRating) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into FilmRating: %w", err)
	}
	parsed, err := ParseFilmRating(str)
	if err != nil {
		return fmt.Errorf("unmarshaled FilmRating is invalid: %w", err)
	}
	*r = parsed
	return nil
}

func (r FilmRating) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid FilmRating: %w", err)
	}
	return r.String(), nil
}

func (r *FilmRating) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into FilmRating: %w", err)
	}
	parsed, err := ParseFilmRating(str)
	if err != nil {
		return fmt.Errorf("unmarshaled FilmRating is invalid: %w", err)
	}
	*r = parsed
	return nil
}
