package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the concrete Product variant.
type Kind uint8

const (
	KindMusic Kind = iota + 1
	KindMovie
	KindEBook
	KindPaperBook
)

const (
	KindMusicStr     = "Music"
	KindMovieStr     = "Movie"
	KindEBookStr     = "E-Book"
	KindPaperBookStr = "Paper Book"
)

// ParseKind matches s case-insensitively. Besides the canonical labels it
// accepts "e book", "ebook", "paper book" without the hyphen and "paperbook".
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "music", "audio":
		return KindMusic, nil
	case "movie", "video":
		return KindMovie, nil
	case "ebook":
		return KindEBook, nil
	case "paperbook":
		return KindPaperBook, nil
	default:
		return 0, fmt.Errorf("unknown Kind name %q (valid: %s, %s, %s, %s)", s,
			KindMusicStr, KindMovieStr, KindEBookStr, KindPaperBookStr)
	}
}

func (k Kind) String() string {
	switch k {
	case KindMusic:
		return KindMusicStr
	case KindMovie:
		return KindMovieStr
	case KindEBook:
		return KindEBookStr
	case KindPaperBook:
		return KindPaperBookStr
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) IsBook() bool {
	return k == KindEBook || k == KindPaperBook
}

func (k Kind) Validate() error {
	if k < KindMusic || k > KindPaperBook {
		return fmt.Errorf("Kind value %d is not a known kind (valid range: %d-%d)", uint8(k), uint8(KindMusic), uint8(KindPaperBook))
	}
	return nil
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Kind: %w", err)
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into Kind: %w", err)
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return fmt.Errorf("unmarshaled Kind is invalid: %w", err)
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Kind: %w", err)
	}
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into Kind: %w", err)
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return fmt.Errorf("unmarshaled Kind is invalid: %w", err)
	}
	*k = parsed
	return nil
}
