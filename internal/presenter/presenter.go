// Package presenter renders cart reports.
package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/tinymart/internal/cart"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (valid: text, json, yaml)", ErrUnknownFormat, s)
	}
}

// New returns the presenter writing reports to w in the given format.
func New(format string, w io.Writer) (cart.Presenter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		return &JSON{w: w}, nil
	case FormatYAML:
		return &YAML{w: w}, nil
	default:
		return &Text{w: w}, nil
	}
}
