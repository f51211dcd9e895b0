// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPrecision is the number of decimals used by the text renderer.
const DefaultPrecision = 4

// ErrUnknownFormat is returned for an output format name that is not recognized.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding of Write.
type Format int

const (
	// Text is a human-readable layout with aligned matrix columns.
	Text Format = iota
	// YAML is a machine-readable document encoded with gopkg.in/yaml.v3.
	YAML
)

// String returns "text" or "yaml".
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Set parses a format name; it makes *Format a pflag.Value.
func (f *Format) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		*f = Text
	case "yaml", "yml":
		*f = YAML
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}

	return nil
}

// Type names the flag value kind in help output.
func (f *Format) Type() string { return "format" }

// ParseFormat is Set on a fresh value.
func ParseFormat(s string) (Format, error) {
	var f Format
	err := f.Set(s)

	return f, err
}
