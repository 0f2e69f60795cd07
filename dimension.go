package iterm2img

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unit is the unit a Dimension is measured in
type Unit int

const (
	// UnitAuto lets the terminal pick the size from the image itself
	UnitAuto Unit = iota
	// UnitCells measures in character cells
	UnitCells
	// UnitPixels measures in pixels
	UnitPixels
	// UnitPercent measures as a percentage of the session width or height
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitCells:
		return "cells"
	case UnitPixels:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Dimension is a width or height for an inline image.
// The zero value is Auto.
type Dimension struct {
	Unit  Unit
	Value int
}

// Auto returns a dimension the terminal sizes on its own
func Auto() Dimension {
	return Dimension{}
}

// Cells returns a dimension of n character cells
func Cells(n int) Dimension {
	return Dimension{Unit: UnitCells, Value: max(n, 0)}
}

// Pixels returns a dimension of n pixels
func Pixels(n int) Dimension {
	return Dimension{Unit: UnitPixels, Value: max(n, 0)}
}

// Percent returns a dimension of n percent of the session width or height
func Percent(n int) Dimension {
	return Dimension{Unit: UnitPercent, Value: max(n, 0)}
}

// IsAuto reports whether the dimension is left to the terminal
func (d Dimension) IsAuto() bool {
	switch d.Unit {
	case UnitCells, UnitPixels, UnitPercent:
		return false
	default:
		return true
	}
}

// String renders the dimension the way the protocol expects it:
// N for cells, Npx for pixels, N% for percent and "auto" otherwise.
func (d Dimension) String() string {
	switch d.Unit {
	case UnitCells:
		return strconv.Itoa(d.Value)
	case UnitPixels:
		return strconv.Itoa(d.Value) + "px"
	case UnitPercent:
		return strconv.Itoa(d.Value) + "%"
	default:
		return "auto"
	}
}

// ParseDimension parses "auto", "N", "Npx" or "N%". An empty string is auto.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), nil
	}

	unit := UnitCells
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		unit = UnitPixels
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		num = strings.TrimSuffix(s, "%")
	}

	n, err := strconv.ParseUint(num, 10, 31)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}

	return Dimension{Unit: unit, Value: int(n)}, nil
}

// MarshalText implements encoding.TextMarshaler
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML accepts both bare numbers (cells) and strings like "100px"
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar at line %d", ErrInvalidDimension, value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}
