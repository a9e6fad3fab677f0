// Package stats: axis type and sentinel errors.
package stats

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for statistics queries.
var (
	// ErrEmptyDataset indicates a query over zero-length data.
	ErrEmptyDataset = errors.New("stats: dataset must be non-empty")
	// ErrInvalidAxis indicates an unrecognized axis name.
	ErrInvalidAxis = errors.New("stats: axis must be row (x) or column (z)")
	// ErrBadBins indicates a non-positive histogram bin count.
	ErrBadBins = errors.New("stats: bin count must be at least 1")
)

// Axis selects the direction of a profile slice.
type Axis int

const (
	// Row extracts one full row: all X values at a fixed Z.
	Row Axis = iota
	// Column extracts one full column: all Z values at a fixed X.
	Column
)

// ParseAxis resolves the user-facing axis names: "row" or "x" select
// Row, "column" or "z" select Column (case-insensitive).
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "row", "x":
		return Row, nil
	case "column", "z":
		return Column, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, name)
	}
}

// String returns the canonical axis name.
func (a Axis) String() string {
	if a == Column {
		return "column"
	}

	return "row"
}
