// Package field: option types and sentinel errors.
package field

import (
	"errors"
	"math"
)

// Sentinel errors for field parsing and derivation.
var (
	// ErrEmptyGrid indicates the input produced no rows or no columns.
	ErrEmptyGrid = errors.New("field: grid must have at least one row and one column")
	// ErrNonRectangular indicates a data row whose column count differs
	// from the established column count.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrNoDelimiter indicates delimiter auto-detection failed on the
	// first data line.
	ErrNoDelimiter = errors.New("field: could not detect delimiter from first data line")
	// ErrStatHeader indicates a stat-file header line is missing its file path.
	ErrStatHeader = errors.New("field: stat file header line has no file path")
	// ErrStatMalformed indicates a stat-file key/value structure violation.
	ErrStatMalformed = errors.New("field: malformed stat file")
)

// DelimAuto asks the parser to sniff the delimiter from the first data line.
const DelimAuto = "auto"

// Options configures map parsing.
type Options struct {
	// Delim is the column delimiter. DelimAuto sniffs it from the first
	// data line; an explicit single-character (or longer) string is used
	// verbatim; the empty string splits on any run of whitespace.
	Delim string
}

// DefaultOptions returns Options with delimiter auto-detection enabled.
func DefaultOptions() Options {
	return Options{Delim: DelimAuto}
}

// ThresholdOptions configures Field.Threshold. A cell v is replaced by
// Sentinel when v <= Min or v >= Max. Leave a bound at its default
// (-Inf / +Inf) to skip that side.
type ThresholdOptions struct {
	Min      float64
	Max      float64
	Sentinel float64
}

// DefaultThresholdOptions returns ThresholdOptions with both bounds
// disabled and a NaN sentinel.
func DefaultThresholdOptions() ThresholdOptions {
	return ThresholdOptions{
		Min:      math.Inf(-1),
		Max:      math.Inf(1),
		Sentinel: math.NaN(),
	}
}
