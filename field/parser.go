package field

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// delimPattern matches "numeric run, non-numeric run, numeric run" on a
// data line; the captured middle run is the column delimiter.
var delimPattern = regexp.MustCompile(`[0-9.]+(\D+)[0-9.]+`)

// Load reads and parses the aperture map at path.
// The file is read exactly once; failures to open or read surface the
// underlying error wrapped with the path.
func Load(path string, opts Options) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: open %s: %w", path, err)
	}
	defer file.Close()

	f, err := Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("field: parse %s: %w", path, err)
	}
	f.Source = path

	return f, nil
}

// LoadAll parses every path in turn and returns one Field per file.
// The first failure aborts the batch.
func LoadAll(paths []string, opts Options) ([]*Field, error) {
	fields := make([]*Field, 0, len(paths))
	for _, path := range paths {
		f, err := Load(path, opts)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

// Parse reads a delimited numeric grid from r and returns a validated
// Field. Lines starting with '#' and blank lines are skipped. The
// delimiter is taken from opts or sniffed from the first data line
// (see SniffDelimiter). Every data row must have the same column count
// as the first; a mismatch fails with ErrNonRectangular naming the
// offending physical line.
//
// Time: O(NZ×NX). Memory: O(NZ×NX).
func Parse(r io.Reader, opts Options) (*Field, error) {
	delim := opts.Delim

	var cells [][]float64
	nx := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if delim == DelimAuto {
			d, err := SniffDelimiter(trimmed)
			if err != nil {
				return nil, err
			}
			delim = d
		}
		tokens := splitRow(trimmed, delim)
		if len(tokens) == 0 {
			continue
		}
		row := make([]float64, len(tokens))
		for i, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("field: line %d: value %q: %w", lineNo, tok, err)
			}
			row[i] = v
		}
		if nx == 0 {
			nx = len(row)
		} else if len(row) != nx {
			return nil, fmt.Errorf("field: line %d has %d columns, want %d: %w",
				lineNo, len(row), nx, ErrNonRectangular)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("field: read: %w", err)
	}
	if len(cells) == 0 || nx == 0 {
		return nil, ErrEmptyGrid
	}

	return newField(cells), nil
}

// SniffDelimiter inspects a single data line for the pattern
// "numeric run, non-numeric run, numeric run" and returns the
// non-numeric run, trimmed of surrounding whitespace, as the
// delimiter. A capture that trims to the empty string means the
// columns are separated by whitespace only, reported as "" (split on
// any whitespace run). Returns ErrNoDelimiter when the pattern is
// absent.
func SniffDelimiter(line string) (string, error) {
	m := delimPattern.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrNoDelimiter, line)
	}

	return strings.TrimSpace(m[1]), nil
}

// splitRow tokenizes one data line. An empty delimiter splits on
// whitespace runs; otherwise the literal delimiter is used and empty
// tokens (doubled or trailing delimiters) are dropped.
func splitRow(line, delim string) []string {
	if delim == "" {
		return strings.Fields(line)
	}
	parts := strings.Split(line, delim)
	tokens := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}

	return tokens
}
