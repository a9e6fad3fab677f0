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

// unitSuffix captures a trailing bracketed unit on a stat key,
// e.g. "Pressure[Pa]".
var unitSuffix = regexp.MustCompile(`\[(.*?)\]$`)

// UnitNone is recorded for quantities whose key carries no unit suffix.
const UnitNone = "-"

// StatFile holds a parsed simulation statistics file: two referenced
// file paths followed by named (value, unit) quantities.
type StatFile struct {
	// MapFile and PVTFile are the two file references from the header.
	MapFile string
	PVTFile string
	// Keys preserves quantity order as encountered.
	Keys []string
	// Data maps quantity name to value, Units to its unit (UnitNone
	// when absent).
	Data  map[string]float64
	Units map[string]string
}

// LoadStatFile reads and parses the statistics file at path.
func LoadStatFile(path string) (*StatFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: open %s: %w", path, err)
	}
	defer file.Close()

	sf, err := ParseStatFile(file)
	if err != nil {
		return nil, fmt.Errorf("field: parse %s: %w", path, err)
	}

	return sf, nil
}

// ParseStatFile parses the statistics format: two header lines of the
// form "<label> <path>", then alternating comma-separated key and
// value lines, one value per key. Keys may carry a bracketed unit
// suffix. Blank lines, '#' comment lines and trailing commas are
// ignored. Structure violations fail with ErrStatHeader or
// ErrStatMalformed; nothing partial is returned.
func ParseStatFile(r io.Reader) (*StatFile, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), ","))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("field: read: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: missing header lines", ErrStatHeader)
	}

	sf := &StatFile{
		Data:  make(map[string]float64),
		Units: make(map[string]string),
	}
	var err error
	if sf.MapFile, err = headerPath(lines[0]); err != nil {
		return nil, err
	}
	if sf.PVTFile, err = headerPath(lines[1]); err != nil {
		return nil, err
	}

	body := lines[2:]
	if len(body)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of key/value lines", ErrStatMalformed)
	}
	for i := 0; i < len(body); i += 2 {
		keys := strings.Split(body[i], ",")
		vals := strings.Split(body[i+1], ",")
		if len(keys) != len(vals) {
			return nil, fmt.Errorf("%w: %d keys but %d values", ErrStatMalformed, len(keys), len(vals))
		}
		for j, rawKey := range keys {
			key := strings.TrimSpace(rawKey)
			unit := UnitNone
			if m := unitSuffix.FindStringSubmatch(key); m != nil {
				unit = m[1]
				key = strings.TrimSpace(unitSuffix.ReplaceAllString(key, ""))
			}
			v, perr := strconv.ParseFloat(strings.TrimSpace(vals[j]), 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: value %q for key %q", ErrStatMalformed, strings.TrimSpace(vals[j]), key)
			}
			if _, seen := sf.Data[key]; !seen {
				sf.Keys = append(sf.Keys, key)
			}
			sf.Data[key] = v
			sf.Units[key] = unit
		}
	}

	return sf, nil
}

// headerPath extracts the file path from a "<label> <path>" header line.
func headerPath(line string) (string, error) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: %q", ErrStatHeader, line)
	}

	return strings.TrimSpace(parts[1]), nil
}
