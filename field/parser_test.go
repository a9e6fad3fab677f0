package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperlab/apermap/field"
)

//----------------------------------------------------------------------------//
// Delimiter sniffing
//----------------------------------------------------------------------------//

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"Comma", "1.0,2.0,3.0", ","},
		{"Tab", "1.0\t2.0", "\t"},
		{"Semicolon", "0.5;0.75", ";"},
		{"SingleSpace", "1.0 2.0", ""},
		{"WhitespaceRun", "1.0   2.0", ""},
		{"CommaWithSpaces", "1.0 , 2.0", ","},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := field.SniffDelimiter(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSniffDelimiter_NoPattern(t *testing.T) {
	for _, line := range []string{"", "aperture map", "1.0"} {
		_, err := field.SniffDelimiter(line)
		assert.ErrorIs(t, err, field.ErrNoDelimiter, "line %q", line)
	}
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_AutoDelimiter(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Comma", "1,2,3\n4,5,6\n"},
		{"Whitespace", "1 2 3\n4 5 6\n"},
		{"Tabs", "1\t2\t3\n4\t5\t6\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := field.Parse(strings.NewReader(tc.input), field.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, 2, f.NZ)
			assert.Equal(t, 3, f.NX)
			assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f.Flat())
		})
	}
}

func TestParse_ExplicitDelimiter(t *testing.T) {
	f, err := field.Parse(strings.NewReader("1;2\n3;4\n"), field.Options{Delim: ";"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, f.Flat())
}

func TestParse_SkipsCommentsAndBlanks(t *testing.T) {
	input := "# aperture map 2x2\n\n1 2\n# interior comment\n3 4\n\n"
	f, err := field.Parse(strings.NewReader(input), field.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, f.NZ)
	assert.Equal(t, []float64{1, 2, 3, 4}, f.Flat())
}

func TestParse_RowLengthMismatch(t *testing.T) {
	_, err := field.Parse(strings.NewReader("1 2 3\n4 5\n"), field.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, field.ErrNonRectangular)
	// The offending physical line and both column counts are named.
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "2 columns")
	assert.Contains(t, err.Error(), "want 3")
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "# only comments\n", "\n\n"} {
		_, err := field.Parse(strings.NewReader(input), field.DefaultOptions())
		assert.ErrorIs(t, err, field.ErrEmptyGrid, "input %q", input)
	}
}

func TestParse_BadValue(t *testing.T) {
	_, err := field.Parse(strings.NewReader("1 2\n3 x\n"), field.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

//----------------------------------------------------------------------------//
// Load
//----------------------------------------------------------------------------//

func TestLoad_MissingFile(t *testing.T) {
	_, err := field.Load("does-not-exist.txt", field.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.txt")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/map.txt"
	require.NoError(t, writeTestFile(path, "0.5,0.6\n0.7,0.8\n"))

	f, err := field.Load(path, field.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, path, f.Source)
	assert.Equal(t, []float64{0.5, 0.6, 0.7, 0.8}, f.Flat())

	fields, err := field.LoadAll([]string{path, path}, field.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.NotSame(t, fields[0], fields[1])

	_, err = field.LoadAll([]string{path, "missing.txt"}, field.DefaultOptions())
	require.Error(t, err)
}
