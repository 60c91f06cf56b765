package console

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_CountRepromptsUntilPositiveInteger(t *testing.T) {
	in := strings.NewReader("abc\n-2\n0\n3.5\n3\n")
	var out strings.Builder
	r := NewReader(in, &out)

	n, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// One prompt per attempt.
	assert.Equal(t, 5, strings.Count(out.String(), "Number of measurements:"))
	assert.Contains(t, out.String(), "Please enter a positive integer.")
}

func TestReader_MeasurementRepromptsUntilFinite(t *testing.T) {
	in := strings.NewReader("lux\nNaN\n+Inf\n 5.2 \n")
	var out strings.Builder
	r := NewReader(in, &out)

	v, err := r.Measurement(1)
	require.NoError(t, err)
	assert.Equal(t, 5.2, v)

	assert.Contains(t, out.String(), "Measurement 1 (lux):")
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a finite number."))
}

func TestReader_EOFSurfacesAsError(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)

	_, err := r.Count()
	assert.ErrorIs(t, err, io.EOF)
}

func TestValuesSource(t *testing.T) {
	src, err := ParseValues([]string{"5.0", "5.2", "4.8", "5.1"})
	require.NoError(t, err)

	n, err := src.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	first, err := src.Measurement(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, first)

	last, err := src.Measurement(4)
	require.NoError(t, err)
	assert.Equal(t, 5.1, last)

	_, err = src.Measurement(5)
	assert.Error(t, err)
}

func TestValuesSource_RejectsBadArguments(t *testing.T) {
	_, err := ParseValues([]string{"5.0", "lux"})
	assert.Error(t, err)

	_, err = ParseValues([]string{"NaN"})
	assert.Error(t, err)

	_, err = ParseValues([]string{"Inf"})
	assert.Error(t, err)
}
