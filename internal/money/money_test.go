package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want int64
	}{
		{"whole", 10, 1000},
		{"two decimals", 32.98, 3298},
		{"float noise", 32.980000000000004, 3298},
		{"halfway rounds to even, down", 1.005, 100},
		{"halfway rounds to even, up", 1.015, 102},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tc.in)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsNonFinite(t *testing.T) {
	t.Parallel()

	_, ok := Parse(math.NaN())
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 32.98, Format(3298), 1e-9)
	assert.InDelta(t, 0.0, Format(0), 1e-9)
	assert.InDelta(t, 10.0, Format(1000), 1e-9)
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []float64{0.01, 1, 10.5, 99.99, 1234.56}
	for _, a := range amounts {
		minor, ok := Parse(a)
		assert.True(t, ok)
		assert.InDelta(t, a, Format(minor), 1e-9)
	}
}
