package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeCoordKey(t *testing.T) {
	tests := []struct {
		lon, lat  float64
		precision uint
		want      string
	}{
		{14.0001, 52.0004, 3, "14.000,52.000"},
		{14.0006, 52.0004, 3, "14.001,52.000"},
		{-0.0001, 0.0001, 3, "-0.000,0.000"},
		{19.456789, 52.123456, 2, "19.46,52.12"},
		{180.0, -90.0, 3, "180.000,-90.000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, QuantizeCoordKey(tc.lon, tc.lat, tc.precision))
	}
}

func TestQuantizeCoordKeyNearbyVerticesCollide(t *testing.T) {
	// the border-matching rule relies on vertices within half the precision
	// step quantizing to the same key
	a := QuantizeCoordKey(14.0003, 52.0001, 3)
	b := QuantizeCoordKey(14.0002, 51.9999, 3)
	assert.Equal(t, a, b)
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.235, RoundFloat(1.23456, 3))
	assert.Equal(t, 1.0, RoundFloat(1.4, 0))
	assert.Equal(t, -2.68, RoundFloat(-2.676, 2))
}

func TestTrimNonEmpty(t *testing.T) {
	s, ok := TrimNonEmpty("  POL  ")
	assert.True(t, ok)
	assert.Equal(t, "POL", s)

	_, ok = TrimNonEmpty("   ")
	assert.False(t, ok)

	_, ok = TrimNonEmpty("")
	assert.False(t, ok)
}

func TestReverseG(t *testing.T) {
	original := []int{1, 2, 3, 4}
	reversed := ReverseG(original)

	assert.Equal(t, []int{4, 3, 2, 1}, reversed)
	// input is not mutated
	assert.Equal(t, []int{1, 2, 3, 4}, original)

	assert.Empty(t, ReverseG([]string{}))
}

func TestStringToFloat64(t *testing.T) {
	v, err := StringToFloat64("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = StringToFloat64("cheap")
	assert.Error(t, err)
}

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, 1, MinInt(1, 3))
	assert.Equal(t, 3, MaxInt(1, 3))
	assert.Equal(t, -2, MinInt(-2, 0))
	assert.Equal(t, 0, MaxInt(-2, 0))
}

func TestWrapErrorfCarriesCode(t *testing.T) {
	cause := errors.New("boom")
	err := WrapErrorf(cause, ErrNotFound, "node %s not found", "X")

	var domainErr *Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrNotFound, domainErr.Code())
	assert.Contains(t, err.Error(), "X")
	assert.Equal(t, cause, errors.Unwrap(err))
}
