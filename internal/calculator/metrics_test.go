package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRecord(t *testing.T) {
	rec, err := ComputeRecord("TEST", []float64{100, 102, 101, 105})
	require.NoError(t, err)

	assert.Equal(t, "TEST", rec.Ticker)
	assert.Equal(t, 105.0, rec.Price)
	// stddev([ln 1.02, ln 101/102, ln 105/101]) * sqrt(252) = 0.389532...
	assert.Equal(t, 38.95, rec.VolatilityPct)
	// 105 * 0.389532... * sqrt(7/365) = 5.6641...
	assert.Equal(t, 5.66, rec.ExpectedMove)
	// 105 + 5.6641... * 1.5 = 113.496...
	assert.Equal(t, 113.5, rec.TargetPrice)
	assert.Equal(t, "5-7 Days", rec.HoldTime)
}

func TestComputeRecord_Deterministic(t *testing.T) {
	closes := []float64{100, 102, 101, 105, 103, 108}
	first, err := ComputeRecord("TEST", closes)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ComputeRecord("TEST", closes)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeRecord_DegenerateSeries(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
	}{
		{"empty", nil},
		{"single close", []float64{100}},
		{"single return", []float64{50, 51}},
		{"zero close", []float64{100, 0, 102, 103}},
		{"negative close", []float64{100, -1, 102, 103}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ComputeRecord("TEST", tt.closes)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestComputeRecord_TargetAbovePrice(t *testing.T) {
	// Expected move is non-negative, so the target never undercuts
	// the current price.
	series := [][]float64{
		{100, 102, 101, 105},
		{10, 10, 10, 10},
		{3.5, 3.4, 3.6, 3.3, 3.7},
		{250, 240, 260, 255, 245, 270},
	}
	for _, closes := range series {
		rec, err := ComputeRecord("TEST", closes)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rec.ExpectedMove, 0.0)
		assert.GreaterOrEqual(t, rec.TargetPrice, rec.Price)
	}
}

func TestComputeRecord_FlatSeries(t *testing.T) {
	// Zero volatility is valid: the record collapses onto the price.
	rec, err := ComputeRecord("TEST", []float64{10, 10, 10, 10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, rec.Price)
	assert.Equal(t, 0.0, rec.VolatilityPct)
	assert.Equal(t, 0.0, rec.ExpectedMove)
	assert.Equal(t, 10.0, rec.TargetPrice)
}

func TestComputeRecord_Rounding(t *testing.T) {
	rec, err := ComputeRecord("TEST", []float64{100.123, 101.456, 99.789, 102.345})
	require.NoError(t, err)
	for _, v := range []float64{rec.Price, rec.VolatilityPct, rec.ExpectedMove, rec.TargetPrice} {
		assert.Equal(t, round2(v), v, "field not rounded to 2 decimals: %v", v)
	}
}
