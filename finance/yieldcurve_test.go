// SPDX-License-Identifier: MIT

package finance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actuneo/finance"
)

func sampleCurve(tb testing.TB) *finance.YieldCurve {
	tb.Helper()
	// deliberately unsorted
	c, err := finance.NewYieldCurve([]float64{5, 1, 10, 2}, []float64{0.03, 0.02, 0.035, 0.025})
	require.NoError(tb, err)

	return c
}

func TestNewYieldCurve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		ms, ys []float64
		want   error
	}{
		{"mismatch", []float64{1, 2}, []float64{0.01}, finance.ErrLengthMismatch},
		{"one point", []float64{1}, []float64{0.01}, finance.ErrTooFewPoints},
		{"zero maturity", []float64{0, 1}, []float64{0.01, 0.02}, finance.ErrNonPositiveMaturity},
		{"NaN maturity", []float64{math.NaN(), 1}, []float64{0.01, 0.02}, finance.ErrNonPositiveMaturity},
		{"duplicate", []float64{2, 1, 2}, []float64{0.01, 0.02, 0.03}, finance.ErrDuplicateMaturity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := finance.NewYieldCurve(tc.ms, tc.ys)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestYieldCurve_Interpolation(t *testing.T) {
	c := sampleCurve(t)

	pts := c.Points()
	require.Len(t, pts, 4)
	assert.Equal(t, finance.Point{Maturity: 1, Yield: 0.02}, pts[0])
	assert.Equal(t, finance.Point{Maturity: 10, Yield: 0.035}, pts[3])

	assert.Equal(t, 0.02, c.Yield(0.5), "flat below the first node")
	assert.Equal(t, 0.025, c.Yield(2))
	assert.InDelta(t, 0.025+0.005/3, c.Yield(3), 1e-12)
	assert.InDelta(t, 0.04, c.Yield(15), 1e-12, "extrapolates the last slope")
	assert.Equal(t, c.Yield(3), c.SpotRate(3))
	assert.Equal(t, "YieldCurve(maturities=4, range=(1.0-10.0 years), method='linear')", c.String())
}

func TestYieldCurve_ForwardAndDiscount(t *testing.T) {
	c := sampleCurve(t)

	f, err := c.ForwardRate(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.030025, f, eps)

	_, err = c.ForwardRate(2, 2)
	require.ErrorIs(t, err, finance.ErrBadInterval)

	assert.InDelta(t, 0.951814, c.DiscountFactor(2), eps)

	pv, err := c.PresentValue([]float64{100}, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 95.181440, pv, eps)
	_, err = c.PresentValue([]float64{100}, nil)
	require.ErrorIs(t, err, finance.ErrLengthMismatch)
}

func TestYieldCurve_Shift(t *testing.T) {
	c := sampleCurve(t)
	s := c.Shift(4, 0.01)

	assert.Equal(t, 0.03, c.Yield(5), "original untouched")
	assert.InDelta(t, 0.04, s.Yield(5), 1e-12, "nearest node bumped")
	assert.Equal(t, 0.025, s.Yield(2))

	tie := c.Shift(1.5, 0.01)
	assert.InDelta(t, 0.03, tie.Yield(1), 1e-12, "ties go to the shorter node")
}
