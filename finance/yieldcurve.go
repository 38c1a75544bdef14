// SPDX-License-Identifier: MIT

package finance

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Point is one (maturity, yield) node of a YieldCurve.
type Point struct {
	Maturity float64
	Yield    float64
}

// YieldCurve is an immutable term structure of annual spot rates.
//
// Between nodes the yield is interpolated linearly; below the first node
// it is flat; past the last node it extends the final segment's slope.
type YieldCurve struct {
	points []Point // sorted by Maturity, at least two
}

// NewYieldCurve copies and sorts the nodes by maturity.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrNonPositiveMaturity,
// ErrDuplicateMaturity.
func NewYieldCurve(maturities, yields []float64) (*YieldCurve, error) {
	if len(maturities) != len(yields) {
		return nil, fmt.Errorf("%w: %d maturities, %d yields", ErrLengthMismatch, len(maturities), len(yields))
	}
	pts := make([]Point, len(maturities))
	for k, m := range maturities {
		pts[k] = Point{Maturity: m, Yield: yields[k]}
	}

	return newCurve(pts)
}

func newCurve(pts []Point) (*YieldCurve, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}
	for _, p := range pts {
		if !(p.Maturity > 0) {
			return nil, fmt.Errorf("%w: %g", ErrNonPositiveMaturity, p.Maturity)
		}
	}
	slices.SortFunc(pts, func(a, b Point) int { return cmp.Compare(a.Maturity, b.Maturity) })
	for k := 1; k < len(pts); k++ {
		if pts[k].Maturity == pts[k-1].Maturity {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateMaturity, pts[k].Maturity)
		}
	}

	return &YieldCurve{points: pts}, nil
}

// Points returns a copy of the sorted nodes.
func (c *YieldCurve) Points() []Point { return slices.Clone(c.points) }

// Yield returns the interpolated yield at maturity t.
func (c *YieldCurve) Yield(t float64) float64 {
	p := c.points
	first, last := p[0], p[len(p)-1]
	switch {
	case t <= first.Maturity:
		return first.Yield
	case t >= last.Maturity:
		prev := p[len(p)-2]
		slope := (last.Yield - prev.Yield) / (last.Maturity - prev.Maturity)

		return last.Yield + slope*(t-last.Maturity)
	}
	// first index with Maturity >= t; t is strictly inside so k ≥ 1
	k, _ := slices.BinarySearchFunc(p, t, func(pt Point, t float64) int { return cmp.Compare(pt.Maturity, t) })
	lo, hi := p[k-1], p[k]

	return lo.Yield + (hi.Yield-lo.Yield)*(t-lo.Maturity)/(hi.Maturity-lo.Maturity)
}

// SpotRate is the zero-coupon rate at t; the curve stores spot rates.
func (c *YieldCurve) SpotRate(t float64) float64 { return c.Yield(t) }

// ForwardRate is the annual rate implied between start and end:
// ((1+s_end)^end / (1+s_start)^start)^(1/(end−start)) − 1.
//
// Errors: ErrBadInterval.
func (c *YieldCurve) ForwardRate(start, end float64) (float64, error) {
	if !(start < end) {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrBadInterval, start, end)
	}
	grow := math.Pow(1+c.SpotRate(end), end) / math.Pow(1+c.SpotRate(start), start)

	return math.Pow(grow, 1/(end-start)) - 1, nil
}

// DiscountFactor is (1+s_t)^−t.
func (c *YieldCurve) DiscountFactor(t float64) float64 {
	return math.Pow(1+c.SpotRate(t), -t)
}

// PresentValue discounts cash flows at their times along the curve.
//
// Errors: ErrLengthMismatch.
func (c *YieldCurve) PresentValue(cashFlows, times []float64) (float64, error) {
	if len(cashFlows) != len(times) {
		return 0, fmt.Errorf("%w: %d cash flows, %d times", ErrLengthMismatch, len(cashFlows), len(times))
	}
	var pv float64
	for k, cf := range cashFlows {
		pv += cf * c.DiscountFactor(times[k])
	}

	return pv, nil
}

// Shift returns a new curve with bump added to the node nearest maturity.
// Ties go to the shorter node.
func (c *YieldCurve) Shift(maturity, bump float64) *YieldCurve {
	pts := c.Points()
	best := 0
	for k := 1; k < len(pts); k++ {
		if math.Abs(pts[k].Maturity-maturity) < math.Abs(pts[best].Maturity-maturity) {
			best = k
		}
	}
	pts[best].Yield += bump

	return &YieldCurve{points: pts}
}

// String implements fmt.Stringer.
func (c *YieldCurve) String() string {
	return fmt.Sprintf("YieldCurve(maturities=%d, range=(%.1f-%.1f years), method='linear')",
		len(c.points), c.points[0].Maturity, c.points[len(c.points)-1].Maturity)
}
