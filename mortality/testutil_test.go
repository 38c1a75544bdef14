// SPDX-License-Identifier: MIT

package mortality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actuneo/mortality"
)

const (
	// epsIdentity bounds algebraic identities (px+qx=1, due-immediate=1).
	epsIdentity = 1e-10

	// epsRef bounds comparisons against hand-computed reference values.
	epsRef = 1e-6
)

// sampleAges/sampleQx reproduce the canonical fixture: ages 20..100 with
// qx = clip(0.001 + 0.00005·(age-20), 0, 0.1).
func sampleAges() []int {
	ages := make([]int, 0, 81)
	for a := 20; a <= 100; a++ {
		ages = append(ages, a)
	}

	return ages
}

func sampleQx(ages []int) []float64 {
	qx := make([]float64, len(ages))
	for i, a := range ages {
		qx[i] = math.Min(math.Max(0.001+0.00005*float64(a-20), 0), 0.1)
	}

	return qx
}

// sampleTable builds the canonical fixture table or fails the test.
func sampleTable(tb testing.TB) *mortality.Table {
	tb.Helper()
	ages := sampleAges()
	tbl, err := mortality.NewTable(ages, sampleQx(ages), mortality.WithName("Test Table"))
	require.NoError(tb, err)

	return tbl
}

// sampleSurvival binds the fixture table at rate i.
func sampleSurvival(tb testing.TB, i float64) *mortality.Survival {
	tb.Helper()
	sf, err := mortality.NewSurvival(sampleTable(tb), i)
	require.NoError(tb, err)

	return sf
}

// tinyTable is a three-age table small enough to verify by hand:
//
//	age  qx   px
//	0    0.1  0.9
//	1    0.2  0.8
//	2    0.5  0.5
func tinyTable(tb testing.TB) *mortality.Table {
	tb.Helper()
	tbl, err := mortality.NewTable([]int{0, 1, 2}, []float64{0.1, 0.2, 0.5})
	require.NoError(tb, err)

	return tbl
}
