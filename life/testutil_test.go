// SPDX-License-Identifier: MIT

package life_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actuneo/mortality"
)

const eps = 1e-6

// sampleTable: ages 20..100, qx = clip(0.001 + 0.00005·(age-20), 0, 0.1).
func sampleTable(tb testing.TB) *mortality.Table {
	tb.Helper()
	ages := make([]int, 0, 81)
	qx := make([]float64, 0, 81)
	for a := 20; a <= 100; a++ {
		ages = append(ages, a)
		qx = append(qx, math.Min(0.001+0.00005*float64(a-20), 0.1))
	}
	tbl, err := mortality.NewTable(ages, qx, mortality.WithName("Test Table"))
	require.NoError(tb, err)

	return tbl
}

// tinyTable: ages 0,1,2 with qx 0.1, 0.2, 0.5. At i = 0 every present
// value is a plain sum of probabilities.
func tinyTable(tb testing.TB) *mortality.Table {
	tb.Helper()
	tbl, err := mortality.NewTable([]int{0, 1, 2}, []float64{0.1, 0.2, 0.5})
	require.NoError(tb, err)

	return tbl
}

func nan() float64 { return math.NaN() }
