// SPDX-License-Identifier: MIT

package mortality

import (
	"fmt"
	"math"
)

// Row is one tabulated age with all of its columns.
type Row struct {
	Age int
	Qx  float64 // one-year probability of death
	Px  float64 // one-year probability of survival, 1 - Qx
	Lx  float64 // normalized survivors curve
	Dx  float64 // Lx * Qx
}

// Table is an immutable discrete life table.
//
// Columns are aligned by index: ages[i] has mortality qx[i], and the
// derived px, lx, dx are computed once by NewTable. index maps an age to
// its row for O(1) exact-match lookup; there is no interpolation across
// ages at this layer.
type Table struct {
	name     string
	metadata map[string]string

	ages []int
	qx   []float64
	px   []float64
	lx   []float64
	dx   []float64

	index map[int]int
}

// NewTable builds a Table from aligned ages and qx slices.
//
// Validation order: length → empty → qx range → age ordering.
// Both slices are copied.
//
// Errors: ErrLengthMismatch, ErrEmptyTable, ErrQxOutOfRange, ErrAgesNotIncreasing.
// Complexity: O(n) time and memory.
func NewTable(ages []int, qx []float64, opts ...TableOption) (*Table, error) {
	if len(ages) != len(qx) {
		return nil, fmt.Errorf("%w: %d ages, %d qx", ErrLengthMismatch, len(ages), len(qx))
	}
	if len(ages) == 0 {
		return nil, ErrEmptyTable
	}

	var i int
	for i = range qx {
		// NaN fails both comparisons and is rejected here too.
		if !(qx[i] >= 0 && qx[i] <= 1) {
			return nil, fmt.Errorf("%w: qx[%d]=%g (age %d)", ErrQxOutOfRange, i, qx[i], ages[i])
		}
	}
	for i = 1; i < len(ages); i++ {
		if ages[i] <= ages[i-1] {
			return nil, fmt.Errorf("%w: age %d follows %d", ErrAgesNotIncreasing, ages[i], ages[i-1])
		}
	}

	cfg := newTableConfig(DefaultTableName, opts)
	t := &Table{
		name:     cfg.name,
		metadata: cfg.metadata,
		ages:     append([]int(nil), ages...),
		qx:       append([]float64(nil), qx...),
		index:    make(map[int]int, len(ages)),
	}
	for i = range t.ages {
		t.index[t.ages[i]] = i
	}
	t.derive()

	return t, nil
}

// derive fills px, lx and dx.
//
// lx is accumulated backwards: lx[i] = Π px[i..n-1], then every entry is
// divided by lx[0] so that lx[0] == 1. A table containing qx == 1 makes
// that product zero; the raw curve is then kept unnormalized.
func (t *Table) derive() {
	n := len(t.qx)
	t.px = make([]float64, n)
	t.lx = make([]float64, n)
	t.dx = make([]float64, n)

	var i int
	for i = 0; i < n; i++ {
		t.px[i] = 1 - t.qx[i]
	}

	acc := 1.0
	for i = n - 1; i >= 0; i-- {
		acc *= t.px[i]
		t.lx[i] = acc
	}
	if l0 := t.lx[0]; l0 != 0 {
		for i = range t.lx {
			t.lx[i] /= l0
		}
	}

	for i = range t.dx {
		t.dx[i] = t.lx[i] * t.qx[i]
	}
}

// indexOf reports the row of age, if tabulated.
func (t *Table) indexOf(age int) (int, bool) {
	i, ok := t.index[age]
	return i, ok
}

// survivalBetween is the probability of surviving from row i to row j
// (i ≤ j): Π px[i..j). It equals lx[i]/lx[j] under the backward lx
// convention, but stays defined when lx collapses to zero.
func (t *Table) survivalBetween(i, j int) float64 {
	p := 1.0
	for k := i; k < j; k++ {
		p *= t.px[k]
	}

	return p
}

// Qx returns the one-year mortality rate at age, or NaN if age is not tabulated.
func (t *Table) Qx(age int) float64 {
	if i, ok := t.indexOf(age); ok {
		return t.qx[i]
	}

	return math.NaN()
}

// QxBatch returns Qx for every age, preserving order and length.
func (t *Table) QxBatch(ages []int) []float64 {
	out := make([]float64, len(ages))
	for i, a := range ages {
		out[i] = t.Qx(a)
	}

	return out
}

// Px returns 1 - Qx(age); NaN propagates for untabulated ages.
func (t *Table) Px(age int) float64 {
	return 1 - t.Qx(age)
}

// PxBatch returns Px for every age, preserving order and length.
func (t *Table) PxBatch(ages []int) []float64 {
	out := make([]float64, len(ages))
	for i, a := range ages {
		out[i] = t.Px(a)
	}

	return out
}

// Lookup returns the full row for age and whether it is tabulated.
func (t *Table) Lookup(age int) (Row, bool) {
	i, ok := t.indexOf(age)
	if !ok {
		return Row{}, false
	}

	return Row{Age: age, Qx: t.qx[i], Px: t.px[i], Lx: t.lx[i], Dx: t.dx[i]}, true
}

// LifeExpectancy returns the curtate expectation of life at age with a
// half-year correction for the current year:
//
//	e_x = 0.5 + Σ_{j>x} S(x→j)
//
// where S(x→j) is the probability of surviving from x to the later
// tabulated age j. The last tabulated age has no future data and yields 0.
//
// Errors: ErrAgeNotFound.
// Complexity: O(n) in the number of remaining ages.
func (t *Table) LifeExpectancy(age int) (float64, error) {
	idx, ok := t.indexOf(age)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrAgeNotFound, age)
	}
	last := len(t.ages) - 1
	if idx == last {
		return 0, nil
	}

	e := 0.5
	p := 1.0
	for j := idx + 1; j <= last; j++ {
		// running product keeps this linear; equals survivalBetween(idx, j)
		p *= t.px[j-1]
		e += p
	}

	return e, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Metadata returns a copy of the table metadata.
func (t *Table) Metadata() map[string]string {
	out := make(map[string]string, len(t.metadata))
	for k, v := range t.metadata {
		out[k] = v
	}

	return out
}

// Len returns the number of tabulated ages.
func (t *Table) Len() int { return len(t.ages) }

// MinAge returns the first tabulated age.
func (t *Table) MinAge() int { return t.ages[0] }

// MaxAge returns the last tabulated age.
func (t *Table) MaxAge() int { return t.ages[len(t.ages)-1] }

// Ages returns a copy of the tabulated ages.
func (t *Table) Ages() []int { return append([]int(nil), t.ages...) }

// QxSeries returns a copy of the qx column.
func (t *Table) QxSeries() []float64 { return append([]float64(nil), t.qx...) }

// PxSeries returns a copy of the px column.
func (t *Table) PxSeries() []float64 { return append([]float64(nil), t.px...) }

// LxSeries returns a copy of the lx column.
func (t *Table) LxSeries() []float64 { return append([]float64(nil), t.lx...) }

// DxSeries returns a copy of the dx column.
func (t *Table) DxSeries() []float64 { return append([]float64(nil), t.dx...) }

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("MortalityTable(name='%s', ages=%d, range=(%d-%d))",
		t.name, len(t.ages), t.MinAge(), t.MaxAge())
}
