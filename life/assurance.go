// SPDX-License-Identifier: MIT

package life

import (
	"math"

	"github.com/katalvlaran/actuneo/mortality"
)

// Assurance values insurance benefits of 1 payable on death or survival.
//
// Every method is a composition over mortality.Survival and inherits its
// soft-sentinel behaviour for untabulated ages.
type Assurance struct {
	sf             *mortality.Survival
	expenseLoading float64
}

// NewAssurance binds t at interest rate i.
//
// Errors: mortality.ErrNilTable, mortality.ErrInvalidRate.
func NewAssurance(t *mortality.Table, i float64, opts ...Option) (*Assurance, error) {
	sf, err := mortality.NewSurvival(t, i)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	return &Assurance{sf: sf, expenseLoading: cfg.expenseLoading}, nil
}

// Survival exposes the underlying survival functions.
func (a *Assurance) Survival() *mortality.Survival { return a.sf }

// ExpenseLoading returns the proportional loading used by GrossPremium.
func (a *Assurance) ExpenseLoading() float64 { return a.expenseLoading }

// WholeLife is A_x.
func (a *Assurance) WholeLife(x int) float64 {
	return a.sf.WholeLifeAssurance(x)
}

// Term is the n-year term assurance A¹_{x:n}.
func (a *Assurance) Term(x, n int) float64 {
	return a.sf.Assurance(x, n)
}

// PureEndowment is nEx = nPx · vⁿ.
func (a *Assurance) PureEndowment(x, n int) float64 {
	return a.sf.Npx(x, n) * math.Pow(a.sf.Discount(), float64(n))
}

// Endowment is A_{x:n} = A¹_{x:n} + nEx.
func (a *Assurance) Endowment(x, n int) float64 {
	return a.Term(x, n) + a.PureEndowment(x, n)
}

// Deferred is a u-year deferred n-year term assurance:
// uPx · vᵘ · A¹_{x+u:n}. Zero when survival over the deferral is zero.
func (a *Assurance) Deferred(x, u, n int) float64 {
	s := a.sf.Npx(x, u)
	if s == 0 {
		return 0
	}

	return s * math.Pow(a.sf.Discount(), float64(u)) * a.Term(x+u, n)
}

// TemporaryAnnuity is the n-year annuity-immediate a_{x:n}.
func (a *Assurance) TemporaryAnnuity(x, n int) float64 {
	return a.sf.AnnuityImmediate(x, n)
}

// WholeLifeAnnuity is the whole-life annuity-immediate a_x.
func (a *Assurance) WholeLifeAnnuity(x int) float64 {
	return a.sf.WholeLifeAnnuityImmediate(x)
}

// Contingent pays 1 at the end of the year in which (x) dies, provided
// (y) is still alive then, within n years. Lives are independent.
func (a *Assurance) Contingent(x, y, n int) float64 {
	var (
		v   = a.sf.Discount()
		vt  = 1.0
		sum float64
	)
	for t := 1; t <= n; t++ {
		vt *= v
		death := a.sf.Npx(x, t-1) - a.sf.Npx(x, t)
		sum += vt * death * a.sf.Npx(y, t)
	}

	return sum
}

// GrossPremium loads a net premium: net·(1+loading) + initialExpenses.
func (a *Assurance) GrossPremium(net, initialExpenses float64) float64 {
	return net + net*a.expenseLoading + initialExpenses
}

// AnnualPremium spreads a single premium over an annuity factor and adds
// a gross margin. Zero when the factor is zero.
func (a *Assurance) AnnualPremium(nsp, annuityFactor, grossMargin float64) float64 {
	if annuityFactor == 0 {
		return 0
	}

	return nsp / annuityFactor * (1 + grossMargin)
}

// ReserveWholeLife is the policy value ratio A/a at attained age x+d.
func (a *Assurance) ReserveWholeLife(x, d int) float64 {
	age := x + d

	return ratio(a.WholeLife(age), a.WholeLifeAnnuity(age))
}

// ReserveTerm is the term policy value ratio at x+d; 0 once d ≥ n.
func (a *Assurance) ReserveTerm(x, n, d int) float64 {
	rem := n - d
	if rem <= 0 {
		return 0
	}
	age := x + d

	return ratio(a.Term(age, rem), a.TemporaryAnnuity(age, rem))
}

// ReserveEndowment is the endowment policy value ratio at x+d; 0 once d ≥ n.
func (a *Assurance) ReserveEndowment(x, n, d int) float64 {
	rem := n - d
	if rem <= 0 {
		return 0
	}
	age := x + d

	return ratio(a.Endowment(age, rem), a.TemporaryAnnuity(age, rem))
}

// ratio returns value/annuity, or value itself when there is no annuity.
func ratio(value, annuity float64) float64 {
	if annuity == 0 {
		return value
	}

	return value / annuity
}
