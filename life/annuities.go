// SPDX-License-Identifier: MIT

package life

import (
	"fmt"
	"math"

	"github.com/katalvlaran/actuneo/mortality"
)

// ContingentHorizon caps the number of years summed by Annuities.Contingent.
const ContingentHorizon = 80

// Annuities values annuities-certain and, when built WithTable, life
// annuities. Payments are per year; results are present values.
type Annuities struct {
	i  float64
	v  float64
	sf *mortality.Survival // nil without a table
}

// NewAnnuities returns an annuity calculator at interest rate i.
//
// Errors: mortality.ErrInvalidRate.
func NewAnnuities(i float64, opts ...Option) (*Annuities, error) {
	if math.IsNaN(i) || math.IsInf(i, 0) || i <= -1 {
		return nil, fmt.Errorf("%w: %g", mortality.ErrInvalidRate, i)
	}
	cfg := newConfig(opts)
	a := &Annuities{i: i, v: 1 / (1 + i)}
	if cfg.table != nil {
		sf, err := mortality.NewSurvival(cfg.table, i)
		if err != nil {
			return nil, err
		}
		a.sf = sf
	}

	return a, nil
}

// Rate returns the interest rate.
func (a *Annuities) Rate() float64 { return a.i }

// HasTable reports whether life annuities are available.
func (a *Annuities) HasTable() bool { return a.sf != nil }

// Immediate is payment · a_n, paid at the end of each period.
func (a *Annuities) Immediate(periods int, payment float64) float64 {
	if a.i == 0 {
		return payment * float64(periods)
	}

	return payment * (1 - math.Pow(a.v, float64(periods))) / a.i
}

// Due is payment · ä_n, paid at the start of each period.
func (a *Annuities) Due(periods int, payment float64) float64 {
	if a.i == 0 {
		return payment * float64(periods)
	}

	return a.Immediate(periods, payment) * (1 + a.i)
}

// Increasing values payments growing geometrically by growth per period,
// the first one at t=1. When growth equals the interest rate every term
// discounts to payment·v.
func (a *Annuities) Increasing(periods int, payment, growth float64) float64 {
	if growth == a.i {
		return payment * float64(periods) * a.v
	}
	var pv float64
	for t := 1; t <= periods; t++ {
		pv += payment * math.Pow(1+growth, float64(t-1)) * math.Pow(a.v, float64(t))
	}

	return pv
}

// Decreasing values payments scaled by factor each period: payment·factor^(t-1).
func (a *Annuities) Decreasing(periods int, payment, factor float64) float64 {
	var pv float64
	for t := 1; t <= periods; t++ {
		pv += payment * math.Pow(factor, float64(t-1)) * math.Pow(a.v, float64(t))
	}

	return pv
}

// WithdrawalPeriod is one row of a withdrawal schedule.
type WithdrawalPeriod struct {
	Period     int
	Starting   float64
	Interest   float64
	Withdrawal float64
	Ending     float64
}

// WithdrawalPlan describes systematic withdrawals from a principal.
// Perpetual plans have no schedule and Periods == 0.
type WithdrawalPlan struct {
	Payment   float64
	Remaining float64
	Periods   int
	Perpetual bool
	Schedule  []WithdrawalPeriod
}

// Withdrawal builds a finite plan over periods. The level payment is
// principal·w / (1 − (1+w−i)^−n); the fund earns i each period.
// When w == i the payment reduces to principal/n.
//
// Errors: ErrInvalidPeriods.
func (a *Annuities) Withdrawal(principal, w float64, periods int) (WithdrawalPlan, error) {
	if periods <= 0 {
		return WithdrawalPlan{}, fmt.Errorf("%w: %d", ErrInvalidPeriods, periods)
	}

	payment := principal / float64(periods)
	if denom := 1 - math.Pow(1+w-a.i, -float64(periods)); w != a.i && denom != 0 {
		payment = principal * w / denom
	}

	plan := WithdrawalPlan{
		Payment:  payment,
		Periods:  periods,
		Schedule: make([]WithdrawalPeriod, 0, periods),
	}
	balance := principal
	for t := 1; t <= periods; t++ {
		interest := balance * a.i
		next := balance + interest - payment
		plan.Schedule = append(plan.Schedule, WithdrawalPeriod{
			Period:     t,
			Starting:   balance,
			Interest:   interest,
			Withdrawal: payment,
			Ending:     next,
		})
		balance = next
	}
	plan.Remaining = balance

	return plan, nil
}

// PerpetualWithdrawal withdraws principal·w forever, leaving the principal intact.
func (a *Annuities) PerpetualWithdrawal(principal, w float64) WithdrawalPlan {
	return WithdrawalPlan{Payment: principal * w, Remaining: principal, Perpetual: true}
}

func (a *Annuities) survival() (*mortality.Survival, error) {
	if a.sf == nil {
		return nil, ErrNoTable
	}

	return a.sf, nil
}

// LifeImmediate is payment · a_x.
func (a *Annuities) LifeImmediate(x int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}

	return payment * sf.WholeLifeAnnuityImmediate(x), nil
}

// LifeDue is payment · ä_x.
func (a *Annuities) LifeDue(x int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}

	return payment * sf.WholeLifeAnnuityDue(x), nil
}

// TemporaryImmediate is payment · a_{x:n}.
func (a *Annuities) TemporaryImmediate(x, n int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}

	return payment * sf.AnnuityImmediate(x, n), nil
}

// TemporaryDue is payment · ä_{x:n}.
func (a *Annuities) TemporaryDue(x, n int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}

	return payment * sf.AnnuityDue(x, n), nil
}

// DeferredLife is uPx · vᵘ · payment · a_{x+u}.
func (a *Annuities) DeferredLife(x, u int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}
	s := sf.Npx(x, u)
	if s == 0 {
		return 0, nil
	}
	life, _ := a.LifeImmediate(x+u, payment)

	return s * math.Pow(a.v, float64(u)) * life, nil
}

// Guaranteed is the n-year temporary annuity followed by the
// n-year deferred whole-life annuity.
func (a *Annuities) Guaranteed(x, n int, payment float64) (float64, error) {
	temp, err := a.TemporaryImmediate(x, n, payment)
	if err != nil {
		return 0, err
	}
	deferred, _ := a.DeferredLife(x, n, payment)

	return temp + deferred, nil
}

// Contingent pays at the end of each year t in which (x) is alive and
// (y) has died, over ContingentHorizon years. Lives are independent.
func (a *Annuities) Contingent(x, y int, payment float64) (float64, error) {
	sf, err := a.survival()
	if err != nil {
		return 0, err
	}
	var (
		vt = 1.0
		pv float64
	)
	for t := 1; t <= ContingentHorizon; t++ {
		vt *= a.v
		pv += vt * sf.Npx(x, t) * (1 - sf.Npx(y, t)) * payment
	}

	return pv, nil
}
