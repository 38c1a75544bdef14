// SPDX-License-Identifier: MIT

package finance

import (
	"fmt"
	"math"
)

// KeyRateBump is the one-basis-point shift used by KeyRateDurations.
const KeyRateBump = 0.0001

func presentValues(cashFlows, times []float64, y float64) ([]float64, float64, error) {
	if len(cashFlows) != len(times) {
		return nil, 0, fmt.Errorf("%w: %d cash flows, %d times", ErrLengthMismatch, len(cashFlows), len(times))
	}
	pvs := make([]float64, len(cashFlows))
	var total float64
	for k, cf := range cashFlows {
		pvs[k] = cf * math.Pow(1+y, -times[k])
		total += pvs[k]
	}

	return pvs, total, nil
}

// MacaulayDuration is the PV-weighted mean time of the cash flows at
// flat yield y. Zero when the total present value is zero.
//
// Errors: ErrLengthMismatch.
func MacaulayDuration(cashFlows, times []float64, y float64) (float64, error) {
	pvs, total, err := presentValues(cashFlows, times, y)
	if err != nil || total == 0 {
		return 0, err
	}
	var weighted float64
	for k, pv := range pvs {
		weighted += pv * times[k]
	}

	return weighted / total, nil
}

// ModifiedDuration is MacaulayDuration / (1+y).
//
// Errors: ErrLengthMismatch.
func ModifiedDuration(cashFlows, times []float64, y float64) (float64, error) {
	d, err := MacaulayDuration(cashFlows, times, y)
	if err != nil {
		return 0, err
	}

	return d / (1 + y), nil
}

// Convexity is Σ PV·t·(t+1) / (PV_total·(1+y)²). Zero when PV_total is zero.
//
// Errors: ErrLengthMismatch.
func Convexity(cashFlows, times []float64, y float64) (float64, error) {
	pvs, total, err := presentValues(cashFlows, times, y)
	if err != nil || total == 0 {
		return 0, err
	}
	var sum float64
	for k, pv := range pvs {
		t := times[k]
		sum += pv * t * (t + 1)
	}

	return sum / (total * (1 + y) * (1 + y)), nil
}

// BondCashFlows lays out a level-coupon bond: int(maturity·freq) coupons
// of face·coupon/freq at times k/freq, with face added to the last one.
// A maturity shorter than one coupon period yields no cash flows.
//
// Errors: ErrInvalidFrequency.
func BondCashFlows(face, coupon, maturity float64, freq int) (cashFlows, times []float64, err error) {
	if freq < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidFrequency, freq)
	}
	periods := int(maturity * float64(freq))
	if periods <= 0 {
		return []float64{}, []float64{}, nil
	}
	payment := face * coupon / float64(freq)
	cashFlows = make([]float64, periods)
	times = make([]float64, periods)
	for k := range cashFlows {
		cashFlows[k] = payment
		times[k] = float64(k+1) / float64(freq)
	}
	cashFlows[periods-1] += face

	return cashFlows, times, nil
}

// BondDuration is the Macaulay duration of a level-coupon bond.
//
// Errors: ErrInvalidFrequency.
func BondDuration(face, coupon, maturity, y float64, freq int) (float64, error) {
	cfs, times, err := BondCashFlows(face, coupon, maturity, freq)
	if err != nil {
		return 0, err
	}

	return MacaulayDuration(cfs, times, y)
}

// BondConvexity is the convexity of a level-coupon bond.
//
// Errors: ErrInvalidFrequency.
func BondConvexity(face, coupon, maturity, y float64, freq int) (float64, error) {
	cfs, times, err := BondCashFlows(face, coupon, maturity, freq)
	if err != nil {
		return 0, err
	}

	return Convexity(cfs, times, y)
}

// PriceChange approximates the price move for a yield change dy:
// −D·dy·P + ½·C·dy²·P.
func PriceChange(duration, convexity, dy, price float64) float64 {
	return -duration*dy*price + 0.5*convexity*dy*dy*price
}

// Position is one holding in a portfolio. Value, when positive, weights
// the holding; otherwise its present value at Yield does.
type Position struct {
	CashFlows []float64
	Times     []float64
	Yield     float64
	Value     float64
}

// PortfolioDuration is the value-weighted modified duration of the
// positions. A non-nil y overrides every position's own Yield. Zero when
// the total weight is zero.
//
// Errors: ErrLengthMismatch, wrapped with the offending position index.
func PortfolioDuration(positions []Position, y *float64) (float64, error) {
	var total, weighted float64
	for k, p := range positions {
		yield := p.Yield
		if y != nil {
			yield = *y
		}
		_, pv, err := presentValues(p.CashFlows, p.Times, yield)
		if err != nil {
			return 0, fmt.Errorf("position %d: %w", k, err)
		}
		weight := pv
		if p.Value > 0 {
			weight = p.Value
		}
		d, _ := ModifiedDuration(p.CashFlows, p.Times, yield)
		total += weight
		weighted += weight * d
	}
	if total == 0 {
		return 0, nil
	}

	return weighted / total, nil
}

// KeyRate is the sensitivity to a one-basis-point bump at one maturity.
type KeyRate struct {
	Maturity float64
	Duration float64
}

// KeyRateDurations bumps the curve node nearest each key maturity by
// KeyRateBump and reports −ΔP/(P·bump). Results follow the order of keys;
// durations are zero when the base price is zero.
//
// Errors: ErrLengthMismatch.
func KeyRateDurations(cashFlows, times, keys []float64, curve *YieldCurve) ([]KeyRate, error) {
	base, err := curve.PresentValue(cashFlows, times)
	if err != nil {
		return nil, err
	}
	out := make([]KeyRate, 0, len(keys))
	for _, key := range keys {
		kr := KeyRate{Maturity: key}
		if base != 0 {
			bumped, _ := curve.Shift(key, KeyRateBump).PresentValue(cashFlows, times)
			kr.Duration = -(bumped - base) / (base * KeyRateBump)
		}
		out = append(out, kr)
	}

	return out, nil
}
