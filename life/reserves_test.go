// SPDX-License-Identifier: MIT

package life_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/actuneo/life"
	"github.com/katalvlaran/actuneo/mortality"
)

// ReservesSuite runs reserve calculations over the tiny table at i = 0 and
// the fixture table at 5%.
type ReservesSuite struct {
	suite.Suite
	tiny   *life.Reserves
	sample *life.Reserves
}

func (s *ReservesSuite) SetupTest() {
	var err error
	s.tiny, err = life.NewReserves(tinyTable(s.T()), 0)
	s.Require().NoError(err)
	s.sample, err = life.NewReserves(sampleTable(s.T()), 0.05,
		life.WithExpenseRate(0.1), life.WithProfitMargin(0.05))
	s.Require().NoError(err)
}

func (s *ReservesSuite) TestProspective_Tiny() {
	// A = 0.8, a = 1.62
	s.InDelta(0.393827, s.tiny.ProspectiveTerm(0, 3, 0, 0.1, 1), eps)
	// a_{0:1} = 0 → A·S − P, not floored
	s.InDelta(-0.4, s.tiny.ProspectiveTerm(0, 1, 0, 0.5, 1), eps)
	s.Equal(0.0, s.tiny.ProspectiveTerm(0, 3, 3, 0.1, 1))
	s.Equal(0.0, s.tiny.ProspectiveEndowment(0, 2, 4, 0.1, 1))
	// A_0 = 0.3, a_0 = 1.62
	s.InDelta((300-10*1.62)/1.62, s.tiny.ProspectiveWholeLife(0, 0, 10, 1000), eps)
	s.Equal(0.0, s.tiny.ProspectiveWholeLife(0, 0, 1000, 1000), "floored at zero")
}

func (s *ReservesSuite) TestRetrospective_Tiny() {
	// one year: (1 − 0.1)/0.9
	s.InDelta(1.0, s.tiny.Retrospective(0, 1, 1, 1), eps)
	// two years: (1 − 0.1 + 0.9 − 0.18)/0.72
	s.InDelta(2.25, s.tiny.Retrospective(0, 2, 1, 1), eps)
	s.Equal(0.0, s.tiny.Retrospective(0, 1, 1, 10), "floored at zero")
	s.Equal(0.0, s.tiny.Retrospective(0, 0, 1, 1))
	s.Equal(0.0, s.tiny.Retrospective(7, 2, 1, 1), "untabulated age")
}

func (s *ReservesSuite) TestScenario() {
	whole := s.sample.ProspectiveWholeLife(30, 10, 15, life.DefaultSumAssured)
	s.GreaterOrEqual(whole, 0.0)
	s.GreaterOrEqual(s.sample.ProspectiveTerm(30, 20, 5, 1, life.DefaultSumAssured), 0.0)
	s.GreaterOrEqual(s.sample.ProspectiveEndowment(30, 20, 5, 10, life.DefaultSumAssured), 0.0)
	s.GreaterOrEqual(s.sample.Retrospective(30, 8, 1500, life.DefaultSumAssured), 0.0)
	s.GreaterOrEqual(s.sample.NetLevelPremium(30, 10, 5, life.DefaultSumAssured), 0.0)
	s.Equal(0.0, s.sample.NetLevelPremium(30, 10, 1e6, life.DefaultSumAssured))
}

func (s *ReservesSuite) TestAdjustments() {
	s.InDelta(115.0, s.sample.Gross(100), eps)
	s.InDelta(125.0, s.sample.GrossWithExpense(100, 20), eps)
	s.Equal(30.0, s.sample.Release(100, 70))

	z := s.sample.Zillmerized(30000, 5000, 3, life.DefaultAmortizationPeriod)
	s.InDelta(26500.0, z, eps)
	s.Less(z, 30000.0)
	s.Equal(30000.0, s.sample.Zillmerized(30000, 5000, 15, life.DefaultAmortizationPeriod))
	s.Equal(0.0, s.sample.Zillmerized(100, 5000, 0, life.DefaultAmortizationPeriod))

	s.InDelta(50.0, s.sample.Contingency(1000, life.DefaultContingencyFactor), eps)
}

func (s *ReservesSuite) TestDistribution() {
	d, err := s.sample.Distribution([]float64{5, 1, 4, 2, 3}, 30)
	s.Require().NoError(err)
	s.Equal(3.0, d.Mean)
	s.Equal(3.0, d.Median)
	s.Equal(1.0, d.Min)
	s.Equal(5.0, d.Max)
	s.Equal(15.0, d.Total)
	s.Equal(0.5, d.Ratio)
	s.InDelta(2.0, d.P25, eps)
	s.InDelta(4.0, d.P75, eps)
	s.InDelta(4.6, d.P90, eps)
	s.InDelta(4.8, d.P95, eps)

	one, err := s.sample.Distribution([]float64{7}, 0)
	s.Require().NoError(err)
	s.Equal(7.0, one.P95)
	s.Equal(0.0, one.Ratio, "non-positive portfolio value")

	_, err = s.sample.Distribution(nil, 100)
	s.ErrorIs(err, life.ErrEmptyReserves)
}

func TestReservesSuite(t *testing.T) {
	suite.Run(t, new(ReservesSuite))
}

func TestNewReserves_Errors(t *testing.T) {
	_, err := life.NewReserves(nil, 0.05)
	require.ErrorIs(t, err, mortality.ErrNilTable)
}
