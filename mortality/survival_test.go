// SPDX-License-Identifier: MIT

package mortality_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/actuneo/mortality"
)

// SurvivalSuite exercises Survival against the canonical fixture at 5%.
type SurvivalSuite struct {
	suite.Suite
	sf *mortality.Survival
}

func (s *SurvivalSuite) SetupTest() {
	s.sf = sampleSurvival(s.T(), 0.05)
}

// TestInit checks the bound rate and discount factor.
func (s *SurvivalSuite) TestInit() {
	s.Equal(0.05, s.sf.Rate())
	s.Equal(1/1.05, s.sf.Discount())
	s.NotNil(s.sf.Table())
}

// TestNpx_Edges pins n == 0 and n < 0 for every age, tabulated or not.
func (s *SurvivalSuite) TestNpx_Edges() {
	for _, x := range []int{0, 20, 30, 100, 150} {
		s.Equal(1.0, s.sf.Npx(x, 0), "x=%d", x)
		s.Equal(0.0, s.sf.Npx(x, -1), "x=%d", x)
	}
}

// TestNpx_Scenario mirrors the reference scenario.
func (s *SurvivalSuite) TestNpx_Scenario() {
	p1 := s.sf.Npx(30, 1)
	s.Greater(p1, 0.0)
	s.Less(p1, 1.0)
	s.Greater(s.sf.Npx(30, 5), s.sf.Npx(30, 10))
}

// TestNpx_Monotone requires nPx non-increasing in n, across the table edge.
func (s *SurvivalSuite) TestNpx_Monotone() {
	for _, x := range []int{20, 30, 60, 99, 100} {
		prev := s.sf.Npx(x, 0)
		for n := 1; n <= 120; n++ {
			cur := s.sf.Npx(x, n)
			s.Require().LessOrEqual(cur, prev, "x=%d n=%d", x, n)
			prev = cur
		}
	}
}

// TestNqx_Complement asserts nQx + nPx == 1.
func (s *SurvivalSuite) TestNqx_Complement() {
	for _, x := range []int{20, 30, 75, 100} {
		for n := 0; n <= 90; n++ {
			s.InDelta(1.0, s.sf.Nqx(x, n)+s.sf.Npx(x, n), epsIdentity)
		}
	}
}

// TestNpx_Untabulated degrades to zero.
func (s *SurvivalSuite) TestNpx_Untabulated() {
	s.Equal(0.0, s.sf.Npx(15, 3), "x below the table")
	s.Equal(0.0, s.sf.Npx(150, 1), "x beyond the table")
}

// TestTpx covers the fractional year inside the table.
func (s *SurvivalSuite) TestTpx() {
	half := s.sf.Tpx(30, 0.5)
	s.Greater(half, 0.0)
	s.Less(half, 1.0)
	s.Greater(half, s.sf.Npx(30, 1))

	s.Equal(1.0, s.sf.Tpx(30, 0))
	s.Equal(0.0, s.sf.Tpx(30, -0.5))
	s.True(math.IsNaN(s.sf.Tpx(30, math.NaN())))
	s.Equal(s.sf.Npx(30, 7), s.sf.Tpx(30, 7), "integral t reduces to nPx")
}

// TestAnnuities checks the due/immediate identity and whole-life dominance.
func (s *SurvivalSuite) TestAnnuities() {
	imm := s.sf.AnnuityImmediate(30, 10)
	due := s.sf.AnnuityDue(30, 10)
	s.Greater(imm, 0.0)
	s.Greater(due, imm)

	for _, x := range []int{20, 30, 64, 99} {
		for n := 1; n <= 40; n++ {
			s.InDelta(1.0, s.sf.AnnuityDue(x, n)-s.sf.AnnuityImmediate(x, n), epsIdentity)
		}
	}

	whole := s.sf.WholeLifeAnnuityDue(30)
	for n := 1; n < 70; n++ {
		s.GreaterOrEqual(whole, s.sf.AnnuityDue(30, n))
	}
	s.Greater(s.sf.WholeLifeAnnuityImmediate(30), imm)
	s.InDelta(1.0, whole-s.sf.WholeLifeAnnuityImmediate(30), epsIdentity)
	s.Equal(0.0, s.sf.AnnuityDue(30, 0))
}

// TestAssurances checks term ≤ whole life and the premium alias.
func (s *SurvivalSuite) TestAssurances() {
	whole := s.sf.WholeLifeAssurance(30)
	term := s.sf.Assurance(30, 20)
	s.Greater(whole, 0.0)
	s.Greater(term, 0.0)
	s.Less(term, whole)

	for n := 1; n < 70; n++ {
		s.LessOrEqual(s.sf.Assurance(30, n), whole)
	}
	s.Equal(term, s.sf.NetSinglePremium(30, 20))
	s.Equal(whole, s.sf.WholeLifeNetSinglePremium(30))
	s.Equal(0.0, s.sf.WholeLifeAssurance(100), "no full year left at the last age")
}

// TestWholeLife_Untabulated yields NaN because the horizon is undefined.
func (s *SurvivalSuite) TestWholeLife_Untabulated() {
	s.True(math.IsNaN(s.sf.WholeLifeAnnuityDue(15)))
	s.True(math.IsNaN(s.sf.WholeLifeAnnuityImmediate(15)))
	s.True(math.IsNaN(s.sf.WholeLifeAssurance(15)))
}

func TestSurvivalSuite(t *testing.T) {
	suite.Run(t, new(SurvivalSuite))
}

// TestNewSurvival_Errors covers constructor validation.
func TestNewSurvival_Errors(t *testing.T) {
	_, err := mortality.NewSurvival(nil, 0.05)
	require.ErrorIs(t, err, mortality.ErrNilTable)

	tbl := tinyTable(t)
	for _, i := range []float64{-1, -2, math.NaN(), math.Inf(1)} {
		_, err = mortality.NewSurvival(tbl, i)
		require.ErrorIs(t, err, mortality.ErrInvalidRate, "i=%v", i)
	}
}

// TestSurvival_Tiny verifies every primitive against hand-computed values
// at i = 0, where v = 1 and present values reduce to sums of probabilities.
func TestSurvival_Tiny(t *testing.T) {
	sf, err := mortality.NewSurvival(tinyTable(t), 0)
	require.NoError(t, err)

	// in-table products
	require.InDelta(t, 0.9, sf.Npx(0, 1), epsRef)
	require.InDelta(t, 0.72, sf.Npx(0, 2), epsRef)
	// beyond ω = 2: 0.72 · 0.5^(n-2)
	require.InDelta(t, 0.36, sf.Npx(0, 3), epsRef)
	require.InDelta(t, 0.18, sf.Npx(0, 4), epsRef)
	require.InDelta(t, 0.4, sf.Npx(1, 2), epsRef)

	// linear correction inside, constant force at the edge
	require.InDelta(t, 0.95, sf.Tpx(0, 0.5), epsRef)
	require.InDelta(t, 0.9*0.95, sf.Tpx(0, 1.25), epsRef)
	require.InDelta(t, 0.8*math.Sqrt(0.5), sf.Tpx(1, 1.5), epsRef)
	require.InDelta(t, 0.72*math.Pow(0.5, 0.25), sf.Tpx(0, 2.25), epsRef)

	// ä_0 = 1 + 0.9 + 0.72
	require.InDelta(t, 2.62, sf.AnnuityDue(0, 3), epsRef)
	require.InDelta(t, 2.62, sf.WholeLifeAnnuityDue(0), epsRef)
	require.InDelta(t, 1.62, sf.WholeLifeAnnuityImmediate(0), epsRef)

	// death probabilities by year: 0.1, 0.2, 0.5
	require.InDelta(t, 0.8, sf.Assurance(0, 3), epsRef)
	require.InDelta(t, 0.3, sf.WholeLifeAssurance(0), epsRef)
}

// TestSurvival_GappedTable shows untabulated endpoints inside the range.
func TestSurvival_GappedTable(t *testing.T) {
	tbl, err := mortality.NewTable([]int{0, 2, 4}, []float64{0.1, 0.1, 0.1})
	require.NoError(t, err)
	sf, err := mortality.NewSurvival(tbl, 0.05)
	require.NoError(t, err)

	require.Equal(t, 0.0, sf.Npx(0, 1), "x+n not tabulated")
	require.Equal(t, 0.0, sf.Npx(1, 1), "x not tabulated")
	require.InDelta(t, 0.9, sf.Npx(0, 2), epsRef)
	require.True(t, math.IsNaN(sf.Tpx(0, 1.5)), "missing q_{x+n} propagates NaN")
}

// TestSurvival_ConcurrentReaders shares one instance across goroutines.
func TestSurvival_ConcurrentReaders(t *testing.T) {
	sf := sampleSurvival(t, 0.05)
	want := sf.WholeLifeAnnuityDue(30)

	var wg sync.WaitGroup
	got := make([]float64, 16)
	for g := range got {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			got[g] = sf.WholeLifeAnnuityDue(30)
		}(g)
	}
	wg.Wait()

	for _, v := range got {
		require.Equal(t, want, v)
	}
}
