// Package stats aggregates per-seat session results across hands.
// Results are normalized to big blinds so sessions at different stakes
// are comparable.
package stats

import (
	"math"
	"sort"
)

// Outcome is one finished hand from a single seat's point of view
type Outcome struct {
	NetChips int
	PotSize  int
	Showdown bool
}

// Session accumulates a seat's results over a run of hands
type Session struct {
	bigBlind int

	Hands  int
	SumBB  float64
	SumBB2 float64
	values []float64

	ShowdownWins    int
	UncontestedWins int
	ShowdownBB      float64
	UncontestedBB   float64

	MaxPotBB float64
	BigPots  int // pots of 50bb or more
}

// NewSession creates a session tracker at the given big blind size
func NewSession(bigBlind int) *Session {
	if bigBlind <= 0 {
		bigBlind = 1
	}
	return &Session{bigBlind: bigBlind}
}

// Add incorporates one hand outcome
func (s *Session) Add(outcome Outcome) {
	netBB := float64(outcome.NetChips) / float64(s.bigBlind)
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.values = append(s.values, netBB)

	if netBB > 0 {
		if outcome.Showdown {
			s.ShowdownWins++
		} else {
			s.UncontestedWins++
		}
	}
	if outcome.Showdown {
		s.ShowdownBB += netBB
	} else {
		s.UncontestedBB += netBB
	}

	potBB := float64(outcome.PotSize) / float64(s.bigBlind)
	if potBB > s.MaxPotBB {
		s.MaxPotBB = potBB
	}
	if potBB >= 50 {
		s.BigPots++
	}
}

// Mean returns the mean result in big blinds per hand
func (s *Session) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of per-hand results
func (s *Session) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of per-hand results
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Session) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Session) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-hand result
func (s *Session) Median() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.values))
	copy(sorted, s.values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Balanced reports whether showdown and uncontested results sum to the
// session total, a cheap accounting check.
func (s *Session) Balanced() bool {
	return math.Abs(s.SumBB-s.ShowdownBB-s.UncontestedBB) <= 1e-6
}
