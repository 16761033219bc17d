package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAggregates(t *testing.T) {
	t.Parallel()

	s := NewSession(2)
	s.Add(Outcome{NetChips: 10, PotSize: 20, Showdown: true})   // +5bb
	s.Add(Outcome{NetChips: -4, PotSize: 8, Showdown: false})   // -2bb
	s.Add(Outcome{NetChips: 6, PotSize: 200, Showdown: false})  // +3bb, 100bb pot
	s.Add(Outcome{NetChips: -12, PotSize: 24, Showdown: true})  // -6bb

	assert.Equal(t, 4, s.Hands)
	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.UncontestedWins)
	assert.InDelta(t, -1.0, s.ShowdownBB, 1e-9)
	assert.InDelta(t, 1.0, s.UncontestedBB, 1e-9)
	assert.True(t, s.Balanced())

	assert.InDelta(t, 100.0, s.MaxPotBB, 1e-9)
	assert.Equal(t, 1, s.BigPots)
}

func TestSessionSpread(t *testing.T) {
	t.Parallel()

	s := NewSession(1)
	for _, chips := range []int{-2, 0, 2} {
		s.Add(Outcome{NetChips: chips})
	}

	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	assert.InDelta(t, 0.0, s.Median(), 1e-9)
	assert.InDelta(t, 2.0, s.StdDev(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, 0.0)
	assert.Greater(t, hi, 0.0)
}

func TestEmptySessionIsSafe(t *testing.T) {
	t.Parallel()

	s := NewSession(2)
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.StdDev())
	assert.True(t, s.Balanced())
}

func TestMedianEvenCount(t *testing.T) {
	t.Parallel()

	s := NewSession(1)
	for _, chips := range []int{1, 3, 5, 7} {
		s.Add(Outcome{NetChips: chips})
	}
	assert.InDelta(t, 4.0, s.Median(), 1e-9)
}
