package equity

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
)

func hole(s string) [2]deck.Card {
	cards := deck.MustParseCards(s)
	return [2]deck.Card{cards[0], cards[1]}
}

func TestLockedBoardNutsHasFullEquity(t *testing.T) {
	t.Parallel()

	// Royal flush on a complete board: no opponent hand wins or ties.
	est := NewEstimator(64)
	eq, err := est.Estimate(context.Background(),
		hole("Ah Kh"), deck.MustParseCards("Qh Jh Th 2c 2d"), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, eq)
}

func TestPremiumPairBeatsRandomHand(t *testing.T) {
	t.Parallel()

	est := NewEstimator(400)
	eq, err := est.Estimate(context.Background(),
		hole("As Ad"), nil, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Greater(t, eq, 0.7, "aces dominate a random hand preflop")
}

func TestTrashHandIsAnUnderdog(t *testing.T) {
	t.Parallel()

	est := NewEstimator(400)
	eq, err := est.Estimate(context.Background(),
		hole("7s 2d"), nil, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Less(t, eq, 0.5)
}

func TestEstimateRejectsOversizedBoard(t *testing.T) {
	t.Parallel()

	est := NewEstimator(10)
	_, err := est.Estimate(context.Background(),
		hole("Ah Kh"), deck.MustParseCards("Qh Jh Th 2c 2d 3s"), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestNewEstimatorDefaultsSampleCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultSamples, NewEstimator(0).samples)
	assert.Equal(t, DefaultSamples, NewEstimator(-5).samples)
	assert.Equal(t, 100, NewEstimator(100).samples)
}
