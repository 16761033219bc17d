package game

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/equity"
)

// playRates maps AI profiles to the fraction of starting hands they
// voluntarily play when nothing stronger forces the decision.
var playRates = map[string]float64{
	"Casual": 0.40,
	"Solid":  0.25,
	"Maniac": 0.65,
}

const defaultPlayRate = 0.30

// EquityBot is the default automated opponent: preflop it folds weak
// hands by profile-driven frequency, postflop it scores legal moves by
// Monte-Carlo equity and a small aggression bonus.
type EquityBot struct {
	BotName   string
	Profile   string
	rng       *rand.Rand
	estimator *equity.Estimator
	logger    *log.Logger
}

// NewEquityBot creates a bot with its own random source
func NewEquityBot(name, profile string, rng *rand.Rand, logger *log.Logger) *EquityBot {
	return &EquityBot{
		BotName:   name,
		Profile:   profile,
		rng:       rng,
		estimator: equity.NewEstimator(equity.DefaultSamples),
		logger:    logger.WithPrefix("bot").With("name", name),
	}
}

// Name returns the bot's name
func (b *EquityBot) Name() string { return b.BotName }

// Decide picks a move from the legal set
func (b *EquityBot) Decide(view View, legal []Move) Decision {
	if view.Street == Preflop {
		return b.decidePreflop(view, legal)
	}
	return b.decidePostflop(view, legal)
}

func (b *EquityBot) decidePreflop(view View, legal []Move) Decision {
	if len(view.HoleCards) == 2 && !b.shouldPlay(view.HoleCards) {
		// Take a free look when checking is available.
		for _, m := range legal {
			if m.Name == Check {
				return Decision{Move: Check}
			}
		}
		return Decision{Move: Fold}
	}
	return b.pickByScore(legal, 0.55)
}

func (b *EquityBot) decidePostflop(view View, legal []Move) Decision {
	eq := 0.5
	if len(view.HoleCards) == 2 {
		hole := [2]deck.Card{view.HoleCards[0], view.HoleCards[1]}
		estimated, err := b.estimator.Estimate(context.Background(), hole, view.Board, b.rng)
		if err != nil {
			b.logger.Warn("equity estimate failed, playing passively", "error", err)
		} else {
			eq = estimated
		}
	}
	return b.pickByScore(legal, eq)
}

// shouldPlay decides whether to enter the pot with these hole cards.
// Premium holdings always play; everything else plays at the profile rate.
func (b *EquityBot) shouldPlay(hole []deck.Card) bool {
	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}
	if high == low && high >= deck.Ten {
		return true
	}
	if high == deck.Ace && low >= deck.Jack {
		return true
	}
	rate, ok := playRates[b.Profile]
	if !ok {
		rate = defaultPlayRate
	}
	return b.rng.Float64() <= rate
}

// pickByScore scores each legal move by equity plus an aggression bonus
// and a little noise, and sizes raises at 60% of the legal span.
func (b *EquityBot) pickByScore(legal []Move, eq float64) Decision {
	aggression := eq - 0.5
	if aggression < 0 {
		aggression = 0
	}

	best := Decision{Move: Check}
	bestScore := -1.0
	for _, m := range legal {
		score := eq
		if m.Name == Raise || m.Name == Bet {
			score += aggression
		}
		if m.Name == Fold {
			score = (1 - eq) * 0.5
		}
		score += b.rng.Float64() * 0.05

		if score > bestScore {
			bestScore = score
			amount := m.Min
			if (m.Name == Raise || m.Name == Bet) && m.Max > m.Min {
				amount = m.Min + int(float64(m.Max-m.Min)*0.6)
			}
			best = Decision{Move: m.Name, Amount: amount}
		}
	}
	return best
}
