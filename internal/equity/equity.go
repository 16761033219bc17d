// Package equity estimates win probability by Monte-Carlo sampling.
// Sampling is read-only with respect to game state and embarrassingly
// parallel: each worker owns an independent deck and random source.
package equity

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// DefaultSamples is the sample count used when none is configured
const DefaultSamples = 300

// Estimator estimates hero equity against one random opponent
type Estimator struct {
	samples int
}

// NewEstimator creates an estimator with the given sample count
// (DefaultSamples when non-positive)
func NewEstimator(samples int) *Estimator {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return &Estimator{samples: samples}
}

type workerResult struct {
	wins int
	ties int
}

// Estimate returns the probability (0..1) that the hole cards beat one
// random opponent hand over random board runouts. The supplied random
// source seeds one independent RNG per worker.
func (e *Estimator) Estimate(ctx context.Context, hole [2]deck.Card, board []deck.Card, rng *rand.Rand) (float64, error) {
	if len(board) > 5 {
		return 0, fmt.Errorf("board cannot exceed five cards, got %d", len(board))
	}

	known := append([]deck.Card{hole[0], hole[1]}, board...)

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > e.samples {
		workers = e.samples
	}

	perWorker := e.samples / workers
	remainder := e.samples % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, workers)

	for w := 0; w < workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		seed := rng.Int63()

		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(seed))
			result, err := runWorker(hole, board, known, samples, workerRng)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(results)

	wins, ties := 0, 0
	for result := range results {
		wins += result.wins
		ties += result.ties
	}
	return (float64(wins) + float64(ties)*0.5) / float64(e.samples), nil
}

// runWorker plays out the requested number of samples on its own deck
func runWorker(hole [2]deck.Card, board, known []deck.Card, samples int, rng *rand.Rand) (workerResult, error) {
	var result workerResult
	d := deck.NewDeck(rng)
	for i := 0; i < samples; i++ {
		d.Reset()
		if err := d.Remove(known...); err != nil {
			return workerResult{}, err
		}

		oppHole, err := d.Draw(2)
		if err != nil {
			return workerResult{}, err
		}
		runout, err := d.Draw(5 - len(board))
		if err != nil {
			return workerResult{}, err
		}

		fullBoard := make([]deck.Card, 0, 5)
		fullBoard = append(fullBoard, board...)
		fullBoard = append(fullBoard, runout...)

		hero := append([]deck.Card{hole[0], hole[1]}, fullBoard...)
		villain := append(oppHole, fullBoard...)

		cmp, err := evaluator.Compare(hero, villain)
		if err != nil {
			return workerResult{}, err
		}
		switch {
		case cmp > 0:
			result.wins++
		case cmp == 0:
			result.ties++
		}
	}
	return result, nil
}
