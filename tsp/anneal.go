// Package tsp - the annealing loop.
//
// An annealer moves through three states:
//
//	Initializing → Iterating → Terminated
//
// Initializing shuffles the identity tour with the run's RNG and prices it;
// that tour is both current and best. Iterating performs exactly maxIter
// proposals unless ctx is done first:
//
//  1. draw Swap{I,J} and apply it to the current tour,
//  2. price the candidate (delta or full),
//  3. accept if Δ < 0, else draw u∈[0,1) and accept if exp(−Δ/T) > u,
//  4. on accept record a new best when strictly cheaper; on reject undo the swap,
//  5. T ← T·rate.
//
// Terminated copies out the best tour. No step can fail.
package tsp

import (
	"context"
	"math/rand"
)

type annealer struct {
	dist     distanceFunc
	rng      *rand.Rand
	eval     Evaluation
	observer func(Step)
	rate     float64

	cur      []int
	curCost  float64
	best     []int
	bestCost float64
	temp     float64

	iter         int
	accepted     int
	improvements int
}

// newAnnealer runs the Initializing state for n ≥ 1 cities.
func newAnnealer(n int, dist distanceFunc, rng *rand.Rand, opts Options) *annealer {
	a := &annealer{
		dist:     dist,
		rng:      rng,
		eval:     opts.Evaluation,
		observer: opts.Observer,
		rate:     opts.CoolingRate,
		temp:     opts.InitialTemp,
	}
	a.cur = RandomTour(n, rng)
	a.curCost = tourCost(dist, a.cur)
	a.best = CopyTour(a.cur)
	a.bestCost = a.curCost

	return a
}

// run iterates until maxIter proposals are done or ctx is done, polling ctx
// once before every iteration. It reports whether ctx stopped the loop.
func (a *annealer) run(ctx context.Context, maxIter int) bool {
	done := ctx.Done()
	for a.iter < maxIter {
		if done != nil {
			select {
			case <-done:
				return true
			default:
			}
		}
		a.step()
	}

	return false
}

// step performs one proposal/decision/cooling cycle.
func (a *annealer) step() {
	s := proposeSwap(len(a.cur), a.rng)

	var delta, candCost float64
	if a.eval == EvalFull {
		s.Apply(a.cur)
		candCost = tourCost(a.dist, a.cur)
		delta = candCost - a.curCost
	} else {
		delta = applySwapDelta(a.dist, a.cur, s)
		candCost = a.curCost + delta
	}

	accept := delta < 0
	if !accept {
		accept = acceptProbability(delta, a.temp) > a.rng.Float64()
	}

	if accept {
		a.curCost = candCost
		a.accepted++
		if a.curCost < a.bestCost {
			copy(a.best, a.cur)
			a.bestCost = a.curCost
			a.improvements++
		}
	} else {
		s.Apply(a.cur)
	}

	used := a.temp
	a.temp *= a.rate
	a.iter++

	if a.observer != nil {
		a.observer(Step{
			Iteration:   a.iter,
			Temperature: used,
			CurrentCost: a.curCost,
			BestCost:    a.bestCost,
			Accepted:    accept,
			I:           s.I,
			J:           s.J,
			Tour:        a.cur,
		})
	}
}

// result runs the Terminated state. With delta evaluation the accumulated
// best cost is replaced by a full recomputation.
func (a *annealer) result(canceled bool) Result {
	cost := a.bestCost
	if a.eval == EvalDelta {
		cost = tourCost(a.dist, a.best)
	}

	return Result{
		Tour:             CopyTour(a.best),
		Cost:             cost,
		Iterations:       a.iter,
		Accepted:         a.accepted,
		Improvements:     a.improvements,
		FinalTemperature: a.temp,
		Canceled:         canceled,
	}
}
