package tsp

import "context"

// Solve runs one simulated-annealing search over points and returns the best
// tour found.
//
// Behavior:
//   - len(points)==0, any non-finite coordinate, or an extent whose tour cost
//     would overflow ⇒ ErrInvalidInput, no search.
//   - Unknown Metric/Evaluation ⇒ ErrUnknownMetric/ErrUnknownEvaluation.
//   - len(points)==1 ⇒ Tour [0], Cost 0 (the loop still runs its no-op swaps).
//   - ctx is polled once per iteration. When it is done the run stops and the
//     best tour so far is returned with Result.Canceled set and a nil error.
//
// The search runs on the calling goroutine and owns its RNG for the duration
// of the call.
//
// Complexity: O(n + MaxIterations) with EvalDelta, O(n·MaxIterations) with
// EvalFull; plus O(n²) setup with Precompute.
func Solve(ctx context.Context, points []Point, opts Options) (Result, error) {
	if err := validatePoints(points, opts.Metric); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	dist, err := newDistanceFunc(points, opts.Metric, opts.Precompute)
	if err != nil {
		return Result{}, err
	}

	rng := opts.RNG
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}

	a := newAnnealer(len(points), dist, rng, opts)
	canceled := a.run(ctx, opts.MaxIterations)

	return a.result(canceled), nil
}

// RunSimulatedAnnealing is the positional form of Solve with the default
// Euclidean metric and default seed. It returns the best tour and its cost.
func RunSimulatedAnnealing(points []Point, maxIterations int, initialTemp, coolingRate float64) ([]int, float64, error) {
	opts := DefaultOptions()
	opts.MaxIterations = maxIterations
	opts.InitialTemp = initialTemp
	opts.CoolingRate = coolingRate

	res, err := Solve(context.Background(), points, opts)
	if err != nil {
		return nil, 0, err
	}

	return res.Tour, res.Cost, nil
}
