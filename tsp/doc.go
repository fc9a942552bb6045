// Package tsp approximates the Travelling Salesman Problem on points in the
// plane with simulated annealing.
//
// A tour is an open-form permutation of 0..n-1: every index appears exactly
// once and the closing edge (last → first) is implied. The solver starts from
// a shuffled identity tour and repeatedly proposes a random two-position
// exchange (Swap). A candidate is accepted when it shortens the tour, or with
// probability exp(−Δ/T) otherwise. The temperature T decays geometrically,
// T ← T·CoolingRate, once per iteration, for exactly MaxIterations iterations.
// The best tour ever seen is returned.
//
// Entry points:
//
//   - Solve(ctx, points, opts): full control through Options, returns Result.
//   - RunSimulatedAnnealing(points, maxIterations, initialTemp, coolingRate):
//     the classic (tour, cost, error) form with the default stream.
//   - OptimalTour(points, metric): Held–Karp exact solver for n ≤ MaxExactPoints,
//     used as a quality reference for the annealer.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand owned by the call: either
//	Options.RNG or a stream seeded from Options.Seed (0 ⇒ fixed default).
//	Same seed and same options ⇒ identical tour and cost.
//
// Cost evaluation:
//
//	EvalDelta (default) re-sums only the ≤4 edges touched by a swap, O(1) per
//	iteration; EvalFull re-sums the whole tour, O(n). Both reach the same
//	accept/reject decisions up to floating-point rounding. With EvalDelta the
//	returned cost is recomputed in full once at termination.
//
// Errors:
//
//	ErrInvalidInput        - empty point set, non-finite coordinates, bad options.
//	ErrUnknownMetric       - metric name not recognised (wraps ErrInvalidInput).
//	ErrUnknownEvaluation   - evaluation name not recognised (wraps ErrInvalidInput).
//	ErrTooManyPoints       - OptimalTour on more than MaxExactPoints points.
//
// The package does not log and never panics on user input.
package tsp
