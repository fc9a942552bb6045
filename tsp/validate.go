package tsp

import (
	"fmt"
	"math"
)

// validatePoints rejects an empty set, non-finite coordinates and point sets
// whose extent under metric could overflow a tour cost. Every pairwise
// distance is at most the metric across the bounding box, and a tour has n
// edges, so n times that bound must be finite.
//
// Complexity: O(n).
func validatePoints(points []Point, metric Metric) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty point set", ErrInvalidInput)
	}

	lo, hi := points[0], points[0]
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: point %d has non-finite coordinates (%g, %g)", ErrInvalidInput, i, p.X, p.Y)
		}
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
	}

	span := metric.Distance(lo, hi)
	if !isFinite(span * float64(len(points))) {
		return fmt.Errorf("%w: coordinate extent (%g, %g)-(%g, %g) overflows %s tour costs",
			ErrInvalidInput, lo.X, lo.Y, hi.X, hi.Y, metric)
	}

	return nil
}

// validateOptions checks enum values and rejects NaN/Inf schedule parameters.
// Ranges are not enforced.
func validateOptions(opts Options) error {
	if !opts.Metric.valid() {
		return fmt.Errorf("%w %s", ErrUnknownMetric, opts.Metric)
	}
	if !opts.Evaluation.valid() {
		return fmt.Errorf("%w %s", ErrUnknownEvaluation, opts.Evaluation)
	}
	if !isFinite(opts.InitialTemp) {
		return fmt.Errorf("%w: initial temperature %g", ErrInvalidInput, opts.InitialTemp)
	}
	if !isFinite(opts.CoolingRate) {
		return fmt.Errorf("%w: cooling rate %g", ErrInvalidInput, opts.CoolingRate)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
