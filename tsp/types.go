package tsp

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidInput reports an unusable point set or option set.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrTooManyPoints is returned by OptimalTour when n > MaxExactPoints.
	ErrTooManyPoints = errors.New("tsp: too many points for exact solver")

	// ErrUnknownMetric is returned by ParseMetric and Solve for an unknown metric.
	ErrUnknownMetric = fmt.Errorf("%w: unknown metric", ErrInvalidInput)

	// ErrUnknownEvaluation is returned by ParseEvaluation and Solve for an unknown mode.
	ErrUnknownEvaluation = fmt.Errorf("%w: unknown evaluation mode", ErrInvalidInput)
)

// Default annealing parameters.
const (
	DefaultMaxIterations = 10000
	DefaultInitialTemp   = 1000.0
	DefaultCoolingRate   = 0.995
)

// Point is a city location in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Metric selects the pairwise distance function.
type Metric uint8

const (
	// Euclidean is sqrt(dx² + dy²).
	Euclidean Metric = iota

	// LegacyCubed is sqrt(|dx|³ + dy²). It is not a geometric distance and is
	// only useful for reproducing historical runs.
	LegacyCubed
)

var metricNames = [...]string{
	Euclidean:   "euclidean",
	LegacyCubed: "legacy-cubed",
}

// String returns the canonical name used by ParseMetric.
func (m Metric) String() string {
	if int(m) < len(metricNames) {
		return metricNames[m]
	}

	return fmt.Sprintf("Metric(%d)", m)
}

// ParseMetric maps a case-insensitive name to a Metric.
// The empty string selects Euclidean.
func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Euclidean, nil
	}
	for i, name := range metricNames {
		if name == s {
			return Metric(i), nil
		}
	}

	return Euclidean, fmt.Errorf("%w %q", ErrUnknownMetric, s)
}

func (m Metric) valid() bool { return int(m) < len(metricNames) }

// Evaluation selects how the annealer prices a candidate tour.
type Evaluation uint8

const (
	// EvalDelta re-sums only the edges touched by the swap.
	EvalDelta Evaluation = iota

	// EvalFull re-sums the whole candidate tour.
	EvalFull
)

var evaluationNames = [...]string{
	EvalDelta: "delta",
	EvalFull:  "full",
}

// String returns the canonical name used by ParseEvaluation.
func (e Evaluation) String() string {
	if int(e) < len(evaluationNames) {
		return evaluationNames[e]
	}

	return fmt.Sprintf("Evaluation(%d)", e)
}

// ParseEvaluation maps a case-insensitive name to an Evaluation.
// The empty string selects EvalDelta.
func ParseEvaluation(s string) (Evaluation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EvalDelta, nil
	}
	for i, name := range evaluationNames {
		if name == s {
			return Evaluation(i), nil
		}
	}

	return EvalDelta, fmt.Errorf("%w %q", ErrUnknownEvaluation, s)
}

func (e Evaluation) valid() bool { return int(e) < len(evaluationNames) }

// Options configures one annealing run. The zero value runs zero iterations;
// start from DefaultOptions.
type Options struct {
	// MaxIterations is the exact number of proposals made. Negative behaves as 0.
	MaxIterations int

	// InitialTemp is the temperature of the first iteration.
	InitialTemp float64

	// CoolingRate multiplies the temperature after every iteration.
	// Values outside (0,1) are accepted and simply search poorly.
	CoolingRate float64

	// Seed seeds the run's stream when RNG is nil. 0 selects a fixed default.
	Seed int64

	// RNG, when non-nil, is used instead of Seed. It must not be shared with
	// another goroutine for the duration of the run.
	RNG *rand.Rand

	// Metric is the pairwise distance. Default Euclidean.
	Metric Metric

	// Evaluation is the candidate pricing mode. Default EvalDelta.
	Evaluation Evaluation

	// Precompute builds an n×n distance table before the search (O(n²) memory).
	Precompute bool

	// Observer, when non-nil, is called synchronously after every iteration.
	Observer func(Step)
}

// DefaultOptions returns MaxIterations=10000, InitialTemp=1000, CoolingRate=0.995,
// Euclidean metric, delta evaluation and the default seed.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		InitialTemp:   DefaultInitialTemp,
		CoolingRate:   DefaultCoolingRate,
		Metric:        Euclidean,
		Evaluation:    EvalDelta,
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the best permutation found, open form (closing edge implied).
	Tour []int

	// Cost is the closed-tour length of Tour under the run's metric.
	Cost float64

	// Iterations is the number of completed iterations.
	Iterations int

	// Accepted counts accepted proposals, including no-op swaps.
	Accepted int

	// Improvements counts the times the best tour was replaced.
	Improvements int

	// FinalTemperature is the temperature after the last completed iteration.
	FinalTemperature float64

	// Canceled reports that ctx ended the run before MaxIterations.
	Canceled bool
}

// Step is the per-iteration snapshot delivered to Options.Observer.
type Step struct {
	Iteration   int     // 1-based index of the completed iteration
	Temperature float64 // temperature used for the acceptance decision
	CurrentCost float64 // cost of the current tour after the decision
	BestCost    float64 // best cost so far
	Accepted    bool    // whether the proposal was kept
	I, J        int     // swapped positions

	// Tour is the current tour. It is owned by the solver: read-only, and only
	// valid for the duration of the callback.
	Tour []int
}
