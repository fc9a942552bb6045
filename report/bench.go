package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Stats are order statistics over the best costs of repeated runs.
type Stats struct {
	Runs   int     `json:"runs" yaml:"runs"`
	Min    float64 `json:"min" yaml:"min"`
	Median float64 `json:"median" yaml:"median"`
	P90    float64 `json:"p90" yaml:"p90"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// NewStats computes Stats over costs using empirical quantiles. costs is not
// modified. An empty slice yields the zero Stats.
func NewStats(costs []float64) Stats {
	if len(costs) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(costs)
	slices.Sort(sorted)

	st := Stats{
		Runs:   len(sorted),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
	}
	if len(sorted) > 1 {
		st.StdDev = stat.StdDev(sorted, nil)
	}

	return st
}

// Bench describes a batch of independent runs on one instance.
type Bench struct {
	Points     int     `json:"points" yaml:"points"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	Metric     string  `json:"metric" yaml:"metric"`
	BaseSeed   int64   `json:"base_seed" yaml:"base_seed"`
	Stats      Stats   `json:"stats" yaml:"stats"`
	BestTour   []int   `json:"best_tour" yaml:"best_tour,flow"`
	Optimum    float64 `json:"optimum,omitempty" yaml:"optimum,omitempty"`
	GapPercent float64 `json:"gap_percent,omitempty" yaml:"gap_percent,omitempty"`
	HasOptimum bool    `json:"-" yaml:"-"`
}

// Gap is 100·(cost−opt)/opt, or 0 when opt is 0.
func Gap(cost, opt float64) float64 {
	if opt == 0 {
		return 0
	}

	return 100 * (cost - opt) / opt
}

// WriteBench renders b to w in the given format.
func WriteBench(w io.Writer, format Format, b Bench) error {
	switch format {
	case Text, "":
		return writeBenchText(w, b)
	case JSON:
		return writeJSON(w, b)
	case YAML:
		return writeYAML(w, b)
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
}

func writeBenchText(w io.Writer, b Bench) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Runs: %d  Points: %d  Iterations: %d  Metric: %s\n", b.Stats.Runs, b.Points, b.Iterations, b.Metric)
	fmt.Fprintf(&sb, "Cost min=%s median=%s p90=%s max=%s\n",
		formatCost(b.Stats.Min), formatCost(b.Stats.Median), formatCost(b.Stats.P90), formatCost(b.Stats.Max))
	if b.HasOptimum {
		fmt.Fprintf(&sb, "Optimum: %s  Median gap: %.2f%%\n", formatCost(b.Optimum), b.GapPercent)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
