package cli

import (
	"math/rand"
	"runtime"

	"github.com/katalvlaran/tspanneal/pointset"
	"github.com/katalvlaran/tspanneal/report"
	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (c *CLI) benchCommand() *cobra.Command {
	var runs, parallel int

	cmd := &cobra.Command{
		Use:   "bench <points-file>",
		Short: "Run independent seeded searches and report cost statistics",
		Long: `Runs --runs searches, each on its own random stream derived from --seed,
at most --parallel at a time. Prints min/median/p90/max of the best costs and,
for small instances, the exact optimum and the median gap to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd, args[0], runs, parallel)
		},
	}

	addSolverFlags(cmd.Flags())
	cmd.Flags().IntVar(&runs, "runs", 10, "number of independent searches")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "maximum concurrent searches")

	return cmd
}

func (c *CLI) runBench(cmd *cobra.Command, path string, runs, parallel int) error {
	ctx := cmd.Context()
	log := loggerFromContext(ctx)

	format, err := report.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return err
	}
	if runs < 1 {
		runs = 1
	}
	if parallel < 1 {
		parallel = 1
	}
	opts, err := c.cfg.SolverOptions()
	if err != nil {
		return err
	}
	seed := c.resolveSeed(log)

	pts, err := pointset.ReadFile(path)
	if err != nil {
		return err
	}

	// Streams are derived up front, in order, so results do not depend on scheduling.
	base := tsp.NewRNG(seed)
	streams := make([]*rand.Rand, runs)
	for i := range streams {
		streams[i] = tsp.DeriveRNG(base, uint64(i))
	}

	results := make([]tsp.Result, runs)
	p := newProgress(log)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			o := opts
			o.RNG = streams[i]
			res, err := tsp.Solve(gctx, pts, o)
			if err != nil {
				return err
			}
			results[i] = res
			log.Debug("run finished", zap.Int("run", i), zap.Float64("cost", res.Cost))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	p.done("bench finished", zap.Int("runs", runs), zap.Int("parallel", parallel))

	costs := make([]float64, runs)
	best := 0
	for i, r := range results {
		costs[i] = r.Cost
		if r.Cost < results[best].Cost {
			best = i
		}
	}

	b := report.Bench{
		Points:     len(pts),
		Iterations: opts.MaxIterations,
		Metric:     opts.Metric.String(),
		BaseSeed:   seed,
		Stats:      report.NewStats(costs),
		BestTour:   results[best].Tour,
	}
	if len(pts) <= tsp.MaxExactPoints {
		_, opt, err := tsp.OptimalTour(pts, opts.Metric)
		if err != nil {
			return err
		}
		b.Optimum = opt
		b.GapPercent = report.Gap(b.Stats.Median, opt)
		b.HasOptimum = true
	}

	if err := report.WriteBench(c.out, format, b); err != nil {
		return err
	}

	return ctx.Err()
}
