// Package cli implements the tspanneal command-line interface.
//
// # Commands
//
//   - solve: anneal one point file and print the tour
//   - bench: run independent seeded searches and print cost statistics
//   - serve: expose the solver over HTTP
//
// # Configuration
//
// Every solver and server setting can come from --config, TSPANNEAL_*
// environment variables or flags; see internal/config for precedence.
//
// # Logging
//
// Logs go to stderr through zap. --verbose (-v) switches to a debug-level
// console logger. The logger travels to commands through the context.
package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tspanneal/internal/config"
	"github.com/katalvlaran/tspanneal/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appName = "tspanneal"

var version = "dev"

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	version = v
}

// CLI holds state shared by all commands.
type CLI struct {
	// Logger, when set, is used instead of building one from configuration.
	Logger *zap.Logger

	out    io.Writer
	errOut io.Writer
	v      *viper.Viper
	cfg    config.Config

	configFile string
	logLevel   string
	verbose    bool
}

// New creates a CLI writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut, v: config.New()}
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"iterations":     "solver.max_iterations",
	"initial-temp":   "solver.initial_temp",
	"cooling-rate":   "solver.cooling_rate",
	"seed":           "solver.seed",
	"metric":         "solver.metric",
	"evaluation":     "solver.evaluation",
	"precompute":     "solver.precompute",
	"port":           "server.port",
	"timeout":        "server.timeout",
	"rate-limit":     "server.rate_limit",
	"burst":          "server.burst",
	"max-concurrent": "server.max_concurrent",
	"log-level":      "log.level",
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "tspanneal approximates travelling-salesman tours with simulated annealing",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	pf.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// setup binds cmd's flags, loads configuration and attaches a logger to the
// command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = c.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}
	if c.verbose {
		c.v.Set("log.level", "debug")
		c.v.Set("log.development", true)
	}

	cfg, err := config.Load(c.v, c.configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	log := c.Logger
	if log == nil {
		if log, err = logger.New(cfg.Log.Level, cfg.Log.Development); err != nil {
			return err
		}
	}
	cmd.SetContext(withLogger(cmd.Context(), log))

	return nil
}

// addSolverFlags registers the flags shared by solve and bench.
func addSolverFlags(fs *pflag.FlagSet) {
	fs.Int("iterations", 10000, "number of annealing iterations")
	fs.Float64("initial-temp", 1000, "initial temperature")
	fs.Float64("cooling-rate", 0.995, "geometric cooling factor per iteration")
	fs.Int64("seed", 0, "random seed (default: time-based, logged)")
	fs.String("metric", "euclidean", "distance metric: euclidean, legacy-cubed")
	fs.String("evaluation", "delta", "candidate pricing: delta, full")
	fs.Bool("precompute", false, "precompute the n×n distance table")
	fs.String("format", "text", "output format: text, json, yaml")
}
