// Package config loads tspanneal settings with viper.
//
// Precedence, highest first: bound command-line flags, TSPANNEAL_* environment
// variables (dots become underscores, e.g. TSPANNEAL_SOLVER_COOLING_RATE),
// the optional config file, then the defaults below.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TSPANNEAL"

// Config is the full application configuration.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolverConfig mirrors tsp.Options in serialisable form. Schedule values are
// not range-checked: a negative iteration count runs no iterations, a zero
// temperature is a greedy descent and a rate outside (0, 1) only degrades
// the search. NaN and ±Inf are rejected.
type SolverConfig struct {
	MaxIterations int     `mapstructure:"max_iterations"`
	InitialTemp   float64 `mapstructure:"initial_temp" validate:"finite"`
	CoolingRate   float64 `mapstructure:"cooling_rate" validate:"finite"`
	Seed          int64   `mapstructure:"seed"`
	Metric        string  `mapstructure:"metric" validate:"oneof=euclidean legacy-cubed"`
	Evaluation    string  `mapstructure:"evaluation" validate:"oneof=delta full"`
	Precompute    bool    `mapstructure:"precompute"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port          int           `mapstructure:"port" validate:"gte=0,lte=65535"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimit     float64       `mapstructure:"rate_limit" validate:"gte=0"`
	Burst         int           `mapstructure:"burst" validate:"gte=1"`
	MaxPoints     int           `mapstructure:"max_points" validate:"gte=1"`
	MaxIterations int           `mapstructure:"max_iterations" validate:"gte=1"`
	MaxConcurrent int           `mapstructure:"max_concurrent" validate:"gte=1"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// Defaults.
const (
	DefaultPort          = 6060
	DefaultTimeout       = 30 * time.Second
	DefaultRateLimit     = 10.0
	DefaultBurst         = 20
	DefaultMaxPoints     = 5000
	DefaultMaxIterations = 5_000_000
	DefaultMaxConcurrent = 4
)

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// SetDefaults registers every key so that environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solver.max_iterations", tsp.DefaultMaxIterations)
	v.SetDefault("solver.initial_temp", tsp.DefaultInitialTemp)
	v.SetDefault("solver.cooling_rate", tsp.DefaultCoolingRate)
	// No default for the seed: IsSet must tell an explicit 0 from an unset seed.
	_ = v.BindEnv("solver.seed")
	v.SetDefault("solver.metric", tsp.Euclidean.String())
	v.SetDefault("solver.evaluation", tsp.EvalDelta.String())
	v.SetDefault("solver.precompute", false)

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.timeout", DefaultTimeout)
	v.SetDefault("server.rate_limit", DefaultRateLimit)
	v.SetDefault("server.burst", DefaultBurst)
	v.SetDefault("server.max_points", DefaultMaxPoints)
	v.SetDefault("server.max_iterations", DefaultMaxIterations)
	v.SetDefault("server.max_concurrent", DefaultMaxConcurrent)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads file (if non-empty; format by extension) into v, decodes the
// result and validates it.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Solver.Metric = strings.ToLower(strings.TrimSpace(cfg.Solver.Metric))
	cfg.Solver.Evaluation = strings.ToLower(strings.TrimSpace(cfg.Solver.Evaluation))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewValidator returns a validator with the "finite" tag registered, which
// rejects NaN and ±Inf floats.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return validate
}

// Validate checks field ranges and enum names.
func (c Config) Validate() error {
	err := NewValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("config: %w: %s", tsp.ErrInvalidInput, strings.Join(msgs, "; "))
}

// SolverOptions converts the solver section to tsp.Options.
// Observer and RNG are left for the caller.
func (c Config) SolverOptions() (tsp.Options, error) {
	m, err := tsp.ParseMetric(c.Solver.Metric)
	if err != nil {
		return tsp.Options{}, err
	}
	e, err := tsp.ParseEvaluation(c.Solver.Evaluation)
	if err != nil {
		return tsp.Options{}, err
	}

	return tsp.Options{
		MaxIterations: c.Solver.MaxIterations,
		InitialTemp:   c.Solver.InitialTemp,
		CoolingRate:   c.Solver.CoolingRate,
		Seed:          c.Solver.Seed,
		Metric:        m,
		Evaluation:    e,
		Precompute:    c.Solver.Precompute,
	}, nil
}
