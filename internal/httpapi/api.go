// Package httpapi serves the annealing solver over HTTP.
//
// Routes:
//
//	POST /api/solve   solve a point set, see solveRequest
//	GET  /healthz     heartbeat
//	GET  /metrics     Prometheus exposition
//
// Every request passes through CORS, JSON enforcement, panic recovery,
// the heartbeat, request logging and, when configured, a token-bucket rate
// limit, in that order.
package httpapi

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/katalvlaran/tspanneal/internal/config"
	"github.com/katalvlaran/tspanneal/internal/metrics"
	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Solver runs one search. tsp.Solve satisfies it through SolverFunc.
type Solver interface {
	Solve(ctx context.Context, points []tsp.Point, opts tsp.Options) (tsp.Result, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, points []tsp.Point, opts tsp.Options) (tsp.Result, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, points []tsp.Point, opts tsp.Options) (tsp.Result, error) {
	return f(ctx, points, opts)
}

// API holds the handlers' dependencies.
type API struct {
	log     *zap.Logger
	cfg     config.Config
	metrics *metrics.Metrics
	solver  Solver
	slots   *semaphore.Weighted

	validate *validator.Validate
	trans    ut.Translator
}

// NewAPI wires an API. A nil solver selects tsp.Solve; nil metrics creates a
// private registry.
func NewAPI(log *zap.Logger, cfg config.Config, m *metrics.Metrics, solver Solver) *API {
	if solver == nil {
		solver = SolverFunc(tsp.Solve)
	}
	if m == nil {
		m = metrics.New()
	}
	concurrent := cfg.Server.MaxConcurrent
	if concurrent < 1 {
		concurrent = 1
	}
	if cfg.Server.Timeout <= 0 {
		cfg.Server.Timeout = config.DefaultTimeout
	}

	validate := config.NewValidator()
	validate.RegisterTagNameFunc(jsonFieldName)
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &API{
		log:      log,
		cfg:      cfg,
		metrics:  m,
		solver:   solver,
		slots:    semaphore.NewWeighted(int64(concurrent)),
		validate: validate,
		trans:    trans,
	}
}

// jsonFieldName reports struct fields by their JSON key in validation messages.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}

	return name
}

// Routes registers the API endpoints on router.
func (api *API) Routes(router *httprouter.Router) {
	router.POST("/api/solve", api.solve)
	router.Handler(http.MethodGet, "/metrics", api.metrics.Handler())
}

// Handler returns the router wrapped in the middleware chain.
func (api *API) Handler() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	api.Routes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	mwChain := []alice.Constructor{
		corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		Heartbeat("/healthz"), Logger(api.log),
	}
	if api.cfg.Server.RateLimit > 0 {
		burst := api.cfg.Server.Burst
		if burst < 1 {
			burst = 1
		}
		mwChain = append(mwChain, api.Limit(rate.NewLimiter(rate.Limit(api.cfg.Server.RateLimit), burst)))
	}

	return alice.New(mwChain...).Then(router)
}
