package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/katalvlaran/tspanneal/internal/metrics"
	"github.com/katalvlaran/tspanneal/tsp"
	"go.uber.org/zap"
)

// maxPrecomputePoints caps the n×n distance table a request may ask for.
const maxPrecomputePoints = 2000

func (api *API) solve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request solveRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := make([]string, 0, len(vv))
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.errorResponse(w, r, http.StatusBadRequest, vvString)
		return
	}

	opts, err := api.options(request)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), api.cfg.Server.Timeout)
	defer cancel()

	if err := api.slots.Acquire(ctx, 1); err != nil {
		api.getStatusCode(w, r, WrapErrorf(err, ErrUnavailable, "no solver slot became free in time"))
		return
	}
	defer api.slots.Release(1)

	api.metrics.InFlight.Inc()
	defer api.metrics.InFlight.Dec()

	start := time.Now()
	res, err := api.solver.Solve(ctx, request.Points, opts)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, tsp.ErrInvalidInput) {
			api.metrics.ObserveFailure(metrics.OutcomeInvalid, opts.Metric)
			api.getStatusCode(w, r, WrapErrorf(err, ErrBadParamInput, "%s", err.Error()))
			return
		}
		api.metrics.ObserveFailure(metrics.OutcomeError, opts.Metric)
		api.getStatusCode(w, r, err)
		return
	}
	api.metrics.ObserveSolve(len(request.Points), opts.Metric, res, elapsed)

	api.log.Debug("solved",
		zap.Int("points", len(request.Points)),
		zap.Float64("cost", res.Cost),
		zap.Int("iterations", res.Iterations),
		zap.Bool("canceled", res.Canceled),
		zap.Duration("elapsed", elapsed))

	resp := newSolveResponse(res, opts.Seed, elapsed.Milliseconds())
	if err := writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// options merges the request over the configured solver defaults and
// enforces the server's size limits.
func (api *API) options(req solveRequest) (tsp.Options, error) {
	opts, err := api.cfg.SolverOptions()
	if err != nil {
		return tsp.Options{}, err
	}

	if n, limit := len(req.Points), api.cfg.Server.MaxPoints; limit > 0 && n > limit {
		return tsp.Options{}, WrapErrorf(nil, ErrBadParamInput, "points must contain at most %d items, got %d", limit, n)
	}
	if req.MaxIterations != nil {
		opts.MaxIterations = *req.MaxIterations
	}
	if limit := api.cfg.Server.MaxIterations; limit > 0 && opts.MaxIterations > limit {
		return tsp.Options{}, WrapErrorf(nil, ErrBadParamInput, "max_iterations must be at most %d", limit)
	}
	if req.InitialTemp != nil {
		opts.InitialTemp = *req.InitialTemp
	}
	if req.CoolingRate != nil {
		opts.CoolingRate = *req.CoolingRate
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	if req.Metric != "" {
		if opts.Metric, err = tsp.ParseMetric(req.Metric); err != nil {
			return tsp.Options{}, WrapErrorf(err, ErrBadParamInput, "%s", err.Error())
		}
	}
	if req.Evaluation != "" {
		if opts.Evaluation, err = tsp.ParseEvaluation(req.Evaluation); err != nil {
			return tsp.Options{}, WrapErrorf(err, ErrBadParamInput, "%s", err.Error())
		}
	}
	opts.Precompute = opts.Precompute || req.Precompute
	if opts.Precompute && len(req.Points) > maxPrecomputePoints {
		return tsp.Options{}, WrapErrorf(nil, ErrBadParamInput, "precompute is limited to %d points", maxPrecomputePoints)
	}

	return opts, nil
}
