package httpapi

import (
	"github.com/katalvlaran/tspanneal/report"
	"github.com/katalvlaran/tspanneal/tsp"
)

// solveRequest leaves schedule values unchecked like the solver does; only
// the server's iteration cap applies.
type solveRequest struct {
	Points        []tsp.Point `json:"points" validate:"required,min=1"`
	MaxIterations *int        `json:"max_iterations"`
	InitialTemp   *float64    `json:"initial_temp" validate:"omitempty,finite"`
	CoolingRate   *float64    `json:"cooling_rate" validate:"omitempty,finite"`
	Seed          *int64      `json:"seed"`
	Metric        string      `json:"metric" validate:"omitempty,oneof=euclidean legacy-cubed"`
	Evaluation    string      `json:"evaluation" validate:"omitempty,oneof=delta full"`
	Precompute    bool        `json:"precompute"`
}

type solveResponse struct {
	Tour             []int    `json:"tour"`
	Cost             float64  `json:"cost"`
	Iterations       int      `json:"iterations"`
	Accepted         int      `json:"accepted"`
	Improvements     int      `json:"improvements"`
	FinalTemperature *float64 `json:"final_temperature,omitempty"`
	Canceled         bool     `json:"canceled,omitempty"`
	Seed             int64    `json:"seed"`
	ElapsedMillis    int64    `json:"elapsed_ms"`
}

func newSolveResponse(res tsp.Result, seed int64, elapsedMillis int64) solveResponse {
	return solveResponse{
		Tour:             res.Tour,
		Cost:             res.Cost,
		Iterations:       res.Iterations,
		Accepted:         res.Accepted,
		Improvements:     res.Improvements,
		FinalTemperature: report.FiniteOrNil(res.FinalTemperature),
		Canceled:         res.Canceled,
		Seed:             seed,
		ElapsedMillis:    elapsedMillis,
	}
}
