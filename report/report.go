package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspanneal/tsp"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat and the writers for an unknown format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format. "" selects Text,
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Summary describes one solve.
type Summary struct {
	Points           int      `json:"points" yaml:"points"`
	Tour             []int    `json:"tour" yaml:"tour,flow"`
	Cost             float64  `json:"cost" yaml:"cost"`
	Iterations       int      `json:"iterations" yaml:"iterations"`
	Accepted         int      `json:"accepted" yaml:"accepted"`
	Improvements     int      `json:"improvements" yaml:"improvements"`
	FinalTemperature *float64 `json:"final_temperature,omitempty" yaml:"final_temperature,omitempty"`
	Canceled         bool     `json:"canceled,omitempty" yaml:"canceled,omitempty"`
	Seed             int64    `json:"seed" yaml:"seed"`
	Metric           string   `json:"metric" yaml:"metric"`
	ElapsedMillis    int64    `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// FromResult builds a Summary from a solver result.
func FromResult(points int, seed int64, metric tsp.Metric, res tsp.Result) Summary {
	return Summary{
		Points:           points,
		Tour:             tsp.CopyTour(res.Tour),
		Cost:             res.Cost,
		Iterations:       res.Iterations,
		Accepted:         res.Accepted,
		Improvements:     res.Improvements,
		FinalTemperature: FiniteOrNil(res.FinalTemperature),
		Canceled:         res.Canceled,
		Seed:             seed,
		Metric:           metric.String(),
	}
}

// FiniteOrNil returns &x, or nil when x is NaN or ±Inf. A cooling rate above
// 1 can drive the temperature to infinity, which JSON cannot encode.
func FiniteOrNil(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

// Write renders s to w in the given format.
func Write(w io.Writer, format Format, s Summary) error {
	switch format {
	case Text, "":
		return writeText(w, s)
	case JSON:
		return writeJSON(w, s)
	case YAML:
		return writeYAML(w, s)
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
}

func writeText(w io.Writer, s Summary) error {
	var sb strings.Builder
	sb.WriteString("Final Cost: ")
	sb.WriteString(formatCost(s.Cost))
	sb.WriteString("\nOptimal Tour:")
	for _, c := range s.Tour {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')
	if s.Canceled {
		sb.WriteString("Canceled after ")
		sb.WriteString(strconv.Itoa(s.Iterations))
		sb.WriteString(" iterations\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// formatCost prints six significant digits, the way iostreams do by default.
func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', 6, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
