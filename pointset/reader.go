package pointset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspanneal/tsp"
)

// ErrNoCoordinates is returned when the input holds no data lines.
var ErrNoCoordinates = fmt.Errorf("%w: no coordinates", tsp.ErrInvalidInput)

// errMalformed is the base for per-line failures.
var errMalformed = errors.New("malformed coordinate line")

const (
	keySection   = "NODE_COORD_SECTION"
	keyEOF       = "EOF"
	keyDimension = "DIMENSION"
)

// Header carries TSPLIB header fields seen before NODE_COORD_SECTION.
// It is empty for plain files.
type Header struct {
	Name           string
	Type           string
	Comment        string
	Dimension      int
	EdgeWeightType string
}

// Read parses points from r. See the package doc for the accepted layouts.
func Read(r io.Reader) ([]tsp.Point, error) {
	pts, _, err := ReadWithHeader(r)

	return pts, err
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]tsp.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %s: %w", path, err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("pointset: %s: %w", path, err)
	}

	return pts, nil
}

// ReadWithHeader is Read that also returns the TSPLIB header, if any.
// A declared DIMENSION that disagrees with the number of points read is an error.
func ReadWithHeader(r io.Reader) ([]tsp.Point, Header, error) {
	var (
		hdr       Header
		pts       []tsp.Point
		sc        = bufio.NewScanner(r)
		lineNo    int
		inHeader  = true
		sawHeader bool
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == keyEOF {
			break
		}

		if inHeader {
			if line == keySection || strings.HasPrefix(line, keySection) {
				inHeader = false
				sawHeader = true
				continue
			}
			if key, val, ok := splitHeader(line); ok {
				if err := hdr.set(key, val, lineNo); err != nil {
					return nil, Header{}, err
				}
				sawHeader = true
				continue
			}
			if sawHeader {
				return nil, Header{}, lineError(lineNo, "unexpected line %q before %s", line, keySection)
			}
			// First data line of a plain file.
			inHeader = false
		}

		p, err := parsePoint(line, lineNo)
		if err != nil {
			return nil, Header{}, err
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, Header{}, fmt.Errorf("%w: read: %v", tsp.ErrInvalidInput, err)
	}

	if len(pts) == 0 {
		return nil, hdr, ErrNoCoordinates
	}
	if hdr.Dimension > 0 && hdr.Dimension != len(pts) {
		return nil, hdr, fmt.Errorf("%w: %s %d but %d coordinates", tsp.ErrInvalidInput, keyDimension, hdr.Dimension, len(pts))
	}

	return pts, hdr, nil
}

// splitHeader recognises "KEY: value" and "KEY : value". Keys are upper-case
// identifiers; a leading digit or sign means the line is data.
func splitHeader(line string) (string, string, bool) {
	c := line[0]
	if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
		return "", "", false
	}
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(val), true
}

func (h *Header) set(key, val string, lineNo int) error {
	switch key {
	case "NAME":
		h.Name = val
	case "TYPE":
		h.Type = val
	case "COMMENT":
		h.Comment = val
	case "EDGE_WEIGHT_TYPE":
		h.EdgeWeightType = val
	case keyDimension:
		d, err := strconv.Atoi(val)
		if err != nil || d <= 0 {
			return lineError(lineNo, "bad %s %q", keyDimension, val)
		}
		h.Dimension = d
	}

	return nil
}

// parsePoint reads "<id> <x> <y>".
func parsePoint(line string, lineNo int) (tsp.Point, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return tsp.Point{}, lineError(lineNo, "want 3 fields, got %d", len(f))
	}
	if _, err := strconv.Atoi(f[0]); err != nil {
		return tsp.Point{}, lineError(lineNo, "id %q is not an integer", f[0])
	}
	x, err := parseCoord(f[1])
	if err != nil {
		return tsp.Point{}, lineError(lineNo, "x: %v", err)
	}
	y, err := parseCoord(f[2])
	if err != nil {
		return tsp.Point{}, lineError(lineNo, "y: %v", err)
	}

	return tsp.Point{X: x, Y: y}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}

	return v, nil
}

func lineError(lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: %w at line %d: %s", tsp.ErrInvalidInput, errMalformed, lineNo, fmt.Sprintf(format, args...))
}
