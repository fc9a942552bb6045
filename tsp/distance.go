package tsp

import "math"

// Distance returns the Euclidean distance between a and b.
// It is symmetric, non-negative and Distance(a, a) == 0.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// legacyCubedDistance is sqrt(|dx|³ + dy²).
func legacyCubedDistance(a, b Point) float64 {
	dx := math.Abs(a.X - b.X)
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx*dx + dy*dy)
}

// Distance evaluates m between a and b. Unknown metrics fall back to Euclidean.
func (m Metric) Distance(a, b Point) float64 {
	if m == LegacyCubed {
		return legacyCubedDistance(a, b)
	}

	return Distance(a, b)
}
