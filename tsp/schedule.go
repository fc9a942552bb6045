package tsp

import "math"

// Temperature returns the closed form initialTemp·coolingRate^k of the
// geometric schedule. The solver itself multiplies step by step; both agree
// to within floating-point rounding.
func Temperature(initialTemp, coolingRate float64, k int) float64 {
	if k <= 0 {
		return initialTemp
	}

	return initialTemp * math.Pow(coolingRate, float64(k))
}

// acceptProbability is exp(−delta/temp), the chance of keeping a
// non-improving move. A zero delta is always kept, including at temp == 0;
// for delta > 0 and temp == 0 it is 0.
func acceptProbability(delta, temp float64) float64 {
	if delta == 0 {
		return 1
	}

	return math.Exp(-delta / temp)
}
