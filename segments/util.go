package segments

import (
	"math"
	"strconv"
)

// Beyond this magnitude x*100 has no fractional part left to inspect, and
// would eventually overflow
const maxRoundable = 1 << 52 / 100

// The bisection square root stops once l and k/l agree to within this much
const SqrtTolerance = 1e-6

// Round to two decimal places, rounding half up. The value is scaled by 100
// and truncated, then the first discarded digit decides whether to step one
// unit away from zero. Negative values round on their magnitude, so Round(-x)
// is always -Round(x).
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= maxRoundable {
		return x
	}
	scaled := x * 100
	truncated := math.Trunc(scaled)
	digit := int(math.Abs(scaled-truncated) * 10)
	if digit >= 5 {
		truncated += math.Copysign(1, x)
	}
	result := truncated / 100
	// Drop the sign of negative zero
	if result == 0 {
		return 0
	}
	return result
}

// Square root by bisection over [0, max(1, k)]. The upper bound guarantees
// the root is inside the interval for every k >= 0, and k/l approaches l as l
// approaches the root, which is what the loop condition checks.
//
// Negative and NaN inputs give NaN.
func SquareRoot(k float64) float64 {
	switch {
	case math.IsNaN(k) || k < 0:
		return math.NaN()
	case math.IsInf(k, 1):
		return k
	case k == 0:
		return 0
	}

	l, r := 0.0, math.Max(1, k)
	for math.Abs(l-k/l) > SqrtTolerance {
		mid := l + (r-l)/2
		// For large k, float64 runs out of room between l and r before the
		// tolerance is met.
		if mid == l || mid == r {
			break
		}
		if mid < k/mid {
			l = mid
		} else {
			r = mid
		}
	}
	return l
}

// Shortest decimal form of the rounded value, the way a stream would print a
// double: 1.5, 0, -2.25
func FormatNumber(x float64) string {
	return strconv.FormatFloat(Round(x), 'f', -1, 64)
}

// Put two values in ascending order
func ordered(a, b float64) (lo, hi float64) {
	if a > b {
		return b, a
	}
	return a, b
}
