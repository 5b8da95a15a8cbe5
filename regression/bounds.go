package regression

import "math"

// project clamps params onto the box [lower, upper] in place.
func project(params, lower, upper []float64) {
	for i := range params {
		params[i] = math.Min(math.Max(params[i], lower[i]), upper[i])
	}
}

// The transforms below map an unconstrained variable z onto a bounded
// parameter p, so an unconstrained optimizer can search inside the box:
//
//	two-sided:  p = lo + (hi - lo) * (sin(z) + 1) / 2
//	lower only: p = lo - 1 + sqrt(z² + 1)
//	upper only: p = hi + 1 - sqrt(z² + 1)
//	open:       p = z

// toBounded maps internal variables z onto bounded parameters.
func toBounded(dst, z, lower, upper []float64) []float64 {
	for i, zi := range z {
		lo, hi := lower[i], upper[i]
		loOpen, hiOpen := math.IsInf(lo, -1), math.IsInf(hi, 1)

		switch {
		case !loOpen && !hiOpen:
			dst[i] = lo + (hi-lo)*(math.Sin(zi)+1)/2
		case !loOpen:
			dst[i] = lo - 1 + math.Sqrt(zi*zi+1)
		case !hiOpen:
			dst[i] = hi + 1 - math.Sqrt(zi*zi+1)
		default:
			dst[i] = zi
		}
	}
	// Rounding near a bound can step just outside the box.
	project(dst, lower, upper)

	return dst
}

// toInternal is the inverse of toBounded for parameters inside the box.
func toInternal(dst, params, lower, upper []float64) []float64 {
	for i, p := range params {
		lo, hi := lower[i], upper[i]
		loOpen, hiOpen := math.IsInf(lo, -1), math.IsInf(hi, 1)

		switch {
		case !loOpen && !hiOpen:
			if hi == lo {
				dst[i] = 0
				continue
			}
			s := 2*(p-lo)/(hi-lo) - 1
			dst[i] = math.Asin(math.Min(math.Max(s, -1), 1))
		case !loOpen:
			d := p - lo + 1
			dst[i] = math.Sqrt(math.Max(d*d-1, 0))
		case !hiOpen:
			d := hi - p + 1
			dst[i] = math.Sqrt(math.Max(d*d-1, 0))
		default:
			dst[i] = p
		}
	}

	return dst
}
