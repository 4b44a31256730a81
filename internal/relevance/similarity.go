package relevance

import "math"

// cosineSimilarity returns dot(u,v) / (|u|*|v|), substituting 1 for the
// norm of an all-zero vector so that "no overlap" scores a defined 0
// instead of dividing by zero.
func cosineSimilarity(u, v []float64) float64 {
	var dot, uu, vv float64
	for i := range u {
		dot += u[i] * v[i]
		uu += u[i] * u[i]
		vv += v[i] * v[i]
	}
	un, vn := 1.0, 1.0
	if uu > 0 {
		un = math.Sqrt(uu)
	}
	if vv > 0 {
		vn = math.Sqrt(vv)
	}
	return dot / (un * vn)
}
