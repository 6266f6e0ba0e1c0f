package filter

import "math"

// GaussianKernel generates a 1D Gaussian kernel for standard deviation
// sigma. The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float64, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels in normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - halfSize)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
