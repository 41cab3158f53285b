package utils

// MinMax returns the smallest and largest value in samples.
// An empty slice yields (0, 0).
func MinMax(samples []int) (int, int) {
	if len(samples) == 0 {
		return 0, 0
	}

	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	return lo, hi
}
