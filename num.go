package tessella

import "golang.org/x/exp/constraints"

// minOf returns the smallest of two ordered values.
func minOf[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// maxOf returns the largest of two ordered values.
func maxOf[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// clamp limits v to the closed interval [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
