package utils

import (
	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Overlap returns true if x and y have at least one element in common in memory.
// Slices of the same base array are located by their distance to its end, which is cap.
func Overlap[V any](x, y []V) bool {
	if len(x) == 0 || len(y) == 0 || !Alias1D(x, y) {
		return false
	}
	return cap(x)-len(x) < cap(y) && cap(y)-len(y) < cap(x)
}

// CopyNew returns a deep copy of s, or nil if s is nil.
func CopyNew[V any](s []V) []V {
	if s == nil {
		return nil
	}
	c := make([]V, len(s))
	copy(c, s)
	return c
}

// SignificantLength returns the length of s once its trailing zero values are dropped.
func SignificantLength[V constraints.Integer](s []V) int {
	n := len(s)
	for n > 0 && s[n-1] == 0 {
		n--
	}
	return n
}
