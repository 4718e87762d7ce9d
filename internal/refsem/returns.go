package refsem

import (
	"errors"
	"fmt"
)

// ErrNoElements is returned by IndexOfLargest for an empty slice.
var ErrNoElements = errors.New("refsem: no elements")

// DoubleValue returns twice its argument. Return by value: the local result
// is copied to the caller, so the function-local variable going out of scope
// is harmless.
func DoubleValue(x int) int {
	value := x * 2
	return value
}

// Element returns a pointer to the i-th element of the caller's slice. The
// pointer aliases the slice's backing array, so writing through it mutates
// the caller's data. The caller passed the storage in, so the pointer
// remains valid after this function returns.
func Element(vec []string, i int) (*string, error) {
	if i < 0 || i >= len(vec) {
		return nil, fmt.Errorf("refsem: element %d out of range (length %d)", i, len(vec))
	}
	return &vec[i], nil
}

// Sample is the small value struct used by the multi-value return demos.
type Sample struct {
	X int
	Y float64
}

// NewSample returns a Sample by value. The struct is built locally and
// copied out; no lifetime concerns apply.
func NewSample() Sample {
	return Sample{X: 5, Y: 7.8}
}

// Unpack returns a fixed tuple of heterogeneous values that the caller
// unpacks positionally, the multi-return equivalent of the tuple demo.
func Unpack() (int, float64, float32, int) {
	return 5, 7.8, 1.2, 123
}

// MinMaxLegacy reproduces the original minmax exercise solution, defect
// included: it returns (x-y, x+y) instead of the smaller and larger of the
// two inputs. The lessons present it as a bug-hunting exercise; use MinMax
// for the correct behavior.
func MinMaxLegacy(x, y int) (int, int) {
	return x - y, x + y
}

// MinMax returns the smaller and larger of x and y.
func MinMax(x, y int) (min, max int) {
	if x > y {
		return y, x
	}
	return x, y
}

// LargestLegacy reproduces the original largest-element exercise solution,
// defects included: the running maximum starts at 0 rather than the first
// element, and the returned quantity is the value, not the index the
// function's name promises. For a slice of all-negative numbers it returns
// 0, a value not even present. Use IndexOfLargest for the correct behavior.
func LargestLegacy(xs []int) int {
	theBiggest := 0
	for i := 0; i < len(xs); i++ {
		if xs[i] > theBiggest {
			theBiggest = xs[i]
		}
	}
	return theBiggest
}

// IndexOfLargest returns the index of the largest element. Ties resolve to
// the first occurrence. Correct for slices containing non-positive numbers,
// which the legacy version mishandles.
func IndexOfLargest(xs []int) (int, error) {
	if len(xs) == 0 {
		return 0, ErrNoElements
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best, nil
}
