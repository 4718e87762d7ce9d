package refsem

import (
	"fmt"
	"io"
	"math"
)

// AddOne increments the caller's variable through the pointer. The mutation
// is visible after the call because the function operates on the original,
// not a copy.
func AddOne(ref *int) {
	*ref++
}

// AddOneByValue increments a copy and returns it. The caller's argument is
// untouched; the only way to observe the result is the return value.
func AddOneByValue(x int) int {
	x++
	return x
}

// SinCos returns the sine and cosine of an angle given in degrees.
//
// The original exercise returned both values through out-parameters. Multiple
// return values express the same two-output contract directly, so the out
// parameters became a second return instead.
func SinCos(degrees float64) (sin, cos float64) {
	radians := degrees * math.Pi / 180.0
	return math.Sin(radians), math.Cos(radians)
}

// ClearIntPtr nils the caller's pointer. Because the parameter is a pointer
// to the pointer, the assignment changes the actual argument, not a copy.
func ClearIntPtr(pp **int) {
	*pp = nil
}

// FixedLen is the element count of the fixed-size array demos.
const FixedLen = 4

// SumFixed sums a fixed-length array through a pointer. The array type
// carries its length, so no separate count parameter is needed and no copy
// of the elements is made.
func SumFixed(arr *[FixedLen]int) int {
	sum := 0
	for _, v := range arr {
		sum += v
	}
	return sum
}

// PrintElements writes the elements of a fixed-length array to w, separated
// by spaces. The pointer parameter preserves the element-count information
// that a plain slice would hide behind a runtime length.
func PrintElements(w io.Writer, arr *[FixedLen]int) {
	for _, v := range arr {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
}
