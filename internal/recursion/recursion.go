package recursion

import (
	"fmt"
	"io"
)

// CountDown prints "push n" descending to "push 1", then "pop 1" ascending
// back to "pop n". The push lines appear in forward order because they are
// written before the recursive call; the pop lines appear in reverse order
// as the call stack unwinds. Terminal condition: count == 1.
func CountDown(w io.Writer, count int) {
	fmt.Fprintf(w, "push %d\n", count)

	if count > 1 {
		CountDown(w, count-1)
	}

	fmt.Fprintf(w, "pop %d\n", count)
}

// CountDownUnbounded is the countdown without a termination condition. Each
// call prints "push n" and recurses on n-1 forever, so the call stack grows
// until the runtime kills the goroutine. It is kept as documentation of the
// failure mode and must never be invoked; use CountDownGuarded to observe the
// runaway descent safely.
func CountDownUnbounded(w io.Writer, count int) {
	fmt.Fprintf(w, "push %d\n", count)
	CountDownUnbounded(w, count-1)
}

// SumTo returns the sum of all integers between 1 and n inclusive.
// Returns 0 for zero or negative input.
func SumTo(n int) int {
	if n <= 0 {
		return 0 // unexpected input (0 or negative)
	}
	if n == 1 {
		return 1 // normal base case
	}
	return SumTo(n-1) + n
}

// Factorial returns n! for n >= 0. Inputs of 1 or less return 1, which
// clamps negative arguments to the base case rather than failing.
func Factorial(x int) int {
	if x <= 1 {
		return 1
	}
	return x * Factorial(x-1)
}

// DigitSum returns the sum of the base-10 digits of x.
// Assumes non-negative input; a single digit is its own sum.
func DigitSum(x int) int {
	if x < 10 {
		return x
	}
	return DigitSum(x/10) + x%10
}
