package lessons

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/metrics"
	"github.com/Oureyelet/funclab/internal/recursion"
)

// RecursionLesson walks through recursion and termination conditions:
// the bounded countdown, sum-to-n, naive versus memoized Fibonacci,
// factorial, digit sums and the recursive binary printer.
type RecursionLesson struct {
	mx *metrics.Metrics
}

// NewRecursionLesson creates the recursion lesson. mx may be nil.
func NewRecursionLesson(mx *metrics.Metrics) *RecursionLesson {
	return &RecursionLesson{mx: mx}
}

// Name returns the lesson identifier.
func (l *RecursionLesson) Name() string { return "recursion" }

// Title returns the lesson heading.
func (l *RecursionLesson) Title() string { return "Recursion" }

// Run executes every recursion demo in order.
func (l *RecursionLesson) Run(ctx context.Context, in io.Reader, out io.Writer, p Params) error {
	section(out, "Recursive termination conditions")
	recursion.CountDown(out, 5)

	section(out, "A more useful example")
	fmt.Fprintf(out, "sumTo(5) = %d\n", recursion.SumTo(5))

	if err := ctx.Err(); err != nil {
		return err
	}

	section(out, "Fibonacci numbers")
	var naiveCalls uint64
	for i := uint64(0); i < p.NaiveTerms; i++ {
		value, calls := recursion.NaiveCount(i)
		naiveCalls += calls
		fmt.Fprintf(out, "%d ", value)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "the naive algorithm made %d calls in total\n", naiveCalls)
	if l.mx != nil {
		l.mx.AddRecursionCalls("naive", naiveCalls)
	}

	section(out, "Memoization algorithms")
	cache := recursion.NewMemoCache()
	for i := 0; i < p.MemoTerms; i++ {
		fmt.Fprintf(out, "%d ", cache.Fib(uint64(i)))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "the memoized version made %d calls (%d hits, %d misses)\n",
		cache.Calls(), cache.Hits(), cache.Misses())
	if l.mx != nil {
		l.mx.AddRecursionCalls("memoized", cache.Calls())
		l.mx.AddMemoStats(cache.Hits(), cache.Misses())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	section(out, "Quiz time")
	for x := 0; x <= 6; x++ {
		fmt.Fprintf(out, "%d! = %d\n", x, recursion.Factorial(x))
	}
	fmt.Fprintf(out, "digit sum of 123 = %d\n", recursion.DigitSum(123))
	fmt.Fprintf(out, "digit sum of 93427 = %d\n", recursion.DigitSum(93427))

	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "Enter a positive integer: ")
	positive := readInt64(scanner, 5)
	fmt.Fprintf(out, "%d\n", positive)
	if positive >= 0 {
		recursion.WriteBinary(out, uint64(positive))
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "Enter an integer: ")
	signed := readInt64(scanner, -15)
	fmt.Fprintf(out, "%d\n", signed)
	recursion.WriteBinaryFixed(out, int32(signed))
	fmt.Fprintln(out)

	section(out, "Bounded recursion")
	guard := recursion.NewGuard(10)
	err := recursion.CountDownGuarded(out, 5, guard)
	if !errors.Is(err, apperrors.ErrDepthExceeded) {
		return fmt.Errorf("runaway countdown was not stopped by the guard: %w", err)
	}
	fmt.Fprintf(out, "the runaway countdown was stopped after %d frames: %v\n",
		guard.Limit(), err)
	fmt.Fprintf(out, "full runs use a limit of %d frames\n", p.MaxDepth)

	return nil
}

// readInt64 scans the next input token as an integer, falling back to def
// when input is exhausted or unparsable.
func readInt64(scanner *bufio.Scanner, def int64) int64 {
	if !scanner.Scan() {
		return def
	}
	v, err := strconv.ParseInt(scanner.Text(), 10, 64)
	if err != nil {
		return def
	}
	return v
}
