package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/Oureyelet/funclab/internal/refsem"
)

// ReturnsLesson demonstrates the return channels: by value, by pointer
// into caller-owned storage, by caller-released allocation, by value
// struct and by positional multi-return, plus the two quiz helpers kept
// with their original defects.
type ReturnsLesson struct{}

// NewReturnsLesson creates the returns lesson.
func NewReturnsLesson() *ReturnsLesson {
	return &ReturnsLesson{}
}

// Name returns the lesson identifier.
func (l *ReturnsLesson) Name() string { return "returns" }

// Title returns the lesson heading.
func (l *ReturnsLesson) Title() string { return "Returning values" }

// Run executes every return-channel demo in order.
func (l *ReturnsLesson) Run(ctx context.Context, _ io.Reader, out io.Writer, _ Params) error {
	section(out, "Return by value")
	fmt.Fprintf(out, "doubleValue(12345) = %d\n", refsem.DoubleValue(12345))

	section(out, "Caller-released allocations")
	arena := refsem.NewArena()
	buf, err := arena.NewBuffer(12)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "allocated a buffer of %d elements (outstanding: %d)\n",
		buf.Len(), arena.Outstanding())
	if err := buf.Release(); err != nil {
		return err
	}
	fmt.Fprintf(out, "released it exactly once (outstanding: %d)\n", arena.Outstanding())
	if err := buf.Release(); err != nil {
		fmt.Fprintf(out, "releasing it again fails: %v\n", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	section(out, "Return a pointer into caller storage")
	vec := []string{"pass", "the", "storage", "in", "first"}
	elem, err := refsem.Element(vec, 2)
	if err != nil {
		return err
	}
	*elem = "STORAGE"
	fmt.Fprintf(out, "after writing through the pointer: %v\n", vec)
	if _, err := refsem.Element(vec, 10); err != nil {
		fmt.Fprintf(out, "element 10: %v\n", err)
	}

	section(out, "Returning multiple values")
	s := refsem.NewSample()
	fmt.Fprintf(out, "%d %g\n", s.X, s.Y)
	a, b, c, d := refsem.Unpack()
	fmt.Fprintf(out, "%d %g %g %d\n", a, b, c, d)

	section(out, "Quiz time")
	lo, hi := refsem.MinMaxLegacy(4, 7)
	fmt.Fprintf(out, "legacy minmax(4, 7) = (%d, %d)  <- difference and sum, not min and max\n", lo, hi)
	lo, hi = refsem.MinMax(4, 7)
	fmt.Fprintf(out, "corrected minmax(4, 7) = (%d, %d)\n", lo, hi)

	values := []int{23, 56, 67, 34, 56, 89, 123}
	fmt.Fprintf(out, "legacy largest of %v = %d  <- the value, despite the name\n",
		values, refsem.LargestLegacy(values))
	idx, err := refsem.IndexOfLargest(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "index of the largest element = %d (value %d)\n", idx, values[idx])

	return nil
}
