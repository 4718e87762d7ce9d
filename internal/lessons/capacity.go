package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/Oureyelet/funclab/internal/metrics"
	"github.com/Oureyelet/funclab/internal/seq"
)

// CapacityLesson demonstrates length versus capacity on a growable
// sequence, bounds checking against length, reserve, and stack behavior
// with amortized growth.
type CapacityLesson struct {
	mx *metrics.Metrics
}

// NewCapacityLesson creates the capacity lesson. mx may be nil.
func NewCapacityLesson(mx *metrics.Metrics) *CapacityLesson {
	return &CapacityLesson{mx: mx}
}

// Name returns the lesson identifier.
func (l *CapacityLesson) Name() string { return "capacity" }

// Title returns the lesson heading.
func (l *CapacityLesson) Title() string { return "Capacity and stack behavior" }

// Run executes every capacity demo in order.
func (l *CapacityLesson) Run(ctx context.Context, _ io.Reader, out io.Writer, _ Params) error {
	section(out, "Length vs capacity")
	numbers := seq.New(0, 1, 2)
	numbers.Resize(5)
	fmt.Fprintf(out, "The length is: %d\n", numbers.Len())
	for _, v := range numbers.Values() {
		fmt.Fprintf(out, "%d ", v)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "The capacity is: %d\n", numbers.Cap())

	section(out, "More length vs. capacity")
	numbers.Assign(0, 1, 2, 3, 4)
	fmt.Fprintf(out, "length: %d capacity: %d\n", numbers.Len(), numbers.Cap())
	numbers.Assign(9, 8, 7)
	fmt.Fprintf(out, "length: %d capacity: %d\n", numbers.Len(), numbers.Cap())

	section(out, "Indexing is based on length, not capacity")
	if _, err := numbers.At(4); err != nil {
		fmt.Fprintf(out, "element 4 is within capacity but beyond length: %v\n", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	section(out, "Stack behavior")
	stack := seq.New[int]()
	if l.mx != nil {
		stack.OnGrow(l.mx.SeqGrowthHook())
	}
	printStack(out, stack)

	for _, v := range []int{5, 3, 2} {
		stack.Push(v)
		printStack(out, stack)
	}

	if top, err := stack.Back(); err == nil {
		fmt.Fprintf(out, "top: %d\n", top)
	}

	for stack.Len() > 0 {
		if _, err := stack.Pop(); err != nil {
			return err
		}
		printStack(out, stack)
	}
	fmt.Fprintf(out, "the stack reallocated %d times while growing\n", stack.Growths())

	stack.Reserve(77)
	printStack(out, stack)

	section(out, "Sequences may allocate extra capacity")
	doubles := seq.New(12.2, 12.3, 12.4, 12.5, 12.0, 6.0)
	fmt.Fprintf(out, "size: %d cap: %d\n", doubles.Len(), doubles.Cap())
	doubles.Push(77.77)
	fmt.Fprintf(out, "size: %d cap: %d\n", doubles.Len(), doubles.Cap())

	return nil
}

// printStack renders the elements followed by the capacity and length,
// matching the classic teaching output.
func printStack[T any](out io.Writer, s *seq.Seq[T]) {
	for _, v := range s.Values() {
		fmt.Fprintf(out, "%v ", v)
	}
	fmt.Fprintf(out, "(cap %d length %d)\n", s.Cap(), s.Len())
}
