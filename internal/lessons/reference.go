package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/Oureyelet/funclab/internal/refsem"
)

// ReferenceLesson demonstrates pointer parameter semantics: mutation
// through a pointer, multi-value returns replacing out parameters,
// nulling a caller's pointer and fixed-length array parameters.
type ReferenceLesson struct{}

// NewReferenceLesson creates the reference lesson.
func NewReferenceLesson() *ReferenceLesson {
	return &ReferenceLesson{}
}

// Name returns the lesson identifier.
func (l *ReferenceLesson) Name() string { return "reference" }

// Title returns the lesson heading.
func (l *ReferenceLesson) Title() string { return "Passing arguments by reference" }

// Run executes every parameter-passing demo in order.
func (l *ReferenceLesson) Run(ctx context.Context, _ io.Reader, out io.Writer, _ Params) error {
	section(out, "Pass by pointer")
	x := 7
	fmt.Fprintf(out, "%d\n", x)
	refsem.AddOne(&x)
	fmt.Fprintf(out, "%d\n", x)
	fmt.Fprintf(out, "by value: AddOneByValue(%d) returns %d and leaves the argument at %d\n",
		x, refsem.AddOneByValue(x), x)

	if err := ctx.Err(); err != nil {
		return err
	}

	section(out, "Returning multiple values")
	sin, cos := refsem.SinCos(30.0)
	fmt.Fprintf(out, "The sin is %.6g\n", sin)
	fmt.Fprintf(out, "The cos is %.6g\n", cos)

	section(out, "Pointers to pointers")
	v := 5
	ptr := &v
	fmt.Fprintf(out, "ptr is: %s\n", describePtr(ptr))
	refsem.ClearIntPtr(&ptr)
	fmt.Fprintf(out, "ptr is: %s\n", describePtr(ptr))

	section(out, "Fixed-length arrays")
	arr := [refsem.FixedLen]int{3, 7, 34, 8}
	refsem.PrintElements(out, &arr)
	fmt.Fprintf(out, "sum of the elements: %d\n", refsem.SumFixed(&arr))

	return nil
}

func describePtr(p *int) string {
	if p == nil {
		return "null"
	}
	return "non-null"
}
