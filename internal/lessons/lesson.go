//go:generate mockgen -source=lesson.go -destination=mocks/mock_lesson.go -package=mocks

// Package lessons defines the lesson catalog: each lesson is a
// self-contained demo program that writes explanatory text and computed
// results to its output writer.
package lessons

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Oureyelet/funclab/internal/ui"
)

// Params carries the per-run knobs lessons care about.
type Params struct {
	// NaiveTerms is how many Fibonacci terms the naive demo prints.
	NaiveTerms uint64
	// MemoTerms is how many Fibonacci terms the memoized demo prints.
	MemoTerms int
	// MaxDepth bounds guarded recursive demos.
	MaxDepth int
}

// Lesson is a single runnable demo program.
type Lesson interface {
	// Name returns the short identifier used on the command line.
	Name() string
	// Title returns the human-readable heading.
	Title() string
	// Run executes the lesson, reading any interactive input from in and
	// writing all output to out.
	Run(ctx context.Context, in io.Reader, out io.Writer, p Params) error
}

var sectionRule = strings.Repeat("/", 68)

// section writes a lesson section heading framed by slash rules.
func section(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, sectionRule)
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorBold(), title, ui.ColorReset())
	fmt.Fprintln(out, sectionRule)
}
