package orchestration

import (
	"io"
	"sync"
	"time"
)

// LessonResult encapsulates the outcome of a single lesson run. It serves
// as the shared domain type between orchestration and presentation layers.
type LessonResult struct {
	// Name is the lesson identifier (e.g., "recursion").
	Name string
	// Title is the human-readable lesson heading.
	Title string
	// Output is the complete text the lesson wrote.
	Output string
	// Duration is the time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ProgressUpdate reports the state of one lesson run to the reporter.
type ProgressUpdate struct {
	// Name is the lesson identifier.
	Name string
	// Done is true once the lesson has finished.
	Done bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, plain
// text, nothing) while orchestration focuses on coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving updates from lesson goroutines.
	//   - numLessons: The number of lessons being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer) {
	f(wg, progressChan, numLessons, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting run results.
// This decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the run logic.
type ResultPresenter interface {
	// PresentSummaryTable displays the per-lesson summary table.
	PresentSummaryTable(results []LessonResult, out io.Writer)

	// HandleError writes a description of a failed run and returns the
	// process exit code for it.
	HandleError(err error, out io.Writer) int
}
