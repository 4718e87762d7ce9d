package orchestration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/logging"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// lesson goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's spans. Without an SDK installed the
// tracer is a no-op.
const tracerName = "funclab/orchestration"

// RunLessons executes the given lessons and collects their results.
//
// Each lesson runs in its own goroutine and writes to a private buffer, so
// the lessons themselves stay single-threaded and their outputs never
// interleave. Results are returned in the order the lessons were given.
//
// Interactive input is only meaningful for a single lesson; when more than
// one lesson runs, each receives an empty reader and input-driven demos
// fall back to their defaults.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - toRun: The lessons to execute.
//   - params: The lesson parameters.
//   - in: The input reader, used only when exactly one lesson runs.
//   - logger: The structured logger for run lifecycle events.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - progressOut: The writer for progress output.
//
// Returns:
//   - []LessonResult: One result per lesson, in input order.
func RunLessons(ctx context.Context, toRun []lessons.Lesson, params lessons.Params, in io.Reader, logger logging.Logger, reporter ProgressReporter, progressOut io.Writer) []LessonResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]LessonResult, len(toRun))
	progressChan := make(chan ProgressUpdate, len(toRun)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(toRun), progressOut)

	tracer := otel.Tracer(tracerName)

	for i, l := range toRun {
		idx, lesson := i, l

		input := in
		if len(toRun) > 1 {
			input = strings.NewReader("")
		}

		g.Go(func() error {
			runCtx, span := tracer.Start(ctx, "lesson.run")
			span.SetAttributes(attribute.String("lesson", lesson.Name()))
			defer span.End()

			logger.Debug("lesson starting", logging.String("lesson", lesson.Name()))
			progressChan <- ProgressUpdate{Name: lesson.Name()}

			var buf bytes.Buffer
			startTime := time.Now()
			err := lesson.Run(runCtx, input, &buf, params)
			if err != nil {
				span.RecordError(err)
				err = apperrors.LessonError{Lesson: lesson.Name(), Cause: err}
			}
			results[idx] = LessonResult{
				Name:     lesson.Name(),
				Title:    lesson.Title(),
				Output:   buf.String(),
				Duration: time.Since(startTime),
				Err:      err,
			}

			progressChan <- ProgressUpdate{Name: lesson.Name(), Done: true}
			logger.Debug("lesson finished",
				logging.String("lesson", lesson.Name()),
				logging.Bool("ok", err == nil))
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// ReplayOutputs writes the buffered lesson outputs to out in result order.
// The lessons' own section banners provide the visual separation.
func ReplayOutputs(results []LessonResult, out io.Writer) {
	for _, res := range results {
		io.WriteString(out, res.Output)
	}
}

// AnalyzeResults inspects the collected results, presents the summary
// table, and maps the outcome to a process exit code.
//
// Parameters:
//   - results: The results to analyze.
//   - presenter: The result presenter for display formatting.
//   - out: The writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []LessonResult, presenter ResultPresenter, out io.Writer) int {
	var firstError error
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			if firstError == nil {
				firstError = res.Err
			}
		}
	}

	presenter.PresentSummaryTable(results, out)

	if failures == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All %d lessons completed.\n", len(results))
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d lessons failed.\n", failures, len(results))
	return presenter.HandleError(firstError, out)
}
