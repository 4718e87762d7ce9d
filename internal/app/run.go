package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/Oureyelet/funclab/internal/cli"
	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/metrics"
	"github.com/Oureyelet/funclab/internal/orchestration"
	"github.com/Oureyelet/funclab/internal/sysmon"
)

// runLessons orchestrates the execution of the CLI lesson command.
func (a *Application) runLessons(ctx context.Context, out io.Writer) int {
	toRun, code := a.lessonsToRun(out)
	if code != apperrors.ExitSuccess {
		return code
	}

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := notifySignals(ctx)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.DisplayBanner(out, Version)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	results := orchestration.RunLessons(ctx, toRun, a.lessonParams(),
		a.Input, a.Logger, progressReporter, progressOut)

	for _, res := range results {
		a.Metrics.ObserveLessonRun(res.Name, res.Err)
	}

	orchestration.ReplayOutputs(results, out)

	exitCode := a.analyzeResults(results, out)

	if a.Config.Details {
		after := collector.Snapshot()
		cli.DisplayDetails(out, a.Metrics, before, after, sysmon.Sample())
	}

	return exitCode
}

// lessonsToRun resolves the -lesson flag to the set of lessons to execute.
func (a *Application) lessonsToRun(out io.Writer) ([]lessons.Lesson, int) {
	if a.Config.Lesson == "all" {
		return a.Registry.All(), apperrors.ExitSuccess
	}

	lesson, err := a.Registry.Get(a.Config.Lesson)
	if err != nil {
		code := apperrors.HandleLessonError(err, out, cli.CLIColorProvider{})
		return nil, code
	}
	return []lessons.Lesson{lesson}, apperrors.ExitSuccess
}

// analyzeResults maps the run outcome to an exit code. Quiet mode skips the
// summary table and global status line; the replayed lesson output is the
// only thing printed.
func (a *Application) analyzeResults(results []orchestration.LessonResult, out io.Writer) int {
	if a.Config.Quiet {
		for _, res := range results {
			if res.Err != nil {
				return apperrors.HandleLessonError(res.Err, a.ErrWriter, cli.CLIColorProvider{})
			}
		}
		return apperrors.ExitSuccess
	}

	return orchestration.AnalyzeResults(results, cli.CLIResultPresenter{}, out)
}

// notifySignals derives a context cancelled by SIGINT or SIGTERM.
func notifySignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
