package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/format"
	"github.com/Oureyelet/funclab/internal/orchestration"
	"github.com/Oureyelet/funclab/internal/ui"
)

// CLIColorProvider supplies the active theme's colors to the error handler.
type CLIColorProvider struct{}

// Red returns the active error color code.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the active warning color code.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the active reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for lesson results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentSummaryTable displays the per-lesson summary table with lesson
// names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentSummaryTable(results []orchestration.LessonResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Lesson Summary ---\n")

	// Find the maximum widths for proper alignment
	maxNameLen := 6     // "Lesson" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatResultDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sLesson%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		duration := formatResultDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			FormatLessonStatus(res))
	}
}

// FormatLessonStatus returns the colorized status cell for a result.
func FormatLessonStatus(res orchestration.LessonResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
	}
	return fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
}

// HandleError writes a description of a failed run and returns the process
// exit code for it.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleLessonError(err, out, CLIColorProvider{})
}

// formatResultDuration renders a duration cell, flooring sub-microsecond
// runs so the table never shows "0µs".
func formatResultDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by spaces up to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
