package cli

import (
	"fmt"
	"io"

	"github.com/Oureyelet/funclab/internal/format"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/metrics"
	"github.com/Oureyelet/funclab/internal/sysmon"
	"github.com/Oureyelet/funclab/internal/ui"
)

// DisplayBanner writes the application banner.
func DisplayBanner(out io.Writer, version string) {
	fmt.Fprintf(out, "%sfunclab%s %s - language mechanics, one lesson at a time\n",
		ui.ColorBold(), ui.ColorReset(), version)
}

// DisplayLessonList writes the lesson catalog, one line per lesson.
func DisplayLessonList(out io.Writer, catalog []lessons.Lesson) {
	fmt.Fprintf(out, "%sAvailable lessons:%s\n", ui.ColorBold(), ui.ColorReset())
	maxNameLen := 0
	for _, l := range catalog {
		if len(l.Name()) > maxNameLen {
			maxNameLen = len(l.Name())
		}
	}
	for _, l := range catalog {
		fmt.Fprintf(out, "  %s%s%s%s   %s\n",
			ui.ColorYellow(), l.Name(), ui.ColorReset(),
			padRight("", maxNameLen-len(l.Name())), l.Title())
	}
	fmt.Fprintf(out, "\nRun one with %s-lesson <name>%s, or all of them with %s-lesson all%s.\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
}

// DisplayDetails writes the post-run diagnostics: gathered metrics, a
// memory snapshot delta and a system usage sample.
func DisplayDetails(out io.Writer, mx *metrics.Metrics, before, after metrics.MemorySnapshot, sys sysmon.Stats) {
	fmt.Fprintf(out, "\n%s--- Run Details ---%s\n", ui.ColorBold(), ui.ColorReset())

	if err := mx.WriteSummary(out); err != nil {
		fmt.Fprintf(out, "%smetrics unavailable: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	}

	allocBytes, gcCycles := metrics.Delta(before, after)
	fmt.Fprintf(out, "\nMemory:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated (run): %s\n", format.FormatBytes(allocBytes))
	fmt.Fprintf(out, "  GC cycles (run): %d\n", gcCycles)
	fmt.Fprintf(out, "  Heap objects:    %d\n", after.HeapObjects)

	fmt.Fprintf(out, "\nSystem: %s\n", sys)
}
