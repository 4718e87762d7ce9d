package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Oureyelet/funclab/internal/config"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/metrics"
)

func newTestREPL(script string) (*REPL, *bytes.Buffer) {
	registry := lessons.NewRegistry(metrics.New())
	repl := NewREPL(registry, REPLConfig{
		Params: lessons.Params{
			NaiveTerms: config.DefaultNaiveTerms,
			MemoTerms:  config.DefaultMemoTerms,
			MaxDepth:   config.DefaultMaxDepth,
		},
		Timeout: 30 * time.Second,
	})

	var out bytes.Buffer
	repl.SetInput(strings.NewReader(script))
	repl.SetOutput(&out)
	return repl, &out
}

func TestREPL_Session(t *testing.T) {
	withoutColors(t, func() {
		repl, out := newTestREPL("list\nrun reference\nbogus\nexit\n")
		repl.Start()
		output := out.String()

		for _, want := range []string{
			"Interactive Lesson Browser",
			"Available commands:",
			"Available lessons:",          // list
			"Running ",                    // run reference
			"The sin is 0.5",              // lesson output made it to the session writer
			"Done in ",                    // post-run timing line
			"Unknown command: bogus",      // bogus
			"Type help to see available ", // hint after unknown command
			"Goodbye!",                    // exit
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected session output to contain %q, but got:\n%s", want, output)
			}
		}
	})
}

func TestREPL_BareLessonName(t *testing.T) {
	withoutColors(t, func() {
		repl, out := newTestREPL("returns\nquit\n")
		repl.Start()
		output := out.String()

		if !strings.Contains(output, "doubleValue(12345) = 24690") {
			t.Errorf("A bare lesson name should run the lesson, got:\n%s", output)
		}
		if strings.Contains(output, "Unknown command") {
			t.Errorf("Known lesson names must not be reported as unknown, got:\n%s", output)
		}
	})
}

func TestREPL_RunWithoutArgument(t *testing.T) {
	withoutColors(t, func() {
		repl, out := newTestREPL("run\nexit\n")
		repl.Start()

		if !strings.Contains(out.String(), "Usage: run <name>") {
			t.Errorf("run without an argument should print usage, got:\n%s", out.String())
		}
	})
}

func TestREPL_UnknownLesson(t *testing.T) {
	withoutColors(t, func() {
		repl, out := newTestREPL("run nosuch\nexit\n")
		repl.Start()

		if !strings.Contains(out.String(), "unknown lesson") {
			t.Errorf("run with an unknown lesson should report it, got:\n%s", out.String())
		}
	})
}

func TestREPL_EOFEndsSession(t *testing.T) {
	withoutColors(t, func() {
		repl, out := newTestREPL("list\n") // no exit command, reader hits EOF
		repl.Start()

		if !strings.Contains(out.String(), "Goodbye!") {
			t.Errorf("EOF should end the session with a farewell, got:\n%s", out.String())
		}
	})
}
