package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/logging"
)

// newTestApp builds an Application with quiet test-friendly defaults.
func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(args, &errBuf,
		WithInput(strings.NewReader("")),
		WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New(%v) failed: %v (stderr: %s)", args, err, errBuf.String())
	}
	return a
}

func TestNew_ParsesConfig(t *testing.T) {
	a := newTestApp(t, "-lesson", "recursion", "-n", "10", "-quiet")

	if a.Config.Lesson != "recursion" {
		t.Errorf("Lesson = %q", a.Config.Lesson)
	}
	if a.Config.NaiveTerms != 10 {
		t.Errorf("NaiveTerms = %d", a.Config.NaiveTerms)
	}
	if !a.Config.Quiet {
		t.Error("Quiet should be set")
	}
	if a.Registry == nil || a.Metrics == nil {
		t.Error("New should wire the registry and metrics")
	}
}

func TestNew_InvalidFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"-n", "not-a-number"}, &errBuf)
	if err == nil {
		t.Fatal("expected an error for a malformed flag value")
	}
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want a ConfigError", err)
	}
}

func TestNew_ValidationErrorIsReported(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"-n", "100"}, &errBuf)
	if err == nil {
		t.Fatal("expected a validation error for -n 100")
	}

	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "n" {
		t.Errorf("error = %v, want a ValidationError for field n", err)
	}

	// The user must see the failure, not just a non-zero exit.
	msg := errBuf.String()
	if !strings.Contains(msg, "Fibonacci indexes beyond 93") {
		t.Errorf("stderr = %q, want the validation message", msg)
	}
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{
			"validation error",
			apperrors.ValidationError{Field: "n", Message: "out of range"},
			apperrors.ExitErrorConfig,
		},
		{
			"config error",
			apperrors.NewConfigError("-quiet and -verbose are mutually exclusive"),
			apperrors.ExitErrorConfig,
		},
		{"generic error", errors.New("boom"), apperrors.ExitErrorGeneric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestNew_HelpFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"-h"}, &errBuf)
	if err == nil {
		t.Fatal("expected flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false", err)
	}
	if !strings.Contains(errBuf.String(), "-lesson") {
		t.Errorf("usage text should mention -lesson, got:\n%s", errBuf.String())
	}
}

func TestRun_List(t *testing.T) {
	a := newTestApp(t, "-list", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, name := range []string{"recursion", "reference", "returns", "capacity"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("list output missing %q:\n%s", name, out.String())
		}
	}
}

func TestRun_SingleLessonQuiet(t *testing.T) {
	a := newTestApp(t, "-lesson", "returns", "-quiet", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	output := out.String()
	if !strings.Contains(output, "doubleValue(12345) = 24690") {
		t.Errorf("missing lesson output:\n%s", output)
	}
	if strings.Contains(output, "Global Status") {
		t.Errorf("quiet mode should not print the global status:\n%s", output)
	}
	if strings.Contains(output, "funclab dev") {
		t.Errorf("quiet mode should not print the banner:\n%s", output)
	}
}

func TestRun_AllLessonsQuiet(t *testing.T) {
	a := newTestApp(t, "-q", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	output := out.String()

	// One fragment per lesson, in registration order: recursion, reference,
	// returns, capacity.
	fragments := []string{
		"the naive algorithm made 1205 calls in total",
		"The sin is 0.5",
		"doubleValue(12345) = 24690",
		"the stack reallocated 3 times",
	}
	lastIdx := -1
	for _, frag := range fragments {
		idx := strings.Index(output, frag)
		if idx < 0 {
			t.Errorf("missing fragment %q:\n%s", frag, output)
			continue
		}
		if idx < lastIdx {
			t.Errorf("fragment %q out of order", frag)
		}
		lastIdx = idx
	}
}

func TestRun_NonQuietPrintsSummary(t *testing.T) {
	a := newTestApp(t, "-lesson", "reference", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	output := out.String()
	for _, want := range []string{
		"funclab dev",
		"--- Lesson Summary ---",
		"Global Status: Success",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q:\n%s", want, output)
		}
	}
}

func TestRun_UnknownLesson(t *testing.T) {
	a := newTestApp(t, "-lesson", "bogus", "-quiet", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(out.String(), "unknown lesson") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_Details(t *testing.T) {
	a := newTestApp(t, "-lesson", "capacity", "-quiet", "-details", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	output := out.String()
	for _, want := range []string{
		"--- Run Details ---",
		"funclab_seq_reallocations_total",
		"Heap in use:",
		"System: CPU",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q:\n%s", want, output)
		}
	}
}

func TestRun_LessonRunsAreCounted(t *testing.T) {
	a := newTestApp(t, "-lesson", "reference", "-quiet", "-no-color")

	var out bytes.Buffer
	a.Run(context.Background(), &out)

	var summary bytes.Buffer
	if err := a.Metrics.WriteSummary(&summary); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if !strings.Contains(summary.String(),
		`funclab_lesson_runs_total{lesson="reference",outcome="success"} 1`) {
		t.Errorf("run counter missing:\n%s", summary.String())
	}
}

func TestVersion(t *testing.T) {
	if !HasVersionFlag([]string{"-version"}) {
		t.Error("-version should be detected")
	}
	if !HasVersionFlag([]string{"--version"}) {
		t.Error("--version should be detected")
	}
	if HasVersionFlag([]string{"-lesson", "all"}) {
		t.Error("unrelated flags should not be detected as version")
	}

	var out bytes.Buffer
	PrintVersion(&out)
	if out.String() != "funclab dev\n" {
		t.Errorf("PrintVersion output = %q", out.String())
	}
}
