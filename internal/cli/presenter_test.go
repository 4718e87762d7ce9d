package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/orchestration"
	"github.com/Oureyelet/funclab/internal/ui"
)

// withoutColors runs fn with the no-color theme active so output assertions
// do not have to account for ANSI escape codes.
func withoutColors(t *testing.T, fn func()) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetTheme("none")
	defer ui.SetCurrentTheme(prev)
	fn()
}

func TestPresentSummaryTable(t *testing.T) {
	withoutColors(t, func() {
		results := []orchestration.LessonResult{
			{Name: "recursion", Duration: 3 * time.Millisecond},
			{Name: "capacity", Duration: 250 * time.Microsecond, Err: errors.New("boom")},
		}

		var buf bytes.Buffer
		CLIResultPresenter{}.PresentSummaryTable(results, &buf)
		output := buf.String()

		for _, want := range []string{
			"--- Lesson Summary ---",
			"Lesson",
			"Duration",
			"Status",
			"recursion",
			"3ms",
			"✅ Success",
			"capacity",
			"250µs",
			"❌ Failure (boom)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
			}
		}

		// Name cells are padded to the widest name, so both data rows align.
		if !strings.Contains(output, "recursion   3ms") {
			t.Errorf("Rows should be aligned on the name column, got:\n%s", output)
		}
		if !strings.Contains(output, "capacity    250µs") {
			t.Errorf("Shorter names should be padded, got:\n%s", output)
		}
	})
}

func TestFormatLessonStatus(t *testing.T) {
	withoutColors(t, func() {
		ok := FormatLessonStatus(orchestration.LessonResult{Name: "a"})
		if ok != "✅ Success" {
			t.Errorf("Success status = %q", ok)
		}

		failed := FormatLessonStatus(orchestration.LessonResult{Name: "a", Err: errors.New("boom")})
		if failed != "❌ Failure (boom)" {
			t.Errorf("Failure status = %q", failed)
		}
	})
}

func TestHandleError(t *testing.T) {
	withoutColors(t, func() {
		testCases := []struct {
			name     string
			err      error
			wantCode int
			contains string
		}{
			{
				name:     "nil error",
				err:      nil,
				wantCode: apperrors.ExitSuccess,
			},
			{
				name:     "lesson error",
				err:      apperrors.LessonError{Lesson: "recursion", Cause: errors.New("boom")},
				wantCode: apperrors.ExitErrorLesson,
				contains: "Lesson failed",
			},
			{
				name:     "config error",
				err:      apperrors.NewConfigError("unknown lesson %q", "bogus"),
				wantCode: apperrors.ExitErrorConfig,
				contains: "Configuration error",
			},
			{
				name:     "generic error",
				err:      errors.New("boom"),
				wantCode: apperrors.ExitErrorGeneric,
				contains: "Error: boom",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				code := CLIResultPresenter{}.HandleError(tc.err, &buf)
				if code != tc.wantCode {
					t.Errorf("exit code = %d, want %d", code, tc.wantCode)
				}
				if tc.contains != "" && !strings.Contains(buf.String(), tc.contains) {
					t.Errorf("output = %q, want it to contain %q", buf.String(), tc.contains)
				}
			})
		}
	})
}

func TestFormatResultDuration(t *testing.T) {
	t.Parallel()

	if got := formatResultDuration(0); got != "< 1µs" {
		t.Errorf("formatResultDuration(0) = %q", got)
	}
	if got := formatResultDuration(42 * time.Microsecond); got != "42µs" {
		t.Errorf("formatResultDuration(42µs) = %q", got)
	}
	if got := formatResultDuration(7 * time.Millisecond); got != "7ms" {
		t.Errorf("formatResultDuration(7ms) = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("abc", 3); got != "abc   " {
		t.Errorf("padRight(abc, 3) = %q", got)
	}
	if got := padRight("abc", 0); got != "abc" {
		t.Errorf("padRight(abc, 0) = %q", got)
	}
	if got := padRight("abc", -2); got != "abc" {
		t.Errorf("padRight(abc, -2) = %q", got)
	}
}
