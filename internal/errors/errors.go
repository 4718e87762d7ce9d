package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run timed out.
	ExitErrorLesson   = 3   // Indicates one or more lessons failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ErrDepthExceeded is the sentinel returned by guarded recursive demos when
// the configured maximum recursion depth is reached. It exists so callers can
// distinguish the safety guard firing from an ordinary failure.
var ErrDepthExceeded = errors.New("maximum recursion depth exceeded")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// LessonError encapsulates a lesson failure while preserving the original
// cause. This allows structured inspection of what went wrong during a
// lesson run.
type LessonError struct {
	// Lesson is the name of the lesson that failed.
	Lesson string
	// Cause is the underlying error that triggered this lesson error.
	Cause error
}

// Error returns a formatted message naming the lesson and its cause.
func (e LessonError) Error() string {
	return fmt.Sprintf("lesson %q: %v", e.Lesson, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e LessonError) Unwrap() error { return e.Cause }

// DepthError reports that a guarded recursive demo exceeded its depth limit.
// It records the offending function and the limit for diagnostics, and
// matches ErrDepthExceeded via errors.Is.
type DepthError struct {
	// Function is the name of the recursive demo that hit the guard.
	Function string
	// Limit is the configured maximum depth.
	Limit int
}

// Error returns a formatted message describing the depth violation.
func (e DepthError) Error() string {
	return fmt.Sprintf("%s exceeded maximum recursion depth %d", e.Function, e.Limit)
}

// Is reports whether target is ErrDepthExceeded, so callers can test with
// errors.Is(err, ErrDepthExceeded) without knowing the concrete type.
func (e DepthError) Is(target error) bool { return target == ErrDepthExceeded }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes for error presentation without
// coupling this package to the ui layer.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleLessonError writes a colorized description of a failed run to out and
// returns the exit code matching the error class.
//
// Parameters:
//   - err: The error to classify. A nil error returns ExitSuccess.
//   - out: The writer for the error message.
//   - colors: The ANSI color provider for the output.
//
// Returns:
//   - int: The process exit code for the error.
func HandleLessonError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimed out: %v%s\n", colors.Yellow(), err, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled: %v%s\n", colors.Yellow(), err, colors.Reset())
		return ExitErrorCanceled
	}

	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	}

	var lessonErr LessonError
	if errors.As(err, &lessonErr) {
		fmt.Fprintf(out, "%sLesson failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorLesson
	}

	fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	return ExitErrorGeneric
}
