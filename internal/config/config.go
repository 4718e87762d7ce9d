// Package config defines the application configuration and its resolution
// chain: CLI flags > environment variables > defaults.
package config

import (
	"errors"
	"flag"
	"io"
	"time"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "FUNCLAB_"

// Defaults for the lesson parameters.
const (
	// DefaultNaiveTerms is how many Fibonacci terms the naive demo prints.
	DefaultNaiveTerms = 13
	// DefaultMemoTerms is how many Fibonacci terms the memoized demo prints.
	DefaultMemoTerms = 20
	// DefaultMaxDepth bounds guarded recursive demos.
	DefaultMaxDepth = 10_000
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 1 * time.Minute
	// MaxFibIndex is the largest n for which F(n) fits in a uint64.
	MaxFibIndex = 93
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Lesson selects which lesson to run; "all" runs every registered lesson.
	Lesson string
	// List requests the lesson catalog instead of a run.
	List bool
	// NaiveTerms is the number of Fibonacci terms computed naively.
	NaiveTerms uint64
	// MemoTerms is the number of Fibonacci terms computed with the memo cache.
	MemoTerms int
	// MaxDepth bounds guarded recursion.
	MaxDepth int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses progress indicators and banners.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Details prints metrics, memory and system usage after the run.
	Details bool
	// NoColor disables ANSI color output.
	NoColor bool
	// TUI launches the interactive terminal interface.
	TUI bool
	// REPL launches the interactive prompt.
	REPL bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not set explicitly, and validates
// the result. Flag usage and parse errors are written to output.
//
// Parameters:
//   - args: The command-line arguments, excluding the program name.
//   - output: The writer for flag parse errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError or ValidationError if the input is unusable.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Lesson:     "all",
		NaiveTerms: DefaultNaiveTerms,
		MemoTerms:  DefaultMemoTerms,
		MaxDepth:   DefaultMaxDepth,
		Timeout:    DefaultTimeout,
	}

	fs := flag.NewFlagSet("funclab", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Lesson, "lesson", cfg.Lesson,
		"Lesson to run (use -list for the catalog; \"all\" runs every lesson)")
	fs.BoolVar(&cfg.List, "list", false, "List available lessons and exit")
	fs.Uint64Var(&cfg.NaiveTerms, "n", cfg.NaiveTerms,
		"Number of Fibonacci terms for the naive recursion demo")
	fs.IntVar(&cfg.MemoTerms, "terms", cfg.MemoTerms,
		"Number of Fibonacci terms for the memoized demo")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth,
		"Maximum recursion depth for guarded demos")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout,
		"Maximum duration for the whole run (e.g., 30s, 2m)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&cfg.Quiet, "q", false, "Suppress progress output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable verbose logging (shorthand)")
	fs.BoolVar(&cfg.Details, "details", false, "Show metrics and system usage after the run")
	fs.BoolVar(&cfg.Details, "d", false, "Show metrics and system usage (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", false, "Launch the interactive terminal interface")
	fs.BoolVar(&cfg.REPL, "repl", false, "Launch the interactive prompt")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("parsing flags: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the run cannot work with.
func (c AppConfig) Validate() error {
	if c.Lesson == "" {
		return apperrors.ValidationError{Field: "lesson", Message: "must not be empty"}
	}
	if c.NaiveTerms > MaxFibIndex {
		return apperrors.ValidationError{
			Field:   "n",
			Message: "Fibonacci indexes beyond 93 overflow uint64",
		}
	}
	if c.MemoTerms < 1 || c.MemoTerms > MaxFibIndex {
		return apperrors.ValidationError{
			Field:   "terms",
			Message: "must be between 1 and 93",
		}
	}
	if c.MaxDepth <= 0 {
		return apperrors.ValidationError{Field: "max-depth", Message: "must be positive"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	return nil
}
