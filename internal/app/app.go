package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Oureyelet/funclab/internal/cli"
	"github.com/Oureyelet/funclab/internal/config"
	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/logging"
	"github.com/Oureyelet/funclab/internal/metrics"
	"github.com/Oureyelet/funclab/internal/tui"
	"github.com/Oureyelet/funclab/internal/ui"
)

// Application represents the funclab application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *lessons.Registry
	Metrics   *metrics.Metrics
	ErrWriter io.Writer
	Input     io.Reader
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets a custom input reader for interactive lesson demos.
// Defaults to os.Stdin.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.Input = in }
}

// WithLogger sets a custom logger for the application.
func WithLogger(logger logging.Logger) AppOption {
	return func(a *Application) { a.Logger = logger }
}

// New creates a new Application instance by parsing command-line arguments.
// args excludes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Input == nil {
		app.Input = os.Stdin
	}

	cfg, err := config.ParseConfig(args, errWriter)
	if err != nil {
		// The flag package already reports parse errors and help output to
		// errWriter; validation errors arrive silent and must be surfaced
		// here or the user sees nothing but a non-zero exit.
		if !IsHelpError(err) && !isFlagParseError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	app.Metrics = metrics.New()
	app.Registry = lessons.NewRegistry(app.Metrics)

	if app.Logger == nil {
		if cfg.Quiet {
			app.Logger = logging.NopLogger{}
		} else {
			app.Logger = logging.NewDefaultLogger()
		}
	}

	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.List {
		cli.DisplayLessonList(out, a.Registry.All())
		return apperrors.ExitSuccess
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	if a.Config.REPL {
		return a.runREPL()
	}

	return a.runLessons(ctx, out)
}

// runTUI launches the interactive lesson browser.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := notifySignals(ctx)
	defer stopSignals()

	return tui.Run(ctx, a.Registry, a.Config, Version)
}

// runREPL launches the interactive prompt.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(a.Registry, cli.REPLConfig{
		Params:  a.lessonParams(),
		Timeout: a.Config.Timeout,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// lessonParams derives the lesson parameters from the configuration.
func (a *Application) lessonParams() lessons.Params {
	return lessons.Params{
		NaiveTerms: a.Config.NaiveTerms,
		MemoTerms:  a.Config.MemoTerms,
		MaxDepth:   a.Config.MaxDepth,
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// isFlagParseError reports whether err wraps a flag parse failure, which the
// flag package has already printed together with the usage text.
func isFlagParseError(err error) bool {
	var cfgErr apperrors.ConfigError
	return errors.As(err, &cfgErr) && strings.HasPrefix(cfgErr.Message, "parsing flags:")
}

// ExitCode maps a startup error from New to a process exit code.
// Configuration and validation failures exit with ExitErrorConfig.
func ExitCode(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
