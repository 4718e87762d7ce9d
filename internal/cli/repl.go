package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Oureyelet/funclab/internal/lessons"
	"github.com/Oureyelet/funclab/internal/ui"
)

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// Params are the lesson parameters used for every run.
	Params lessons.Params
	// Timeout is the maximum duration for each lesson run.
	Timeout time.Duration
}

// REPL is an interactive lesson browser: it reads commands, runs lessons
// and prints their output until the user exits.
type REPL struct {
	registry *lessons.Registry
	config   REPLConfig
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a new interactive session over the lesson registry.
func NewREPL(registry *lessons.Registry, config REPLConfig) *REPL {
	return &REPL{
		registry: registry,
		config:   config,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"funclab> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s        %sfunclab - Interactive Lesson Browser%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %srun <name>%s   - Run a lesson (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.registry.Names(), ", "))
	fmt.Fprintf(r.out, "  %slist%s         - List available lessons\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s         - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s - Leave the session\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "\nTyping a lesson name on its own runs it.\n")
}

// processCommand parses and executes a user command.
// Returns false if the session should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "run", "r":
		if len(args) == 0 {
			fmt.Fprintf(r.out, "%sUsage: run <name>%s\n", ui.ColorRed(), ui.ColorReset())
			return true
		}
		r.runLesson(strings.ToLower(args[0]))
	case "list", "ls":
		DisplayLessonList(r.out, r.registry.All())
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// A bare lesson name runs it directly.
		if _, err := r.registry.Get(cmd); err == nil {
			r.runLesson(cmd)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// runLesson executes one lesson with the session parameters. The lesson
// receives an empty input reader, so interactive demos use their defaults
// instead of competing with the command prompt for stdin.
func (r *REPL) runLesson(name string) {
	lesson, err := r.registry.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Running %s%s%s...\n", ui.ColorCyan(), lesson.Title(), ui.ColorReset())

	start := time.Now()
	err = lesson.Run(ctx, strings.NewReader(""), r.out, r.config.Params)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "\n%sDone in %s.%s\n\n", ui.ColorGreen(), formatResultDuration(duration), ui.ColorReset())
}
