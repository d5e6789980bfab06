package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/slidepath"
	"github.com/sirupsen/logrus"
)

const (
	ExitSuccess           = 0
	ExitPuzzleFailure     = 1
	ExitInvalidInvocation = 2
	ExitInternalError     = 4
)

// Invocation is the parsed command line.
type Invocation struct {
	MapPaths      []string
	HeuristicName string
	Heuristic     slidepath.Heuristic
	Workers       int
	MaxExpansions int
	LogLevel      logrus.Level
	LogFormat     string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

var heuristics = map[string]slidepath.Heuristic{
	"euclidean":   slidepath.Euclidean,
	"slide-bound": slidepath.SlideBound,
	"zero":        slidepath.Zero,
}

// ParseInvocation parses flags followed by one or more map paths.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("slidepath", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var heuristicName string
	var workers int
	var maxExpansions int
	var logLevel string
	var logFormat string

	fs.StringVar(&heuristicName, "heuristic", "euclidean", "Heuristic: euclidean|slide-bound|zero")
	fs.IntVar(&workers, "workers", 1, "Goroutines used to expand each node.")
	fs.IntVar(&maxExpansions, "max-expansions", 0, "Give up after this many expansions per map (0 = unlimited).")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	fs.StringVar(&logFormat, "log-format", "text", "Log format: text|json")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() == 0 {
		return Invocation{}, invalidInvocationf("at least one map file is required")
	}

	n := strings.ToLower(strings.TrimSpace(heuristicName))
	heuristic, ok := heuristics[n]
	if !ok {
		return Invocation{}, invalidInvocationf("invalid --heuristic %q (expected euclidean|slide-bound|zero)", heuristicName)
	}
	if workers < 1 {
		return Invocation{}, invalidInvocationf("--workers must be at least 1 (got %d)", workers)
	}
	if maxExpansions < 0 {
		return Invocation{}, invalidInvocationf("--max-expansions must not be negative (got %d)", maxExpansions)
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return Invocation{}, invalidInvocationf("invalid --log-level %q", logLevel)
	}
	format := strings.ToLower(strings.TrimSpace(logFormat))
	if format != "text" && format != "json" {
		return Invocation{}, invalidInvocationf("invalid --log-format %q (expected text|json)", logFormat)
	}

	return Invocation{
		MapPaths:      append([]string(nil), fs.Args()...),
		HeuristicName: n,
		Heuristic:     heuristic,
		Workers:       workers,
		MaxExpansions: maxExpansions,
		LogLevel:      level,
		LogFormat:     format,
	}, nil
}

// SearchOptions turns the invocation into search options.
func (inv Invocation) SearchOptions() []slidepath.Option {
	return []slidepath.Option{
		slidepath.WithHeuristic(inv.Heuristic),
		slidepath.WithWorkers(inv.Workers),
		slidepath.WithMaxExpansions(inv.MaxExpansions),
	}
}

// NewLogger builds the logger configured by the invocation.
func (inv Invocation) NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(inv.LogLevel)
	if inv.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}

// ExitCode extracts a semantic exit code from a ParseInvocation error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	return ExitInternalError
}
