package cli

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseInvocation_Defaults(t *testing.T) {
	inv, err := ParseInvocation([]string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv.MapPaths, []string{"a.txt", "b.txt"}) {
		t.Fatalf("unexpected paths %q", inv.MapPaths)
	}
	if inv.HeuristicName != "euclidean" || inv.Heuristic == nil {
		t.Fatalf("unexpected heuristic %q", inv.HeuristicName)
	}
	if inv.Workers != 1 || inv.MaxExpansions != 0 {
		t.Fatalf("unexpected search settings %#v", inv)
	}
	if inv.LogLevel != logrus.InfoLevel || inv.LogFormat != "text" {
		t.Fatalf("unexpected log settings level=%v format=%q", inv.LogLevel, inv.LogFormat)
	}
}

func TestParseInvocation_Flags(t *testing.T) {
	inv, err := ParseInvocation([]string{
		"--heuristic", "Slide-Bound",
		"--workers", "3",
		"--max-expansions", "500",
		"--log-level", "debug",
		"--log-format", "json",
		"maze.txt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.HeuristicName != "slide-bound" || inv.Workers != 3 || inv.MaxExpansions != 500 {
		t.Fatalf("unexpected invocation %#v", inv)
	}
	if inv.LogLevel != logrus.DebugLevel || inv.LogFormat != "json" {
		t.Fatalf("unexpected log settings level=%v format=%q", inv.LogLevel, inv.LogFormat)
	}
	if len(inv.SearchOptions()) != 3 {
		t.Fatalf("expected three search options")
	}
}

func TestParseInvocation_Invalid(t *testing.T) {
	cases := map[string][]string{
		"no maps":         {},
		"unknown flag":    {"--frobnicate", "a.txt"},
		"bad heuristic":   {"--heuristic", "manhattan", "a.txt"},
		"zero workers":    {"--workers", "0", "a.txt"},
		"negative budget": {"--max-expansions", "-1", "a.txt"},
		"bad log level":   {"--log-level", "loud", "a.txt"},
		"bad log format":  {"--log-format", "xml", "a.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvocation(args)
			var invErr *InvocationError
			if !errors.As(err, &invErr) {
				t.Fatalf("expected *InvocationError, got %v", err)
			}
			if ExitCode(err) != ExitInvalidInvocation {
				t.Fatalf("unexpected exit code %d", ExitCode(err))
			}
		})
	}
}

func TestExitCode_UnknownError(t *testing.T) {
	if got := ExitCode(errors.New("boom")); got != ExitInternalError {
		t.Fatalf("expected ExitInternalError, got %d", got)
	}
	if got := ExitCode(nil); got != ExitSuccess {
		t.Fatalf("expected ExitSuccess, got %d", got)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	inv, err := ParseInvocation([]string{"--log-format", "json", "a.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	inv.NewLogger(&buf).WithField("file", "a.txt").Info("hello")
	if !strings.Contains(buf.String(), `"file":"a.txt"`) {
		t.Fatalf("expected JSON field in %q", buf.String())
	}
}
