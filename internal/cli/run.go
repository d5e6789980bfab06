package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdrpinto/slidepath"
	"github.com/pdrpinto/slidepath/internal/mapfile"
	"github.com/sirupsen/logrus"
)

// RunResult summarises one invocation.
type RunResult struct {
	ExitCode  int
	Processed int
	Failed    int
}

// Execute solves every map of the invocation in order, writing transcripts to
// stdout. A map that is missing, unreadable, malformed or over budget is
// reported and counted as failed; the remaining maps still run. A map without
// a solution is not a failure.
func Execute(ctx context.Context, inv Invocation, stdout io.Writer, log *logrus.Logger) (RunResult, error) {
	result := RunResult{ExitCode: ExitSuccess}
	options := inv.SearchOptions()

	for _, path := range inv.MapPaths {
		if err := ctx.Err(); err != nil {
			result.ExitCode = ExitInternalError
			return result, err
		}
		entry := log.WithField("file", path)

		grid, err := mapfile.Load(path)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stdout, "File not found: %s\n", path)
			entry.Warn("map file not found")
			result.Failed++
			continue
		}

		fmt.Fprintf(stdout, "Path finding for puzzle: %s\n", path)
		if err != nil {
			entry.WithError(err).Error("failed to load map")
			fmt.Fprintln(stdout)
			result.Failed++
			continue
		}
		entry = entry.WithFields(logrus.Fields{"rows": grid.Height(), "cols": grid.Width()})

		started := time.Now()
		res, err := slidepath.Solve(ctx, grid, options...)
		entry = entry.WithFields(logrus.Fields{
			"expanded": res.ExpandedNodes,
			"elapsed":  time.Since(started),
		})

		switch {
		case err == nil:
			entry.WithField("slides", res.Slides).Info("path found")
		case errors.Is(err, slidepath.ErrNoPath):
			entry.Info("no path")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			result.ExitCode = ExitInternalError
			return result, err
		default:
			entry.WithError(err).Error("search failed")
			fmt.Fprintln(stdout)
			result.Failed++
			continue
		}

		for _, line := range slidepath.Transcript(grid.Start(), res) {
			fmt.Fprintln(stdout, line)
		}
		fmt.Fprintln(stdout)
		result.Processed++
	}

	if result.Failed > 0 {
		result.ExitCode = ExitPuzzleFailure
	}
	return result, nil
}
