package slidepath

import (
	"context"
)

// Result contains the outcome of a search
type Result struct {
	Moves         []Move
	Slides        int
	ExpandedNodes int
	Found         bool
}

// Descriptions returns the human-readable text of each move.
func (r Result) Descriptions() []string {
	descriptions := make([]string, len(r.Moves))
	for i, move := range r.Moves {
		descriptions[i] = move.String()
	}
	return descriptions
}

// Options defines parameters for the search.
type Options struct {
	Heuristic       Heuristic
	NumberOfWorkers int
	MaxExpansions   int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWorkers specifies how many worker goroutines compute the slides of each
// expanded node. Values below two expand inline. The result does not depend on it.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops the search with ErrBudgetExceeded after n expansions.
// Zero or less means no limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Heuristic:       Euclidean,
		NumberOfWorkers: 1,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Euclidean
	}
	return searchOptions
}

// Search runs a best-first search over slides from startPosition to goalPosition.
//
// Entries are ordered by slides taken plus heuristic, ties first in first out.
// A position is finalized the first time it is popped and later entries for it
// are dropped. When the frontier empties the Result has Found false and the
// error is ErrNoPath. Invalid endpoints yield a *GridError before any search.
func Search(
	contextObject context.Context,
	grid *Grid,
	startPosition Position,
	goalPosition Position,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(contextObject, grid, startPosition, goalPosition, options...)
	if err != nil {
		return Result{}, err
	}
	defer stepper.Close()

	for !stepper.done {
		if err := stepper.advance(); err != nil {
			return stepper.Result(), err
		}
	}

	result := stepper.Result()
	if !result.Found {
		return result, ErrNoPath
	}
	return result, nil
}

// Solve searches from the grid's start marker to its finish marker.
func Solve(contextObject context.Context, grid *Grid, options ...Option) (Result, error) {
	if grid == nil {
		return Result{}, malformedf("nil grid")
	}
	return Search(contextObject, grid, grid.Start(), grid.Goal(), options...)
}

func validateEndpoints(grid *Grid, startPosition, goalPosition Position) error {
	if grid == nil {
		return malformedf("nil grid")
	}
	if !grid.IsOpen(startPosition) {
		return malformedf("start %v is not an open cell", startPosition)
	}
	if !grid.IsOpen(goalPosition) {
		return malformedf("goal %v is not an open cell", goalPosition)
	}
	return nil
}
