package slidepath

import (
	"container/heap"
	"context"

	"github.com/pdrpinto/slidepath/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current      Position
	Cost         int
	FrontierSize int
	Visited      map[Position]bool
	Done         bool
	Found        bool
	Moves        []Move
	StepIndex    int
}

// Stepper drives the search one node at a time. Search is a Stepper run to completion.
type Stepper struct {
	ctx           context.Context
	cancel        context.CancelFunc
	grid          *Grid
	goal          Position
	heuristic     Heuristic
	maxExpansions int

	openSet  priorityQueue
	visited  map[Position]bool
	expander *expander
	sequence uint64

	current   *searchState
	stepCount int
	expanded  int
	done      bool
	found     bool
	moves     []Move
}

// NewStepper validates the endpoints and seeds the frontier with start.
func NewStepper(
	parent context.Context,
	grid *Grid,
	startPosition Position,
	goalPosition Position,
	options ...Option,
) (*Stepper, error) {
	if err := validateEndpoints(grid, startPosition, goalPosition); err != nil {
		return nil, err
	}
	opts := applyOptions(options)

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper{
		ctx: ctx, cancel: cancel,
		grid: grid, goal: goalPosition, heuristic: opts.Heuristic,
		maxExpansions: opts.MaxExpansions,
		openSet:       make(priorityQueue, 0),
		visited:       make(map[Position]bool),
	}
	s.expander = newExpander(ctx, grid, goalPosition, s.visited, opts.NumberOfWorkers)

	heap.Init(&s.openSet)
	s.push(startPosition, 0, nil)
	return s, nil
}

// Close stops the workers
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper) Step() (StepSnapshot, error) {
	err := s.advance()
	return s.snapshot(), err
}

// Result summarises the search so far. It is final once a Step reports Done.
func (s *Stepper) Result() Result {
	return Result{
		Moves:         s.moves,
		Slides:        len(s.moves),
		ExpandedNodes: s.expanded,
		Found:         s.found,
	}
}

func (s *Stepper) push(position Position, cost int, path *internal.Chain[Move]) {
	heap.Push(&s.openSet, &searchState{
		Position:  position,
		Cost:      cost,
		Heuristic: s.heuristic(position, s.goal),
		Path:      path,
		Sequence:  s.sequence,
	})
	s.sequence++
}

func (s *Stepper) advance() error {
	if s.done {
		return nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return err
	}

	for {
		if s.openSet.Len() == 0 {
			s.done = true
			return nil
		}

		currentItem := heap.Pop(&s.openSet).(*searchState)
		current := currentItem.Position

		// Goal check happens on pop, never on discovery.
		if current == s.goal {
			s.stepCount++
			s.expanded++
			s.current = currentItem
			s.done = true
			s.found = true
			s.moves = currentItem.Path.Slice()
			return nil
		}

		// Stale entry: an earlier pop already finalized this position.
		if s.visited[current] {
			continue
		}

		if s.maxExpansions > 0 && s.expanded >= s.maxExpansions {
			s.done = true
			return ErrBudgetExceeded
		}

		s.stepCount++
		s.expanded++
		s.current = currentItem
		s.visited[current] = true

		proposals, err := s.expander.expand(s.ctx, current)
		if err != nil {
			s.done = true
			return err
		}
		for _, proposal := range proposals {
			if !proposal.OK || s.visited[proposal.Move.To] {
				continue
			}
			s.push(proposal.Move.To, currentItem.Cost+1, currentItem.Path.Append(proposal.Move))
		}
		return nil
	}
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		FrontierSize: s.openSet.Len(),
		Visited:      copyBoolMap(s.visited),
		Done:         s.done,
		Found:        s.found,
		StepIndex:    s.stepCount,
	}
	if s.current != nil {
		snapshot.Current = s.current.Position
		snapshot.Cost = s.current.Cost
	}
	if s.found {
		snapshot.Moves = append([]Move(nil), s.moves...)
	}
	return snapshot
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
