package slidepath

import "context"

// expandTask asks a worker to slide from one position in one direction.
type expandTask struct {
	From      Position
	Direction Direction
}

// expandProposal is the worker's answer. OK is false when the slide produced no move.
type expandProposal struct {
	Direction Direction
	Move      Move
	OK        bool
}

// expander runs Slide for the four directions of a popped node, either inline
// or on a pool of worker goroutines. It only reads visited; the owner mutates
// it strictly between calls to expand.
type expander struct {
	grid    *Grid
	goal    Position
	visited map[Position]bool

	taskChannel     chan expandTask
	proposalChannel chan expandProposal
}

func newExpander(contextObject context.Context, grid *Grid, goal Position, visited map[Position]bool, numberOfWorkers int) *expander {
	e := &expander{grid: grid, goal: goal, visited: visited}
	if numberOfWorkers <= 1 {
		return e
	}

	e.taskChannel = make(chan expandTask)
	e.proposalChannel = make(chan expandProposal)
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-contextObject.Done():
					return
				case task := <-e.taskChannel:
					proposal := e.slide(task)
					select {
					case e.proposalChannel <- proposal:
					case <-contextObject.Done():
						return
					}
				}
			}
		}()
	}
	return e
}

func (e *expander) isVisited(p Position) bool { return e.visited[p] }

func (e *expander) slide(task expandTask) expandProposal {
	move, ok := Slide(e.grid, task.From, task.Direction, e.goal, e.isVisited)
	return expandProposal{Direction: task.Direction, Move: move, OK: ok}
}

// expand returns the proposals for every direction, indexed by Direction, so
// callers see the same order however the work was scheduled.
func (e *expander) expand(contextObject context.Context, from Position) ([len(Directions)]expandProposal, error) {
	var proposals [len(Directions)]expandProposal

	if e.taskChannel == nil {
		for _, d := range Directions {
			proposals[d] = e.slide(expandTask{From: from, Direction: d})
		}
		return proposals, nil
	}

	// Dispatch and collect concurrently so no worker blocks on a full proposal channel.
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		for _, d := range Directions {
			select {
			case e.taskChannel <- expandTask{From: from, Direction: d}:
			case <-contextObject.Done():
				return
			}
		}
	}()

	for received := 0; received < len(Directions); received++ {
		select {
		case <-contextObject.Done():
			<-dispatchDone
			return proposals, contextObject.Err()
		case proposal := <-e.proposalChannel:
			proposals[proposal.Direction] = proposal
		}
	}
	<-dispatchDone
	return proposals, nil
}
