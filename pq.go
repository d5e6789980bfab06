package slidepath

import "github.com/pdrpinto/slidepath/internal"

// searchState is a frontier entry. It is never modified after it is pushed.
type searchState struct {
	Position  Position
	Cost      int
	Heuristic int
	Path      *internal.Chain[Move]

	// Sequence orders entries of equal priority first in, first out.
	Sequence uint64
}

func (state *searchState) Priority() int { return state.Cost + state.Heuristic }

type priorityQueue []*searchState

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].Priority() != queue[j].Priority() {
		return queue[i].Priority() < queue[j].Priority()
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(*searchState))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
