package slidepath

import "math"

// Heuristic estimates the number of slides from one position to another.
type Heuristic func(from Position, to Position) int

// Euclidean is the straight-line distance in cells, truncated. A single slide
// can cross many cells, so it may overestimate the remaining slide count and
// does not guarantee a minimal answer; use SlideBound for that.
func Euclidean(from, to Position) int {
	dr := float64(from.Row - to.Row)
	dc := float64(from.Col - to.Col)
	return int(math.Sqrt(dr*dr + dc*dc))
}

// SlideBound never overestimates: a slide changes either the row or the column,
// so reaching a position off both axes takes at least two.
func SlideBound(from, to Position) int {
	switch {
	case from == to:
		return 0
	case from.Row == to.Row || from.Col == to.Col:
		return 1
	default:
		return 2
	}
}

// Zero turns the search into uniform-cost search.
func Zero(Position, Position) int { return 0 }
