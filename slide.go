package slidepath

import "fmt"

// Move is one slide produced by Slide.
type Move struct {
	Direction Direction
	From      Position
	To        Position

	// ReachedGoal is set when the move ends on the goal, possibly partway through a slide.
	ReachedGoal bool

	// Deflected is set when the slide came to rest on a wall and took a corrective step.
	Deflected bool
}

func (m Move) String() string {
	return fmt.Sprintf("Move %s to %s", m.Direction, m.To)
}

// Slide computes where an agent at from ends up after sliding in direction dir.
//
// The slide stops on the last open cell before a wall or the grid edge, or on
// goal as soon as it is entered. If the resting cell is a wall, the agent is
// moved to the first open neighbour (in Directions order) for which visited
// returns false; a nil visited treats every cell as unvisited. The boolean is
// false when no move results, including slides of length zero.
func Slide(grid *Grid, from Position, dir Direction, goal Position, visited func(Position) bool) (Move, bool) {
	move := Move{Direction: dir, From: from}
	current := from

	for {
		next := current.Step(dir)
		if !grid.IsOpen(next) {
			break
		}
		current = next
		if current == goal {
			move.To = current
			move.ReachedGoal = true
			return move, true
		}
	}

	if grid.IsWall(current) {
		deflected := false
		for _, d := range Directions {
			candidate := current.Step(d)
			if !grid.IsOpen(candidate) {
				continue
			}
			if visited != nil && visited(candidate) {
				continue
			}
			current = candidate
			deflected = true
			break
		}
		if !deflected {
			return Move{}, false
		}
		move.Deflected = true
	}

	if current == from {
		return Move{}, false
	}
	move.To = current
	move.ReachedGoal = current == goal
	return move, true
}
