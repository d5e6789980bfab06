package slidepath

import "testing"

func TestSlide_StopsBeforeWall(t *testing.T) {
	g := mustGrid(t, "S..0.F")
	move, ok := Slide(g, g.Start(), Right, g.Goal(), nil)
	if !ok {
		t.Fatalf("expected a move")
	}
	if move.To != (Position{Row: 0, Col: 2}) || move.ReachedGoal || move.Deflected {
		t.Fatalf("unexpected move %#v", move)
	}
	if got := move.String(); got != "Move Right to (3,1)" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestSlide_StopsAtBoundary(t *testing.T) {
	g := mustGrid(t,
		"S",
		".",
		".",
		"F",
		".",
	)
	move, ok := Slide(g, Position{Row: 4, Col: 0}, Up, Position{Row: 9, Col: 9}, nil)
	if !ok || move.To != (Position{Row: 0, Col: 0}) {
		t.Fatalf("unexpected move %#v ok=%v", move, ok)
	}
}

func TestSlide_GoalStopsSlideEarly(t *testing.T) {
	g := mustGrid(t, "S.F..")
	move, ok := Slide(g, g.Start(), Right, g.Goal(), nil)
	if !ok || !move.ReachedGoal || move.To != g.Goal() {
		t.Fatalf("expected slide to stop on goal, got %#v ok=%v", move, ok)
	}
	if got := move.String(); got != "Move Right to (3,1)" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestSlide_ZeroLengthIsNoMove(t *testing.T) {
	g := mustGrid(t,
		"S0",
		"0F",
	)
	for _, d := range Directions {
		if move, ok := Slide(g, g.Start(), d, g.Goal(), nil); ok {
			t.Fatalf("%s: expected no move, got %#v", d, move)
		}
	}
}

func TestSlide_DeflectsOffWallRestingCell(t *testing.T) {
	g := mustGrid(t, "S.0.F")
	wall := Position{Row: 0, Col: 2}

	// Up leaves the grid at once, so the slide rests on the wall it started on.
	move, ok := Slide(g, wall, Up, g.Goal(), nil)
	if !ok || !move.Deflected || move.To != (Position{Row: 0, Col: 3}) {
		t.Fatalf("expected deflection to the right, got %#v ok=%v", move, ok)
	}
	if got := move.String(); got != "Move Up to (4,1)" {
		t.Fatalf("unexpected description %q", got)
	}

	visited := map[Position]bool{{Row: 0, Col: 3}: true}
	move, ok = Slide(g, wall, Up, g.Goal(), func(p Position) bool { return visited[p] })
	if !ok || move.To != (Position{Row: 0, Col: 1}) {
		t.Fatalf("expected deflection to the left, got %#v ok=%v", move, ok)
	}

	visited[Position{Row: 0, Col: 1}] = true
	if move, ok := Slide(g, wall, Up, g.Goal(), func(p Position) bool { return visited[p] }); ok {
		t.Fatalf("expected abandoned slide, got %#v", move)
	}
}

func TestSlide_DeflectionOntoGoal(t *testing.T) {
	g := mustGrid(t, "S.0F")
	move, ok := Slide(g, Position{Row: 0, Col: 2}, Down, g.Goal(), nil)
	if !ok || !move.Deflected || !move.ReachedGoal || move.To != g.Goal() {
		t.Fatalf("unexpected move %#v ok=%v", move, ok)
	}
}
