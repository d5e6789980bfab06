package slidepath

import (
	"fmt"
	"strings"
)

// Cell markers understood by NewGrid.
const (
	Wall   byte = '0'
	Start  byte = 'S'
	Finish byte = 'F'

	// absent fills the tail of rows shorter than the first one.
	absent byte = 0
)

// Position is a 0-indexed (row, column) pair.
type Position struct {
	Row, Col int
}

// String reports the position 1-indexed and column first, the way moves are printed.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col+1, p.Row+1)
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	offset := d.Offset()
	return Position{Row: p.Row + offset.Row, Col: p.Col + offset.Col}
}

// Grid is an immutable rectangular map. Build it with NewGrid.
type Grid struct {
	height int
	width  int
	cells  []byte
	start  Position
	goal   Position
}

// NewGrid parses map rows. The first row fixes the width; shorter rows are
// padded with impassable cells, longer rows are rejected.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, malformedf("no rows")
	}
	width := len(lines[0])
	if width == 0 {
		return nil, malformedf("first row is empty")
	}

	grid := &Grid{
		height: len(lines),
		width:  width,
		cells:  make([]byte, len(lines)*width),
	}
	startFound, goalFound := false, false

	for row, line := range lines {
		if len(line) > width {
			return nil, malformedf("row %d has %d cells, want at most %d", row+1, len(line), width)
		}
		for col := 0; col < len(line); col++ {
			c := line[col]
			grid.cells[row*width+col] = c
			switch c {
			case Start:
				if startFound {
					return nil, malformedf("second start marker at %v", Position{row, col})
				}
				grid.start = Position{Row: row, Col: col}
				startFound = true
			case Finish:
				if goalFound {
					return nil, malformedf("second finish marker at %v", Position{row, col})
				}
				grid.goal = Position{Row: row, Col: col}
				goalFound = true
			}
		}
	}

	if !startFound {
		return nil, malformedf("missing start marker %q", Start)
	}
	if !goalFound {
		return nil, malformedf("missing finish marker %q", Finish)
	}
	return grid, nil
}

func (g *Grid) Height() int     { return g.height }
func (g *Grid) Width() int      { return g.width }
func (g *Grid) Start() Position { return g.start }
func (g *Grid) Goal() Position  { return g.goal }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell symbol at p, or 0 outside the grid and in padding.
func (g *Grid) At(p Position) byte {
	if !g.InBounds(p) {
		return absent
	}
	return g.cells[p.Row*g.width+p.Col]
}

// IsOpen reports whether an agent may occupy p.
func (g *Grid) IsOpen(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	c := g.At(p)
	return c != Wall && c != absent
}

// IsWall reports whether p holds the wall marker.
func (g *Grid) IsWall(p Position) bool {
	return g.InBounds(p) && g.At(p) == Wall
}

func (g *Grid) String() string {
	var builder strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := g.cells[row*g.width+col]
			if c == absent {
				c = ' '
			}
			builder.WriteByte(c)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
