package slidepath

// Direction is one of the four slide directions.
type Direction uint8

const (
	Right Direction = iota
	Left
	Down
	Up
)

// Directions lists every direction in expansion order.
var Directions = [4]Direction{Right, Left, Down, Up}

var directionOffsets = [4]Position{
	Right: {Row: 0, Col: 1},
	Left:  {Row: 0, Col: -1},
	Down:  {Row: 1, Col: 0},
	Up:    {Row: -1, Col: 0},
}

var directionNames = [4]string{
	Right: "Right",
	Left:  "Left",
	Down:  "Down",
	Up:    "Up",
}

// Offset returns the (row, column) delta of a single step.
func (d Direction) Offset() Position {
	if int(d) >= len(directionOffsets) {
		return Position{}
	}
	return directionOffsets[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Direction(?)"
	}
	return directionNames[d]
}
