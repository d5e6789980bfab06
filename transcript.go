package slidepath

import "fmt"

// NoSolution is the transcript of a search that found nothing.
const NoSolution = "No solution found."

// Transcript numbers the steps of a result for printing: the start position,
// one line per move, then a final "Done!" line.
func Transcript(start Position, result Result) []string {
	if !result.Found {
		return []string{NoSolution}
	}
	lines := make([]string, 0, len(result.Moves)+2)
	lines = append(lines, fmt.Sprintf("1. Start at %s", start))
	for i, move := range result.Moves {
		lines = append(lines, fmt.Sprintf("%d. %s", i+2, move))
	}
	lines = append(lines, fmt.Sprintf("%d. Done!", len(result.Moves)+2))
	return lines
}
