// Package mapfile reads slide puzzle maps from text files.
package mapfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pdrpinto/slidepath"
)

const maxLineBytes = 1 << 20

// ReadLines returns the non-empty lines of the file at path. A missing file
// yields an error that matches os.ErrNotExist.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Load reads and parses the map at path.
func Load(path string) (*slidepath.Grid, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	grid, err := slidepath.NewGrid(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
