// Package slidepath finds minimal-move paths on grids where every move is a slide.
//
// An agent picks one of four directions and travels until the next cell is a
// wall or the edge of the grid, so one move may cross many cells. The package
// exposes two main entry points:
//
//   - Search: run the best-first search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Slide is exported on its own so callers can inspect single moves.
package slidepath
