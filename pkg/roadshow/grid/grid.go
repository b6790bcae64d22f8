// Package grid holds the positional output grid and the rules that place
// deals, contacts and notes into it.
package grid

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCell indicates a coordinate below 1.
var ErrInvalidCell = errors.New("invalid cell coordinate")

// Cell is a 1-based (row, column) coordinate.
type Cell struct {
	Row int
	Col int
}

// Grid is a sparse in-memory cell grid. It has no upper bound; rows past a
// template's formatted area are accepted.
type Grid struct {
	cells  map[Cell]string
	maxRow int
	maxCol int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[Cell]string)}
}

// Set stores value at (row, col), replacing any previous value.
func (g *Grid) Set(row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, row, col)
	}
	g.cells[Cell{row, col}] = value
	if row > g.maxRow {
		g.maxRow = row
	}
	if col > g.maxCol {
		g.maxCol = col
	}
	return nil
}

// Get returns the value at (row, col) and whether it was set.
func (g *Grid) Get(row, col int) (string, bool) {
	v, ok := g.cells[Cell{row, col}]
	return v, ok
}

// Column returns n values of col starting at row from; unset cells are "".
func (g *Grid) Column(col, from, n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = g.cells[Cell{from + i, col}]
	}
	return values
}

// Len returns the number of set cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// MaxRow returns the highest row written, or 0.
func (g *Grid) MaxRow() int {
	return g.maxRow
}

// MaxCol returns the highest column written, or 0.
func (g *Grid) MaxCol() int {
	return g.maxCol
}

// Cells returns every set coordinate in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
