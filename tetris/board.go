package tetris

import (
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"
)

// Standard visible playfield dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// CellIndex is a packed row-major cell position within the board.
type CellIndex int32

// Board is a fixed-size grid of cells. Occupied cells are keyed by
// their packed index; absence means empty. Cells with y < 0 are the
// spawn headroom: always in bounds and never occupied.
//
// The board is owned exclusively by the game loop; no other component
// mutates it.
type Board struct {
	Width  int
	Height int

	cells *intmap.Map[CellIndex, Kind]
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  intmap.New[CellIndex, Kind](width * height),
	}
}

func (b *Board) index(x, y int) CellIndex {
	return CellIndex(y*b.Width + x)
}

// Occupied reports the kind occupying the cell, if any. Positions
// outside the grid (including the headroom above it) are empty.
func (b *Board) Occupied(x, y int) (Kind, bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, false
	}
	return b.cells.Get(b.index(x, y))
}

// Overlaps reports whether any cell of the footprint maps to an
// occupied cell or a position outside board bounds.
func (b *Board) Overlaps(footprint [4]Coord) bool {
	for _, c := range footprint {
		if c.X < 0 || c.X >= b.Width || c.Y >= b.Height {
			return true
		}
		if c.Y < 0 {
			continue
		}
		if _, ok := b.cells.Get(b.index(c.X, c.Y)); ok {
			return true
		}
	}
	return false
}

// CanPlace reports whether the piece's current footprint fits on the
// board. Pure, no side effects.
func (b *Board) CanPlace(p Piece) bool {
	return !b.Overlaps(p.Footprint())
}

// Merge marks every cell covered by the piece as occupied with the
// piece's kind. Cells in the headroom above the board are discarded.
// Merging onto an already-occupied cell is an invariant violation: the
// game loop must validate placement first.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Footprint() {
		if c.Y < 0 {
			continue
		}
		idx := b.index(c.X, c.Y)
		if _, ok := b.cells.Get(idx); ok {
			panic(fmt.Sprintf("merge onto occupied cell (%d,%d)", c.X, c.Y))
		}
		b.cells.Put(idx, p.Kind)
	}
}

// IsRowFull reports whether every cell in the row is occupied.
func (b *Board) IsRowFull(row int) bool {
	for x := 0; x < b.Width; x++ {
		if _, ok := b.cells.Get(b.index(x, row)); !ok {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.Height; y++ {
		if b.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes each given row, shifts every row above it down by
// one, and leaves the topmost resulting rows empty. Rows are processed
// from lowest to highest index so the shift arithmetic stays stable.
func (b *Board) ClearRows(rows []int) {
	sorted := append([]int(nil), rows...)
	sort.Ints(sorted)

	for _, row := range sorted {
		for x := 0; x < b.Width; x++ {
			b.cells.Del(b.index(x, row))
		}
		for y := row - 1; y >= 0; y-- {
			for x := 0; x < b.Width; x++ {
				idx := b.index(x, y)
				if kind, ok := b.cells.Get(idx); ok {
					b.cells.Del(idx)
					b.cells.Put(b.index(x, y+1), kind)
				}
			}
		}
	}
}

// Drop returns the piece translated straight down to the lowest row at
// which it still fits. Terminates because board height is finite.
func (b *Board) Drop(p Piece) Piece {
	for {
		next := p.Translated(0, 1)
		if !b.CanPlace(next) {
			return p
		}
		p = next
	}
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	return b.cells.Len()
}

// Reset empties the entire grid.
func (b *Board) Reset() {
	b.cells = intmap.New[CellIndex, Kind](b.Width * b.Height)
}
