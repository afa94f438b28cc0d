package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fillRow occupies every cell of a row except the listed columns.
func fillRow(b *Board, row int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width; x++ {
		if !skip[x] {
			b.cells.Put(b.index(x, row), KindZ)
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	assert.Equal(t, 0, b.OccupiedCount())
	for y := 0; y < b.Height; y++ {
		assert.False(t, b.IsRowFull(y))
	}
}

func TestMergeAndOccupied(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	p := Piece{Kind: KindO, Rot: 0, Pos: Coord{X: 3, Y: 10}}
	b.Merge(p)

	assert.Equal(t, 4, b.OccupiedCount())
	for _, c := range p.Footprint() {
		kind, ok := b.Occupied(c.X, c.Y)
		assert.True(t, ok)
		assert.Equal(t, KindO, kind)
	}
}

func TestMergeOntoOccupiedCellPanics(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	p := Piece{Kind: KindO, Rot: 0, Pos: Coord{X: 3, Y: 10}}
	b.Merge(p)

	assert.Panics(t, func() {
		b.Merge(p)
	})
}

func TestMergeDiscardsHeadroomCells(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	// O box straddling the top edge: two cells above row 0.
	p := Piece{Kind: KindO, Rot: 0, Pos: Coord{X: 3, Y: -1}}
	b.Merge(p)

	assert.Equal(t, 2, b.OccupiedCount())
	_, ok := b.Occupied(4, 0)
	assert.True(t, ok)
}

func TestOverlaps(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	b.cells.Put(b.index(5, 10), KindT)

	tests := []struct {
		name      string
		footprint [4]Coord
		want      bool
	}{
		{"clear", [4]Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, false},
		{"left wall", [4]Coord{{-1, 5}, {0, 5}, {1, 5}, {2, 5}}, true},
		{"right wall", [4]Coord{{7, 5}, {8, 5}, {9, 5}, {10, 5}}, true},
		{"floor", [4]Coord{{0, 19}, {0, 20}, {1, 19}, {1, 20}}, true},
		{"headroom is legal", [4]Coord{{4, -2}, {4, -1}, {4, 0}, {4, 1}}, false},
		{"occupied cell", [4]Coord{{5, 10}, {6, 10}, {5, 11}, {6, 11}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.footprint))
		})
	}
}

func TestClearRowsAccounting(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19)
	fillRow(b, 18)
	fillRow(b, 17, 0, 4) // partial, must survive

	before := b.OccupiedCount()
	full := b.FullRows()
	assert.Equal(t, []int{18, 19}, full)

	b.ClearRows(full)

	assert.Equal(t, before-2*b.Width, b.OccupiedCount())
	assert.Empty(t, b.FullRows())
}

func TestClearRowsShiftsRowsDown(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19)
	b.cells.Put(b.index(2, 18), KindL)
	b.cells.Put(b.index(7, 16), KindJ)

	b.ClearRows([]int{19})

	// The row above the cleared one is the new bottom row.
	kind, ok := b.Occupied(2, 19)
	assert.True(t, ok)
	assert.Equal(t, KindL, kind)

	kind, ok = b.Occupied(7, 17)
	assert.True(t, ok)
	assert.Equal(t, KindJ, kind)

	_, ok = b.Occupied(2, 18)
	assert.False(t, ok)
	assert.Equal(t, 2, b.OccupiedCount())
}

func TestClearNonAdjacentRows(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19)
	fillRow(b, 17)
	b.cells.Put(b.index(0, 18), KindS)
	b.cells.Put(b.index(0, 16), KindS)

	b.ClearRows([]int{17, 19})

	assert.Equal(t, 2, b.OccupiedCount())
	_, ok := b.Occupied(0, 19)
	assert.True(t, ok)
	_, ok = b.Occupied(0, 18)
	assert.True(t, ok)
	assert.Empty(t, b.FullRows())
}

func TestDropIsMaximal(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19, 0, 1)

	for kind := Kind(0); kind < NumKinds; kind++ {
		p := SpawnPiece(kind)
		dropped := b.Drop(p)

		assert.True(t, b.CanPlace(dropped), "kind %s", kind)
		assert.False(t, b.CanPlace(dropped.Translated(0, 1)), "kind %s", kind)
		assert.Equal(t, p.Pos.X, dropped.Pos.X)
		assert.GreaterOrEqual(t, dropped.Pos.Y, p.Pos.Y)
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19)
	b.Reset()
	assert.Equal(t, 0, b.OccupiedCount())
}
