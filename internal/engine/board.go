// Package engine implements the falling-piece game core: board state,
// collision, rotation with wall kicks, lock-delay timing, weighted piece
// selection, scoring and the game manager that ties them together.
//
// Board, LockDelay and Bag are value types mutated by replacement: every
// transition returns a new value, which keeps the state machines testable
// without a running engine.
package engine

import (
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/poly"
)

// Cell is one board cell.
type Cell struct {
	Filled bool
	Piece  int // definition id of the piece that filled the cell
	Color  core.Color
}

// Board is a fixed-size grid of cells. Dimensions never change after
// creation; all mutating operations are copy-on-write and return a new Board.
type Board struct {
	width  int
	height int
	cells  [][]Cell // row-major, cells[y][x]
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b Board) Height() int {
	return b.height
}

// Cell returns the cell at (x, y). Out-of-bounds coordinates read as empty.
func (b Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y][x]
}

// Cells returns a deep copy of the grid for snapshots.
func (b Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range out {
		out[y] = make([]Cell, b.width)
		copy(out[y], b.cells[y])
	}
	return out
}

// clone copies the grid so a mutation cannot alias the receiver.
func (b Board) clone() Board {
	return Board{width: b.width, height: b.height, cells: b.Cells()}
}

// IsValidPosition reports whether every cell of shape translated by pos is
// inside the board and unoccupied. Out-of-bounds is always invalid.
func (b Board) IsValidPosition(shape poly.Shape, pos poly.Coord) bool {
	for _, c := range shape {
		x, y := pos.X+c.X, pos.Y+c.Y
		if x < 0 || x >= b.width || y < 0 || y >= b.height {
			return false
		}
		if b.cells[y][x].Filled {
			return false
		}
	}
	return true
}

// Place writes a piece's cells onto a copy of the board. Cells that fall
// outside the board are skipped rather than crashing; valid play never
// produces them.
func (b Board) Place(shape poly.Shape, pos poly.Coord, piece int, color core.Color) Board {
	out := b.clone()
	for _, c := range shape {
		x, y := pos.X+c.X, pos.Y+c.Y
		if x < 0 || x >= b.width || y < 0 || y >= b.height {
			continue
		}
		out.cells[y][x] = Cell{Filled: true, Piece: piece, Color: color}
	}
	return out
}

// Remove clears a piece's cells on a copy of the board. Out-of-bounds cells
// are skipped.
func (b Board) Remove(shape poly.Shape, pos poly.Coord) Board {
	out := b.clone()
	for _, c := range shape {
		x, y := pos.X+c.X, pos.Y+c.Y
		if x < 0 || x >= b.width || y < 0 || y >= b.height {
			continue
		}
		out.cells[y][x] = Cell{}
	}
	return out
}

// FilledLines returns the indices of rows where every cell is occupied,
// top to bottom.
func (b Board) FilledLines() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		full := true
		for x := 0; x < b.width; x++ {
			if !b.cells[y][x].Filled {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes the listed rows, shifts everything above them down and
// returns the new board plus the score for the clear. Clearing zero rows
// returns the board unchanged with score 0.
func (b Board) ClearLines(rows []int) (Board, int) {
	if len(rows) == 0 {
		return b, 0
	}

	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	// Rebuild: one fresh empty row per cleared line on top, then every
	// surviving row in original order.
	cells := make([][]Cell, 0, b.height)
	for i := 0; i < len(rows); i++ {
		cells = append(cells, make([]Cell, b.width))
	}
	for y := 0; y < b.height; y++ {
		if cleared[y] {
			continue
		}
		row := make([]Cell, b.width)
		copy(row, b.cells[y])
		cells = append(cells, row)
	}

	out := Board{width: b.width, height: b.height, cells: cells}
	return out, LineScore(len(rows))
}
