package engine

import (
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/poly"
)

// ActivePiece is the piece currently falling. It exists only while falling
// and is owned exclusively by the Engine; snapshots carry copies.
type ActivePiece struct {
	ID       int        // definition id
	Shape    poly.Shape // current rotation's cells, normalized
	X, Y     int        // board-space offset
	Rotation int        // rotation index 0-3
	Color    core.Color
}

// AbsoluteCells returns the piece's cells in board coordinates.
func (p ActivePiece) AbsoluteCells() poly.Shape {
	out := make(poly.Shape, len(p.Shape))
	for i, c := range p.Shape {
		out[i] = poly.Coord{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// Kick offset tables, tried in order. The ordering is a gameplay contract:
// "no kick" first, then horizontal kicks, then diagonal kicks, with left
// preferred for clockwise rotation and right for counter-clockwise so that
// kicked pieces drift against the spin direction.
var (
	kicksCW  = []poly.Coord{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	kicksCCW = []poly.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: -1}}
)

// ResolveRotation advances the piece to its next rotation state and finds
// the first collision-free placement from the kick table. states holds the
// piece's four precomputed rotation shapes, indexed by rotation. Returns the
// rotated piece, the index of the kick that succeeded, and whether any
// placement was found; on failure the piece is unchanged.
func ResolveRotation(b Board, p ActivePiece, states [4]poly.Shape, clockwise bool) (ActivePiece, int, bool) {
	kicks := kicksCW
	nextRotation := (p.Rotation + 1) % 4
	if !clockwise {
		kicks = kicksCCW
		nextRotation = (p.Rotation + 3) % 4
	}
	rotated := states[nextRotation]

	for i, off := range kicks {
		pos := poly.Coord{X: p.X + off.X, Y: p.Y + off.Y}
		if b.IsValidPosition(rotated, pos) {
			p.Shape = rotated.Clone()
			p.X = pos.X
			p.Y = pos.Y
			p.Rotation = nextRotation
			return p, i, true
		}
	}
	return p, -1, false
}
