// Package poly implements free-polyomino geometry: shapes as coordinate sets,
// the symmetry transforms over them, canonical forms for deduplication, and
// the enumeration of every distinct free polyomino of a given size.
package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Coord is a single cell offset within a shape.
type Coord struct {
	X, Y int
}

// Shape is a set of cell offsets describing one polyomino.
// A well-formed shape is 4-connected and contains no duplicate cells.
type Shape []Coord

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Contains reports whether the shape occupies the given cell.
func (s Shape) Contains(c Coord) bool {
	for _, cell := range s {
		if cell == c {
			return true
		}
	}
	return false
}

// Bounds returns the width and height of the shape's bounding box.
func (s Shape) Bounds() (w, h int) {
	if len(s) == 0 {
		return 0, 0
	}
	minX, minY := s[0].X, s[0].Y
	maxX, maxY := s[0].X, s[0].Y
	for _, c := range s[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return maxX - minX + 1, maxY - minY + 1
}

// Normalize translates the shape so its minimum x and y are zero and sorts
// the cells into a stable order. The receiver is not modified.
func (s Shape) Normalize() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	minX, minY := s[0].X, s[0].Y
	for _, c := range s[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Coord{X: c.X - minX, Y: c.Y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Key serializes a normalized shape as a stable string, suitable for use as
// a set/map key. Different shapes always produce different keys.
func (s Shape) Key() string {
	n := s.Normalize()
	var sb strings.Builder
	for i, c := range n {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(c.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.Y))
	}
	return sb.String()
}

// Equal reports whether two shapes cover the same cells after normalization.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	a, b := s.Normalize(), other.Normalize()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rotateGrid rotates every cell 90 degrees clockwise about the origin.
// Used for canonical-form computation where the pivot is irrelevant.
func (s Shape) rotateGrid() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Coord{X: c.Y, Y: -c.X}
	}
	return out
}

// mirror flips the shape horizontally.
func (s Shape) mirror() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Coord{X: -c.X, Y: c.Y}
	}
	return out
}

// Canonical returns the canonical form of the shape: the lexicographically
// smallest serialization among all 8 symmetric transforms (4 rotations, each
// with and without a horizontal mirror). Two shapes describe the same free
// polyomino iff their canonical forms are equal.
func (s Shape) Canonical() Shape {
	if len(s) == 0 {
		return Shape{}
	}

	best := s.Normalize()
	bestKey := best.Key()

	cur := s
	for rot := 0; rot < 4; rot++ {
		for _, variant := range []Shape{cur, cur.mirror()} {
			norm := variant.Normalize()
			if key := norm.Key(); key < bestKey {
				best = norm
				bestKey = key
			}
		}
		cur = cur.rotateGrid()
	}
	return best
}

// RotatePiece rotates a shape 90 degrees about its centroid (rounded to the
// nearest cell) and renormalizes the result. This is the gameplay rotation:
// pieces spin roughly in place instead of orbiting the bounding-box origin.
func RotatePiece(s Shape, clockwise bool) Shape {
	if len(s) == 0 {
		return Shape{}
	}

	n := s.Normalize()
	var sumX, sumY int
	for _, c := range n {
		sumX += c.X
		sumY += c.Y
	}
	cx := roundDiv(sumX, len(n))
	cy := roundDiv(sumY, len(n))

	out := make(Shape, len(n))
	for i, c := range n {
		dx, dy := c.X-cx, c.Y-cy
		if clockwise {
			out[i] = Coord{X: cx + dy, Y: cy - dx}
		} else {
			out[i] = Coord{X: cx - dy, Y: cy + dx}
		}
	}
	return out.Normalize()
}

// roundDiv divides sum by n rounding half away from zero.
func roundDiv(sum, n int) int {
	if sum >= 0 {
		return (2*sum + n) / (2 * n)
	}
	return -((-2*sum + n) / (2 * n))
}
