// Package catalog turns raw polyomino shapes into playable piece definitions:
// spawn orientation, precomputed rotation states, bounding box, display color
// and spawn weight. Size 4 uses a hand-curated weighted table; every other
// size derives its catalog from the shape generator.
package catalog

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/poly"
)

// MinPieceSize and MaxPieceSize bound the playable piece sizes.
const (
	MinPieceSize = 1
	MaxPieceSize = 9
)

// maxCatalogSize caps derived catalogs. Larger shape sets (369 octominoes,
// 1285 nonominoes) are truncated by deterministic stride sampling so piece
// selection stays bounded and stable across runs.
const maxCatalogSize = 128

// Box describes a piece's bounding box in its spawn orientation.
type Box struct {
	W, H             int
	OffsetX, OffsetY int
}

// Definition is one playable piece.
type Definition struct {
	ID        int
	Name      string
	Cells     poly.Shape    // spawn orientation, normalized
	Rotations [4]poly.Shape // rotation states 0-3, clockwise
	Box       Box
	Color     core.Color
	Weight    int // spawn weight; 0 on every definition means uniform selection
}

// sizeNames maps piece sizes to their polyomino names.
var sizeNames = map[int]string{
	1: "monomino",
	2: "domino",
	3: "tromino",
	4: "tetromino",
	5: "pentomino",
	6: "hexomino",
	7: "heptomino",
	8: "octomino",
	9: "nonomino",
}

// SizeName returns the polyomino name for a piece size ("tetromino" for 4).
func SizeName(size int) string {
	if name, ok := sizeNames[size]; ok {
		return name
	}
	return fmt.Sprintf("%d-omino", size)
}

// Catalog produces and caches piece definitions per size.
type Catalog struct {
	mu   sync.Mutex
	gen  *poly.Generator
	defs map[int][]Definition
}

// New creates a catalog backed by the given shape generator.
func New(gen *poly.Generator) *Catalog {
	return &Catalog{
		gen:  gen,
		defs: make(map[int][]Definition),
	}
}

// Default is the process-wide catalog, sharing the default shape generator.
var Default = New(poly.Default)

// Definitions returns the piece definitions for the given size from the
// default catalog.
func Definitions(size int) ([]Definition, error) {
	return Default.Definitions(size)
}

// Definitions returns the piece definitions for the given size, building and
// caching them on first use.
func (c *Catalog) Definitions(size int) ([]Definition, error) {
	if size < MinPieceSize || size > MaxPieceSize {
		return nil, fmt.Errorf("catalog: unsupported piece size %d (want %d-%d)", size, MinPieceSize, MaxPieceSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if defs, ok := c.defs[size]; ok {
		return defs, nil
	}

	var defs []Definition
	if size == 4 {
		defs = curatedTetrominoes()
	} else {
		defs = c.derive(size)
	}

	c.defs[size] = defs
	return defs, nil
}

// Weighted reports whether any definition in the set carries a spawn weight.
func Weighted(defs []Definition) bool {
	for _, d := range defs {
		if d.Weight > 0 {
			return true
		}
	}
	return false
}

// derive builds definitions from generated shapes: deterministic ids, four
// rotation states, bounding box, palette color. No weights are attached, so
// selection falls back to uniform randomness.
func (c *Catalog) derive(size int) []Definition {
	shapes := c.gen.Generate(size)
	shapes = truncate(shapes)

	defs := make([]Definition, len(shapes))
	for i, s := range shapes {
		defs[i] = build(i, fmt.Sprintf("%s-%02d", SizeName(size), i+1), s, pieceColor(i), 0)
	}
	return defs
}

// truncate applies the performance limiter: evenly spaced stride sampling
// over canonical generation order, which is stable across runs.
func truncate(shapes []poly.Shape) []poly.Shape {
	if len(shapes) <= maxCatalogSize {
		return shapes
	}
	out := make([]poly.Shape, maxCatalogSize)
	for i := range out {
		out[i] = shapes[i*len(shapes)/maxCatalogSize]
	}
	return out
}

// build assembles one definition from a spawn shape.
func build(id int, name string, cells poly.Shape, color core.Color, weight int) Definition {
	spawn := cells.Normalize()
	w, h := spawn.Bounds()

	var rotations [4]poly.Shape
	rotations[0] = spawn
	for r := 1; r < 4; r++ {
		rotations[r] = poly.RotatePiece(rotations[r-1], true)
	}

	return Definition{
		ID:        id,
		Name:      name,
		Cells:     spawn,
		Rotations: rotations,
		Box:       Box{W: w, H: h},
		Color:     color,
		Weight:    weight,
	}
}

// palette holds the base piece colors; each row lists the bright, mid and dim
// variants of one hue within the ANSI 256 color cube. Derived catalogs larger
// than the palette cycle through hues first, then step down in brightness.
var palette = [...][3]core.Color{
	{51, 44, 37},    // cyan
	{196, 160, 124}, // red
	{46, 40, 34},    // green
	{226, 184, 142}, // yellow
	{39, 32, 25},    // blue
	{201, 164, 127}, // magenta
	{208, 172, 136}, // orange
	{129, 93, 57},   // purple
	{48, 42, 36},    // spring green
	{199, 163, 126}, // pink
}

// pieceColor returns the display color for the i-th derived piece. Purely a
// function of the index, so colors are stable across runs.
func pieceColor(i int) core.Color {
	hue := i % len(palette)
	shade := (i / len(palette)) % 3
	return palette[hue][shade]
}
