package poly

import "sync"

// Generator enumerates all distinct free polyominoes of a given size.
// Results are memoized per size: the enumeration is exponential in the size
// and must never be repeated for the same input. A Generator is safe for
// concurrent use; the cache is written once per size and read-only after.
type Generator struct {
	mu    sync.Mutex
	cache map[int][]Shape
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{cache: make(map[int][]Shape)}
}

// Default is the process-wide shared generator. Sharing is safe because
// generation for a given size is deterministic and side-effect free.
var Default = NewGenerator()

// Generate returns every distinct free polyomino with exactly size cells,
// each in canonical form, in a deterministic order. Sizes below 1 yield nil.
func Generate(size int) []Shape {
	return Default.Generate(size)
}

// Generate returns every distinct free polyomino of the given size.
func (g *Generator) Generate(size int) []Shape {
	if size <= 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateLocked(size)
}

// Count returns the number of distinct free polyominoes of the given size.
func (g *Generator) Count(size int) int {
	return len(g.Generate(size))
}

func (g *Generator) generateLocked(size int) []Shape {
	if shapes, ok := g.cache[size]; ok {
		return shapes
	}

	var shapes []Shape
	switch size {
	case 1:
		shapes = []Shape{{{X: 0, Y: 0}}}
	case 2:
		shapes = []Shape{{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	default:
		// Grow each (size-1)-omino by one cell in every possible direction,
		// dropping duplicates via canonical-form keys. A shape reachable from
		// several parents is kept exactly once.
		seen := make(map[string]struct{})
		for _, parent := range g.generateLocked(size - 1) {
			for _, cand := range expansionCandidates(parent) {
				grown := append(parent.Clone(), cand)
				canon := grown.Canonical()
				key := canon.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				shapes = append(shapes, canon)
			}
		}
	}

	g.cache[size] = shapes
	return shapes
}

// expansionCandidates returns every empty cell edge-adjacent to the shape,
// in a deterministic order and without duplicates.
func expansionCandidates(s Shape) []Coord {
	seen := make(map[Coord]struct{})
	var out []Coord
	for _, c := range s {
		for _, n := range [4]Coord{
			{X: c.X + 1, Y: c.Y},
			{X: c.X - 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1},
			{X: c.X, Y: c.Y - 1},
		} {
			if s.Contains(n) {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
