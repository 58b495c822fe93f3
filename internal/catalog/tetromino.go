package catalog

import (
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/poly"
)

// curatedTetrominoes returns the classic seven pieces with hand-tuned spawn
// weights. The straight piece is weighted higher than the rest: it is the
// only way to clear four lines at once and starving it makes play miserable.
func curatedTetrominoes() []Definition {
	specs := []struct {
		name   string
		cells  poly.Shape
		color  core.Color
		weight int
	}{
		{
			name:   "I",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
			color:  core.ColorCyan,
			weight: 14,
		},
		{
			name:   "O",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
			color:  core.ColorYellow,
			weight: 10,
		},
		{
			name:   "T",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
			color:  core.ColorPurple,
			weight: 10,
		},
		{
			name:   "S",
			cells:  poly.Shape{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
			color:  core.ColorGreen,
			weight: 8,
		},
		{
			name:   "Z",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
			color:  core.ColorRed,
			weight: 8,
		},
		{
			name:   "L",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}},
			color:  core.ColorOrange,
			weight: 10,
		},
		{
			name:   "J",
			cells:  poly.Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
			color:  core.ColorBlue,
			weight: 10,
		},
	}

	defs := make([]Definition, len(specs))
	for i, s := range specs {
		defs[i] = build(i, s.name, s.cells, s.color, s.weight)
	}
	return defs
}
