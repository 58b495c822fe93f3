package engine

import "math"

// Scoring and leveling are pure functions of line counts; the engine carries
// no hidden scoring state.

// Points awarded per cell dropped.
const (
	SoftDropPoints = 1
	HardDropPoints = 2
)

// MaxLevel caps progression; drop speed stops scaling well before this.
const MaxLevel = 99

// LineScore returns the points for clearing n lines at once:
// 1 -> 100, 2 -> 300, 3 -> 500, 4 -> 800, then +200 per extra line.
// Larger pieces can clear more than four lines in one lock.
func LineScore(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 100
	case n == 2:
		return 300
	case n == 3:
		return 500
	case n == 4:
		return 800
	default:
		return 1000 + (n-4)*200
	}
}

// LevelForLines returns the level reached after clearing totalLines lines:
// one level per five lines, capped at MaxLevel.
func LevelForLines(totalLines int) int {
	level := totalLines/5 + 1
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// DropInterval returns the automatic-drop interval in ms for a level.
// Starts at 400ms, shrinks 20% per level, stops scaling at level 30 and
// never goes below 50ms.
func DropInterval(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 30 {
		level = 30
	}
	interval := math.Round(400 * math.Pow(0.80, float64(level-1)))
	if interval < 50 {
		interval = 50
	}
	return interval
}
