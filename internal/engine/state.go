package engine

import "time"

// Status is the lifecycle state of a game.
type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Stats holds the cumulative counters for one game.
type Stats struct {
	Score  int
	Level  int
	Lines  int
	Pieces int // pieces locked into the board

	Moves         int
	Rotations     int
	Holds         int
	SoftDropCells int
	HardDropCells int
	HardDrops     int

	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the elapsed play time, using the current time while the
// game is still running.
func (s Stats) Duration() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := s.EndedAt
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.StartedAt)
}

// Snapshot is a read-only view of the whole game, rebuilt on every query.
// Nothing in it aliases engine-internal state.
type Snapshot struct {
	Status Status
	Width  int
	Height int
	Cells  [][]Cell

	Active *ActivePiece // nil when no piece is falling
	Ghost  *ActivePiece // projected resting position; nil without an active piece
	HeldID int          // held piece definition id, -1 when empty
	Queue  []int        // upcoming piece definition ids, next first

	Stats Stats
}
