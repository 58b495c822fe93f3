package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/poly"
)

// Config controls a game. Zero fields take defaults.
type Config struct {
	Width       int     // board width in cells (default 10)
	Height      int     // board height in cells (default 20)
	PieceSize   int     // polyomino size, used when Defs is nil (default 4)
	LockDelayMs float64 // grace period for a grounded piece (default 500)
	QueueLength int     // next-piece preview length (default 3)
	StartLevel  int     // level floor at game start (default 1)
	Seed        int64   // RNG seed; 0 means time-based

	// Defs overrides the piece catalog, mainly for tests. When nil the
	// catalog for PieceSize is used.
	Defs []catalog.Definition
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 10
	}
	if c.Height <= 0 {
		c.Height = 20
	}
	if c.PieceSize <= 0 {
		c.PieceSize = 4
	}
	if c.LockDelayMs <= 0 {
		c.LockDelayMs = 500
	}
	if c.QueueLength <= 0 {
		c.QueueLength = 3
	}
	if c.StartLevel <= 0 {
		c.StartLevel = 1
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Engine is the game manager: the only stateful, mutable component. It owns
// the board, the active piece, the bag, and all timing. It is not safe for
// concurrent use and must not be called reentrantly from its own callbacks;
// exactly one external scheduler should drive Update.
type Engine struct {
	cfg       Config
	defs      []catalog.Definition
	callbacks Callbacks
	rng       *rand.Rand

	status    Status
	board     Board
	bag       Bag
	active    ActivePiece
	hasActive bool
	heldID    int
	canHold   bool
	queue     []int
	lock      LockDelay
	stats     Stats

	// clock is simulation time in ms, fed only by Update deltas, so equal
	// delta sequences replay identically regardless of wall time.
	clock     float64
	dropTimer float64
	moved     bool // successful move/rotation since the previous tick

	ghost      ActivePiece
	ghostValid bool
	ghostKey   ghostKey
}

// ghostKey memoizes the ghost projection: the resting position only changes
// when the piece, its rotation or its column change.
type ghostKey struct {
	id       int
	rotation int
	x        int
}

// New creates an engine in the ready state. It fails if the piece catalog is
// empty or cannot be built.
func New(cfg Config, callbacks Callbacks) (*Engine, error) {
	cfg = cfg.withDefaults()

	defs := cfg.Defs
	if defs == nil {
		var err error
		defs, err = catalog.Definitions(cfg.PieceSize)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}

	bag, err := NewBag(defs)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		defs:      defs,
		callbacks: callbacks,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		status:    StatusReady,
		board:     NewBoard(cfg.Width, cfg.Height),
		bag:       bag,
		heldID:    -1,
	}, nil
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Start begins a new game: all owned state is rebuilt and the first piece
// spawns. Calling Start mid-game restarts.
func (e *Engine) Start() {
	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	e.bag, _ = NewBag(e.defs)
	e.queue = nil
	e.heldID = -1
	e.canHold = true
	e.hasActive = false
	e.lock = LockDelay{}
	e.clock = 0
	e.dropTimer = 0
	e.moved = false
	e.ghostValid = false
	e.stats = Stats{Level: e.cfg.StartLevel, StartedAt: time.Now()}

	e.status = StatusPlaying
	e.callbacks.gameStart()
	e.fillQueue()
	e.spawn()
}

// Restart discards the current game and starts a fresh one.
func (e *Engine) Restart() {
	e.Start()
}

// Pause suspends a running game.
func (e *Engine) Pause() {
	if e.status != StatusPlaying {
		return
	}
	e.status = StatusPaused
	e.callbacks.pause()
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusPlaying
	e.callbacks.resume()
}

// End terminates the game. Ending an already-finished or never-started game
// is a no-op.
func (e *Engine) End() {
	if e.status != StatusPlaying && e.status != StatusPaused {
		return
	}
	e.gameOver()
}

// ProcessInput dispatches one player action. Apart from pause handling it is
// a no-op unless the game is playing. Invalid moves fail silently: the piece
// simply does not move and no stats or callbacks fire.
func (e *Engine) ProcessInput(action core.Action) {
	if action == core.ActionPause {
		switch e.status {
		case StatusPlaying:
			e.Pause()
		case StatusPaused:
			e.Resume()
		}
		return
	}

	if e.status != StatusPlaying || !e.hasActive {
		return
	}

	switch action {
	case core.ActionMoveLeft:
		e.move(-1, 0)
	case core.ActionMoveRight:
		e.move(1, 0)
	case core.ActionSoftDrop:
		e.softDrop()
	case core.ActionHardDrop:
		e.hardDrop()
	case core.ActionRotateCW:
		e.rotate(true)
	case core.ActionRotateCCW:
		e.rotate(false)
	case core.ActionHold:
		e.hold()
	}
}

// Update advances the simulation by deltaMs of caller time. The engine never
// waits on its own; exactly one fixed-timestep scheduler should call this.
func (e *Engine) Update(deltaMs float64) {
	if e.status != StatusPlaying || deltaMs < 0 {
		return
	}

	e.clock += deltaMs
	e.dropTimer += deltaMs

	interval := DropInterval(e.stats.Level)
	for e.dropTimer >= interval && e.hasActive {
		e.dropTimer -= interval
		// Gravity: does not count as a player move for lock-delay resets.
		if e.board.IsValidPosition(e.active.Shape, poly.Coord{X: e.active.X, Y: e.active.Y + 1}) {
			e.active.Y++
		}
	}

	if !e.hasActive {
		return
	}

	grounded := !e.board.IsValidPosition(e.active.Shape, poly.Coord{X: e.active.X, Y: e.active.Y + 1})
	e.lock = e.lock.Update(grounded, e.moved, e.clock)
	e.moved = false

	if e.lock.ShouldLock(e.cfg.LockDelayMs) {
		e.lockActive()
	}
}

// move shifts the active piece, returning whether it succeeded.
func (e *Engine) move(dx, dy int) bool {
	pos := poly.Coord{X: e.active.X + dx, Y: e.active.Y + dy}
	if !e.board.IsValidPosition(e.active.Shape, pos) {
		return false
	}
	e.active.X = pos.X
	e.active.Y = pos.Y
	e.moved = true
	e.stats.Moves++
	e.callbacks.pieceMove()
	return true
}

func (e *Engine) softDrop() {
	if e.move(0, 1) {
		e.stats.SoftDropCells++
		e.stats.Score += SoftDropPoints
	}
}

func (e *Engine) hardDrop() {
	distance := 0
	for e.board.IsValidPosition(e.active.Shape, poly.Coord{X: e.active.X, Y: e.active.Y + 1}) {
		e.active.Y++
		distance++
	}
	e.stats.HardDrops++
	e.stats.HardDropCells += distance
	e.stats.Score += HardDropPoints * distance
	e.lockActive()
}

func (e *Engine) rotate(clockwise bool) {
	rotated, _, ok := ResolveRotation(e.board, e.active, e.defs[e.active.ID].Rotations, clockwise)
	if !ok {
		return
	}
	e.active = rotated
	e.moved = true
	e.stats.Rotations++
	e.callbacks.pieceRotate()
}

// hold stashes the active piece, swapping with the previously held one.
// Allowed once per spawn.
func (e *Engine) hold() {
	if !e.canHold {
		return
	}

	previous := e.heldID
	e.heldID = e.active.ID
	e.stats.Holds++
	e.callbacks.hold()

	if previous < 0 {
		e.spawn()
	} else {
		e.spawnPiece(previous)
	}
	e.canHold = false
}

// lockActive writes the active piece into the board, resolves line clears,
// and spawns the next piece.
func (e *Engine) lockActive() {
	e.board = e.board.Place(e.active.Shape, poly.Coord{X: e.active.X, Y: e.active.Y}, e.active.ID, e.active.Color)
	e.hasActive = false
	e.ghostValid = false
	e.stats.Pieces++
	e.callbacks.piecePlace()

	if rows := e.board.FilledLines(); len(rows) > 0 {
		var score int
		e.board, score = e.board.ClearLines(rows)
		e.stats.Lines += len(rows)
		e.stats.Score += score
		e.callbacks.lineClear(rows)

		level := LevelForLines(e.stats.Lines)
		if level < e.cfg.StartLevel {
			level = e.cfg.StartLevel
		}
		if level > e.stats.Level {
			e.stats.Level = level
			e.callbacks.levelUp(level)
		}
	}

	if e.status == StatusPlaying {
		e.spawn()
	}
}

// spawn takes the next piece from the queue and spawns it.
func (e *Engine) spawn() {
	id := e.queue[0]
	e.queue = e.queue[1:]
	e.fillQueue()
	e.canHold = true
	e.spawnPiece(id)
}

// spawnPiece places a fresh piece at the top center of the board. A spawn
// position that collides with existing content ends the game.
func (e *Engine) spawnPiece(id int) {
	def := e.defs[id]
	e.active = ActivePiece{
		ID:    def.ID,
		Shape: def.Cells.Clone(),
		X:     (e.board.Width() - def.Box.W) / 2,
		Y:     0,
		Color: def.Color,
	}
	e.hasActive = true
	e.lock = LockDelay{}
	e.dropTimer = 0
	e.moved = false
	e.ghostValid = false

	if !e.board.IsValidPosition(e.active.Shape, poly.Coord{X: e.active.X, Y: e.active.Y}) {
		e.gameOver()
	}
}

// fillQueue tops the next-piece queue up from the bag.
func (e *Engine) fillQueue() {
	for len(e.queue) < e.cfg.QueueLength {
		id, bag, err := e.bag.Next(e.rng)
		if err != nil {
			return
		}
		e.bag = bag
		e.queue = append(e.queue, id)
	}
}

func (e *Engine) gameOver() {
	e.status = StatusGameOver
	e.hasActive = false
	e.ghostValid = false
	e.stats.EndedAt = time.Now()
	e.callbacks.gameEnd()
}

// computeGhost projects the active piece straight down to its resting
// position, memoized against piece, rotation and column.
func (e *Engine) computeGhost() ActivePiece {
	key := ghostKey{id: e.active.ID, rotation: e.active.Rotation, x: e.active.X}
	if e.ghostValid && key == e.ghostKey {
		return e.ghost
	}

	ghost := e.active
	for e.board.IsValidPosition(ghost.Shape, poly.Coord{X: ghost.X, Y: ghost.Y + 1}) {
		ghost.Y++
	}
	e.ghost = ghost
	e.ghostKey = key
	e.ghostValid = true
	return ghost
}

// Snapshot builds a fresh read-only view of the game. Safe to call in any
// state, including before Start.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status: e.status,
		Width:  e.board.Width(),
		Height: e.board.Height(),
		Cells:  e.board.Cells(),
		HeldID: e.heldID,
		Queue:  append([]int(nil), e.queue...),
		Stats:  e.stats,
	}

	if e.hasActive {
		active := e.active
		active.Shape = e.active.Shape.Clone()
		snap.Active = &active

		ghost := e.computeGhost()
		ghost.Shape = ghost.Shape.Clone()
		snap.Ghost = &ghost
	}
	return snap
}

// Definition returns the catalog definition for a piece id, used by
// renderers for previews of queued and held pieces.
func (e *Engine) Definition(id int) (catalog.Definition, bool) {
	if id < 0 || id >= len(e.defs) {
		return catalog.Definition{}, false
	}
	return e.defs[id], true
}
