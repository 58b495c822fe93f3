package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/core"
)

// monoConfig is a one-cell catalog on a tiny board, which makes line clears
// and game-over sequences exact.
func monoConfig(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,
		Seed:   1,
		Defs:   bagDefs(0),
	}
}

func TestNewEmptyCatalog(t *testing.T) {
	_, err := New(Config{Defs: []catalog.Definition{}}, Callbacks{})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestNewDefaultCatalog(t *testing.T) {
	e, err := New(Config{Seed: 1}, Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	if e.Status() != StatusReady {
		t.Fatalf("status = %v, want ready", e.Status())
	}
	snap := e.Snapshot()
	if snap.Width != 10 || snap.Height != 20 {
		t.Fatalf("default board = %dx%d, want 10x20", snap.Width, snap.Height)
	}
	if snap.Active != nil || snap.Ghost != nil {
		t.Fatal("active piece before Start")
	}
	if snap.HeldID != -1 {
		t.Fatalf("HeldID = %d, want -1", snap.HeldID)
	}
}

func TestLifecycleCallbacks(t *testing.T) {
	var starts, ends, pauses, resumes int
	e, err := New(monoConfig(4, 6), Callbacks{
		OnGameStart: func() { starts++ },
		OnGameEnd:   func() { ends++ },
		OnPause:     func() { pauses++ },
		OnResume:    func() { resumes++ },
	})
	if err != nil {
		t.Fatal(err)
	}

	e.Start()
	if e.Status() != StatusPlaying || starts != 1 {
		t.Fatalf("after Start: status=%v starts=%d", e.Status(), starts)
	}

	e.ProcessInput(core.ActionPause)
	if e.Status() != StatusPaused || pauses != 1 {
		t.Fatalf("after pause: status=%v pauses=%d", e.Status(), pauses)
	}
	e.ProcessInput(core.ActionPause)
	if e.Status() != StatusPlaying || resumes != 1 {
		t.Fatalf("after resume: status=%v resumes=%d", e.Status(), resumes)
	}

	e.End()
	e.End()
	if e.Status() != StatusGameOver || ends != 1 {
		t.Fatalf("after End: status=%v ends=%d", e.Status(), ends)
	}
}

func TestHardDropClearsLine(t *testing.T) {
	var clears [][]int
	e, err := New(monoConfig(1, 3), Callbacks{
		OnLineClear: func(rows []int) { clears = append(clears, append([]int(nil), rows...)) },
	})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	// Board is one cell wide: the dropped piece fills the bottom row.
	e.ProcessInput(core.ActionHardDrop)

	if len(clears) != 1 || len(clears[0]) != 1 || clears[0][0] != 2 {
		t.Fatalf("line clears = %v, want [[2]]", clears)
	}
	snap := e.Snapshot()
	if snap.Stats.Lines != 1 || snap.Stats.Pieces != 1 {
		t.Fatalf("stats = %+v", snap.Stats)
	}
	// Two cells of hard drop plus a single-line clear.
	want := 2*HardDropPoints + LineScore(1)
	if snap.Stats.Score != want {
		t.Fatalf("score = %d, want %d", snap.Stats.Score, want)
	}
	if snap.Cells[2][0].Filled {
		t.Fatal("bottom row still filled after clear")
	}
	if snap.Active == nil {
		t.Fatal("no piece spawned after the clear")
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	var ends int
	e, err := New(monoConfig(2, 2), Callbacks{
		OnGameEnd: func() { ends++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	// Column 0 fills in two drops; the third spawn has nowhere to go.
	e.ProcessInput(core.ActionHardDrop)
	e.ProcessInput(core.ActionHardDrop)

	if e.Status() != StatusGameOver {
		t.Fatalf("status = %v, want gameover", e.Status())
	}
	if ends != 1 {
		t.Fatalf("OnGameEnd fired %d times, want 1", ends)
	}
	snap := e.Snapshot()
	if snap.Active != nil {
		t.Fatal("active piece after game over")
	}
	if snap.Stats.EndedAt.IsZero() {
		t.Fatal("EndedAt not recorded")
	}

	// Input after game over is ignored.
	e.ProcessInput(core.ActionHardDrop)
	if got := e.Snapshot().Stats.Pieces; got != 2 {
		t.Fatalf("pieces = %d, want 2", got)
	}
}

func TestEndMidFallDropsActivePiece(t *testing.T) {
	e, err := New(monoConfig(4, 6), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	if snap := e.Snapshot(); snap.Active == nil {
		t.Fatal("no active piece after start")
	}

	e.End()

	snap := e.Snapshot()
	if snap.Status != StatusGameOver {
		t.Fatalf("status = %v, want gameover", snap.Status)
	}
	if snap.Active != nil {
		t.Fatalf("active piece after End: %+v", snap.Active)
	}
	if snap.Ghost != nil {
		t.Fatal("ghost piece after End")
	}
}

func TestGravityLocksAfterDelay(t *testing.T) {
	cfg := monoConfig(3, 2)
	cfg.LockDelayMs = 500
	e, err := New(cfg, Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	e.Update(400) // gravity step to the floor, delay arms
	if got := e.Snapshot().Stats.Pieces; got != 0 {
		t.Fatalf("piece locked during the grace period (pieces=%d)", got)
	}
	e.Update(500) // delay expires
	if got := e.Snapshot().Stats.Pieces; got != 1 {
		t.Fatalf("pieces = %d, want 1 after the delay", got)
	}
}

func TestMovesResetLockDelayUpToCap(t *testing.T) {
	cfg := monoConfig(3, 2)
	cfg.LockDelayMs = 500
	e, err := New(cfg, Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	e.Update(400) // ground the piece

	// Wiggling resets the delay each tick, but only MaxLockResets times;
	// the timer never comes close to 500ms yet the piece still locks.
	for i := 0; i < MaxLockResets+1; i++ {
		if i%2 == 0 {
			e.ProcessInput(core.ActionMoveLeft)
		} else {
			e.ProcessInput(core.ActionMoveRight)
		}
		e.Update(10)
	}

	if got := e.Snapshot().Stats.Pieces; got != 1 {
		t.Fatalf("pieces = %d, want 1 after the reset budget ran out", got)
	}
}

func TestSoftDrop(t *testing.T) {
	e, err := New(monoConfig(4, 8), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	before := e.Snapshot().Active.Y

	e.ProcessInput(core.ActionSoftDrop)

	snap := e.Snapshot()
	if snap.Active.Y != before+1 {
		t.Fatalf("Y = %d, want %d", snap.Active.Y, before+1)
	}
	if snap.Stats.Score != SoftDropPoints || snap.Stats.SoftDropCells != 1 {
		t.Fatalf("stats = %+v", snap.Stats)
	}
}

func TestHoldOncePerSpawn(t *testing.T) {
	cfg := Config{Width: 8, Height: 10, Seed: 5, Defs: bagDefs(0, 0)}
	var holds int
	e, err := New(cfg, Callbacks{OnHold: func() { holds++ }})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	first := e.Snapshot().Active.ID
	e.ProcessInput(core.ActionHold)
	snap := e.Snapshot()
	if snap.HeldID != first {
		t.Fatalf("HeldID = %d, want %d", snap.HeldID, first)
	}
	if snap.Active == nil {
		t.Fatal("no replacement piece after hold")
	}

	// A second hold before locking is refused.
	e.ProcessInput(core.ActionHold)
	if holds != 1 {
		t.Fatalf("holds = %d, want 1", holds)
	}

	// After the piece locks, holding swaps the stashed piece back in.
	e.ProcessInput(core.ActionHardDrop)
	e.ProcessInput(core.ActionHold)
	snap = e.Snapshot()
	if snap.Active.ID != first {
		t.Fatalf("swapped-in piece = %d, want %d", snap.Active.ID, first)
	}
	if holds != 2 {
		t.Fatalf("holds = %d, want 2", holds)
	}
}

func TestQueueLength(t *testing.T) {
	cfg := monoConfig(4, 8)
	cfg.QueueLength = 5
	e, err := New(cfg, Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	if got := len(e.Snapshot().Queue); got != 5 {
		t.Fatalf("queue length = %d, want 5", got)
	}
	e.ProcessInput(core.ActionHardDrop)
	if got := len(e.Snapshot().Queue); got != 5 {
		t.Fatalf("queue length after lock = %d, want 5", got)
	}
}

func TestGhostProjection(t *testing.T) {
	e, err := New(monoConfig(5, 12), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	snap := e.Snapshot()
	if snap.Ghost == nil {
		t.Fatal("no ghost for the active piece")
	}
	if snap.Ghost.Y != 11 || snap.Ghost.X != snap.Active.X {
		t.Fatalf("ghost at (%d,%d), want (%d,11)", snap.Ghost.X, snap.Ghost.Y, snap.Active.X)
	}

	e.ProcessInput(core.ActionMoveLeft)
	snap = e.Snapshot()
	if snap.Ghost.X != snap.Active.X {
		t.Fatalf("ghost column %d did not follow piece column %d", snap.Ghost.X, snap.Active.X)
	}
}

func TestPausedUpdateIsFrozen(t *testing.T) {
	e, err := New(monoConfig(4, 8), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	before := e.Snapshot()

	e.ProcessInput(core.ActionPause)
	e.Update(10000)
	e.ProcessInput(core.ActionMoveLeft)

	after := e.Snapshot()
	if after.Active.X != before.Active.X || after.Active.Y != before.Active.Y {
		t.Fatalf("piece moved while paused: %+v -> %+v", before.Active, after.Active)
	}
	if after.Stats.Pieces != 0 {
		t.Fatal("piece locked while paused")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	e, err := New(monoConfig(4, 8), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()

	snap := e.Snapshot()
	snap.Cells[0][0] = Cell{Filled: true}
	snap.Active.X = 99
	if len(snap.Queue) > 0 {
		snap.Queue[0] = 99
	}

	fresh := e.Snapshot()
	if fresh.Cells[0][0].Filled {
		t.Fatal("snapshot cells alias the board")
	}
	if fresh.Active.X == 99 {
		t.Fatal("snapshot active piece aliases the engine")
	}
	if len(fresh.Queue) > 0 && fresh.Queue[0] == 99 {
		t.Fatal("snapshot queue aliases the engine")
	}
}

func TestStartLevelFloor(t *testing.T) {
	cfg := monoConfig(4, 8)
	cfg.StartLevel = 5
	e, err := New(cfg, Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	if got := e.Snapshot().Stats.Level; got != 5 {
		t.Fatalf("level = %d, want 5", got)
	}
}

func TestRestartResetsState(t *testing.T) {
	e, err := New(monoConfig(1, 3), Callbacks{})
	if err != nil {
		t.Fatal(err)
	}
	e.Start()
	e.ProcessInput(core.ActionHardDrop)
	if e.Snapshot().Stats.Score == 0 {
		t.Fatal("setup failed: no score accumulated")
	}

	e.Restart()
	snap := e.Snapshot()
	if snap.Stats.Score != 0 || snap.Stats.Pieces != 0 || snap.Stats.Lines != 0 {
		t.Fatalf("stats after restart = %+v", snap.Stats)
	}
	if e.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", e.Status())
	}
	for y := range snap.Cells {
		for x := range snap.Cells[y] {
			if snap.Cells[y][x].Filled {
				t.Fatalf("cell (%d,%d) survived restart", x, y)
			}
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []int {
		cfg := Config{Width: 6, Height: 12, Seed: 99, Defs: bagDefs(3, 5, 2)}
		e, err := New(cfg, Callbacks{})
		if err != nil {
			t.Fatal(err)
		}
		e.Start()
		var ids []int
		for i := 0; i < 10; i++ {
			ids = append(ids, e.Snapshot().Active.ID)
			e.ProcessInput(core.ActionHardDrop)
			e.Update(16)
		}
		return ids
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverged at piece %d: %d vs %d", i, a[i], b[i])
		}
	}
}
