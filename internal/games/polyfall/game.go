// Package polyfall adapts the falling-piece engine to the platform's
// fixed-tick game interface. All rules live in the engine; this package only
// translates input frames, drives the clock and renders.
package polyfall

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/config"
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/engine"
	"github.com/vovakirdan/polyfall/internal/registry"
)

// noticeTicks is how long HUD notices (line clears, level ups) stay visible.
const noticeTicks = 90

// Game wraps one engine instance behind the registry.Game interface.
type Game struct {
	pieceSize int // variant default
	runSize   int // size of the current run, after overrides
	eng       *engine.Engine
	err       error

	screenW int
	screenH int
	tickMs  float64

	tooSmall bool

	holdEnabled  bool
	ghostEnabled bool

	notice      string
	noticeTicks int
}

// Package-level variables set by menus and CLI flags before Reset.
var (
	selectedPieceSize  int
	selectedStartLevel int
	selectedLockDelay  float64
	selectedConfigPath string
	selectedPreset     string
)

// SetPieceSize overrides the variant's polyomino size for the next Reset.
// 0 keeps the variant default.
func SetPieceSize(size int) {
	selectedPieceSize = size
}

// SetStartLevel sets the starting level. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLockDelayMs overrides the lock delay for the next Reset. 0 keeps the
// default.
func SetLockDelayMs(ms float64) {
	selectedLockDelay = ms
}

// SetConfigPath sets a custom YAML config path, used on the next Reset.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset name ("easy", "normal",
// "hard"). Unknown names keep the config file's preset.
func SetDifficultyPreset(name string) {
	selectedPreset = name
}

// New creates a game over polyominoes of the given size.
func New(pieceSize int) *Game {
	return &Game{pieceSize: pieceSize}
}

func init() {
	registry.Register("polyfall", func() registry.Game {
		return New(4)
	})
	registry.Register("polyfall_penta", func() registry.Game {
		return New(5)
	})
	registry.Register("polyfall_hexa", func() registry.Game {
		return New(6)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	switch g.pieceSize {
	case 5:
		return "polyfall_penta"
	case 6:
		return "polyfall_hexa"
	default:
		return "polyfall"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	name := catalog.SizeName(g.pieceSize)
	if g.pieceSize == 4 {
		return "Polyfall"
	}
	return fmt.Sprintf("Polyfall (%s)", name)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickMs = 1000.0 / float64(tickRate)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fileCfg, cfgErr := config.Load(selectedConfigPath)
	if cfgErr != nil {
		g.err = cfgErr
		return
	}
	if config.ValidPreset(selectedPreset) {
		config.ApplyPreset(&fileCfg, config.DifficultyPreset(selectedPreset))
	}
	// Load has already filled omitted toggles from the defaults.
	g.holdEnabled = *fileCfg.Pieces.HoldEnabled
	g.ghostEnabled = *fileCfg.Pieces.GhostEnabled

	size := g.pieceSize
	if selectedPieceSize > 0 {
		size = selectedPieceSize
		selectedPieceSize = 0
	}
	g.runSize = size

	startLevel := fileCfg.Difficulty.StartLevel
	if selectedStartLevel > 0 {
		startLevel = selectedStartLevel
	}
	lockDelay := fileCfg.Timing.LockDelayMs
	if selectedLockDelay > 0 {
		lockDelay = selectedLockDelay
	}

	econf := engine.Config{
		Width:       fileCfg.Board.Width,
		Height:      fileCfg.Board.Height,
		PieceSize:   size,
		QueueLength: fileCfg.Pieces.QueueLength,
		StartLevel:  startLevel,
		LockDelayMs: lockDelay,
		Seed:        seed,
	}
	selectedStartLevel = 0
	selectedLockDelay = 0

	g.notice = ""
	g.noticeTicks = 0

	g.eng, g.err = engine.New(econf, engine.Callbacks{
		OnLineClear: func(rows []int) { g.setNotice(clearName(len(rows))) },
		OnLevelUp:   func(level int) { g.setNotice(fmt.Sprintf("LEVEL %d", level)) },
	})
	if g.err != nil {
		return
	}

	g.checkSize()
	g.eng.Start()
}

func (g *Game) setNotice(text string) {
	g.notice = text
	g.noticeTicks = noticeTicks
}

// clearName returns the flash text for an n-line clear.
func clearName(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "QUAD"
	default:
		return fmt.Sprintf("%d LINES!", n)
	}
}

// checkSize verifies the screen fits the board plus the side panel.
func (g *Game) checkSize() {
	snap := g.eng.Snapshot()
	requiredW := snap.Width*2 + 2 + sidePanelWidth
	requiredH := snap.Height + 2 + hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	snap := g.eng.Snapshot()
	if input.Has(core.ActionRestart) && snap.Status == engine.StatusGameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1000.0 / g.tickMs),
			Seed:     rand.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	// Fixed dispatch order keeps replays with identical input deterministic.
	for _, action := range []core.Action{
		core.ActionMoveLeft,
		core.ActionMoveRight,
		core.ActionRotateCW,
		core.ActionRotateCCW,
		core.ActionSoftDrop,
		core.ActionHold,
		core.ActionHardDrop,
		core.ActionPause,
	} {
		if !input.Has(action) {
			continue
		}
		if action == core.ActionHold && !g.holdEnabled {
			continue
		}
		g.eng.ProcessInput(action)
	}

	g.eng.Update(g.tickMs)

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	if g.err != nil || g.eng == nil {
		return core.GameState{GameOver: true}
	}
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    snap.Stats.Score,
		GameOver: snap.Status == engine.StatusGameOver,
		Paused:   snap.Status == engine.StatusPaused,
	}
}

// Snapshot exposes the full engine view, used by the scoreboard and tests.
func (g *Game) Snapshot() engine.Snapshot {
	if g.eng == nil {
		return engine.Snapshot{}
	}
	return g.eng.Snapshot()
}

// Stats returns the current run counters for persistence.
func (g *Game) Stats() engine.Stats {
	return g.Snapshot().Stats
}

// PieceSize returns the polyomino size of the current run.
func (g *Game) PieceSize() int {
	if g.runSize > 0 {
		return g.runSize
	}
	return g.pieceSize
}
