package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/config"
	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/games/polyfall"
)

// CustomSelection holds the user's choices from the custom game menu.
type CustomSelection struct {
	PieceSize  int
	StartLevel int
	Preset     config.DifficultyPreset
}

type customStage int

const (
	stageSize customStage = iota
	stageLevel
	stagePreset
)

// startLevels offered by the level picker.
var startLevels = []int{1, 3, 5, 8, 10, 15}

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// CustomGameModel walks through piece size, start level and difficulty.
type CustomGameModel struct {
	stage     customStage
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection CustomSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewCustomGameModel creates a new custom game selection model.
func NewCustomGameModel(width, height int) CustomGameModel {
	return CustomGameModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		selection: CustomSelection{
			PieceSize:  4,
			StartLevel: 1,
			Preset:     config.DifficultyNormal,
		},
	}
}

// Init initializes the model.
func (m CustomGameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CustomGameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CustomGameModel) optionCount() int {
	switch m.stage {
	case stageSize:
		return catalog.MaxPieceSize - 4 + 1
	case stageLevel:
		return len(startLevels)
	default:
		return len(presets)
	}
}

func (m CustomGameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.stage {
		case stageSize:
			m.selection.PieceSize = 4 + m.cursor
			m.stage = stageLevel
			m.cursor = 0
		case stageLevel:
			m.selection.StartLevel = startLevels[m.cursor]
			m.stage = stagePreset
			m.cursor = 1 // default to normal
		case stagePreset:
			m.selection.Preset = presets[m.cursor]
			m.choosing = false
			return m, tea.Quit
		}

	case MenuActionBack:
		switch m.stage {
		case stageSize:
			m.back = true
			return m, tea.Quit
		case stageLevel:
			m.stage = stageSize
			m.cursor = 0
		case stagePreset:
			m.stage = stageLevel
			m.cursor = 0
		}
	}

	return m, nil
}

// View renders the current selection stage.
func (m CustomGameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("CUSTOM GAME", m.width))
	b.WriteString("\n\n")

	switch m.stage {
	case stageSize:
		b.WriteString(centerText("Piece size:", m.width))
		b.WriteString("\n\n")
		for i := 0; i < m.optionCount(); i++ {
			size := 4 + i
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%d cells (%s)", cursor, size, catalog.SizeName(size))
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}

	case stageLevel:
		b.WriteString(centerText("Starting level:", m.width))
		b.WriteString("\n\n")
		for i, level := range startLevels {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%sLevel %d", cursor, level), m.width))
			b.WriteString("\n")
		}

	case stagePreset:
		b.WriteString(centerText("Difficulty:", m.width))
		b.WriteString("\n\n")
		for i, preset := range presets {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, preset), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CustomGameModel) Selected() *CustomSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CustomGameModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CustomGameModel) WantsBack() bool {
	return m.back
}

// ApplyCustomSelection pushes the selection into the variant overrides and
// returns the game ID to launch. The overrides are consumed on the next Reset.
func ApplyCustomSelection(sel CustomSelection) string {
	cfg := config.DefaultPolyfallConfig()
	config.ApplyPreset(&cfg, sel.Preset)

	polyfall.SetPieceSize(sel.PieceSize)
	polyfall.SetStartLevel(sel.StartLevel)
	polyfall.SetLockDelayMs(cfg.Timing.LockDelayMs)

	return "polyfall"
}

// RunCustomGameSelector runs the custom game menu and returns the selection.
func RunCustomGameSelector(cfg core.RuntimeConfig) (*CustomSelection, core.RuntimeConfig, error) {
	model := NewCustomGameModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CustomGameModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
