package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worlds/internal/core"
)

// Options configures a terminal session.
type Options struct {
	TickRate      int           // Simulation ticks per second
	EndScreen     time.Duration // How long the end-of-run message stays up
	HoldTicks     int           // Ticks a key press counts as held
	ScreenshotDir string        // Where ctrl+s writes screenshots; empty disables them
	Logger        *log.Logger   // nil disables logging
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	ending     bool // End screen is showing
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	opts.TickRate = cfg.TickRate

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case EndScreenDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.opts.Logger != nil && !m.ending {
			m.opts.Logger.Info("quit requested", "lives", m.gameState.Lives)
		}
		return m, tea.Quit
	}
	if m.ending || action == core.ActionNone {
		return m, nil
	}

	if IsHeld(action) {
		m.held.Press(action)
	} else {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The playfield is scaled, so the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending {
		return m, nil
	}

	if !m.gameState.Paused {
		m.held.Sample(&m.inputFrame)
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.ending = true
		m.held.Reset()
		return m, endScreenCmd(m.opts.EndScreen)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o750); err != nil {
		m.logError("screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logError("screenshot", err)
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("screenshot saved", "path", path)
	}
}

func (m *Model) logError(what string, err error) {
	if m.opts.Logger != nil {
		m.opts.Logger.Error(what+" failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the run ends or the
// user quits. It returns the final game state.
func Run(ctx context.Context, game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return game.State(), fmt.Errorf("running terminal UI: %w", err)
	}
	return game.State(), nil
}
