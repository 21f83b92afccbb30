package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Smallest terminal the arena is drawn in.
const (
	minWidth  = 30
	minHeight = 12
)

// Options configures a game or a menu session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig // Initial size, tick rate and seed
	Store   *storage.Store     // nil runs without persistence
	Logger  *log.Logger

	// HighScores overrides the Store-backed high score.
	HighScores breakout.ScoreStore
}

// withDefaults fills in tick rate, seed and logger.
func (o Options) withDefaults() Options {
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = 60
	}
	// Use time-based seed if not specified
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// scoreStore returns the high score backend, or nil to keep it in memory.
func (o Options) scoreStore() breakout.ScoreStore {
	if o.HighScores != nil {
		return o.HighScores
	}
	if o.Store == nil {
		return nil
	}
	return storage.NewHighScoreStore(o.Store, o.Logger)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// chainSeq numbers tick chains process-wide, so a tick left over from one
// game can never drive another.
var chainSeq atomic.Int64

func nextChain() int {
	return int(chainSeq.Add(1))
}

// GameModel is the Bubble Tea model running one game: it owns the tick
// chain, turns terminal input into game input and draws the frame.
type GameModel struct {
	game       *breakout.Game
	opts       Options
	screen     *core.Screen
	surface    *TermSurface
	keys       GameKeyMap
	help       help.Model
	hold       *KeyHold
	now        func() time.Time
	gen        int // Current tick chain
	width      int
	height     int
	recorded   bool // Whether the ended session has been recorded
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model sized to opts.Runtime.
func NewGameModel(opts Options) GameModel {
	opts = opts.withDefaults()
	ctl := opts.Config.Controls

	m := GameModel{
		game:   breakout.New(opts.Config, opts.scoreStore(), opts.Runtime.Seed),
		opts:   opts,
		screen: core.NewScreen(0, 0),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		hold:   NewKeyHold(millis(ctl.HoldInitialMS), millis(ctl.HoldRepeatMS)),
		now:    time.Now,
		gen:    nextChain(),
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	opts.Logger.Info("game started", "session", m.game.SessionID(), "high_score", m.game.HighScore())
	return m
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// resize lays out the frame: HUD row, boxed arena, help row.
func (m *GameModel) resize(width, height int) {
	wasPlayable := !m.tooSmall()
	m.width, m.height = width, height
	m.screen.Resize(width, height-1)
	arena := m.opts.Config.Arena
	m.surface = NewTermSurface(m.screen, 1, 2, width-2, height-4, arena.Width, arena.Height)
	m.help.Width = width

	// Shrinking below the minimum pauses a running game
	if wasPlayable && m.tooSmall() && m.game.Phase().IsRunning() {
		m.game.TogglePause()
	}
}

func (m GameModel) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

// Init starts the tick chain.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		// Only leave a game that is paused or over
		if m.game.Phase().IsRunning() {
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.send(m.hold.Press(core.KeyLeft, m.now())...)

	case key.Matches(msg, m.keys.Right):
		return m.send(m.hold.Press(core.KeyRight, m.now())...)

	case key.Matches(msg, m.keys.Pause):
		return m.send(core.KeyDown(core.KeyPause))

	case key.Matches(msg, m.keys.Restart):
		m.hold.Reset()
		return m.send(core.KeyDown(core.KeyRestart))
	}

	return m, nil
}

// handleMouse moves the paddle to the pointer column.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tooSmall() {
		return m, nil
	}
	x, ok := m.surface.ArenaX(msg.X)
	if !ok {
		return m, nil
	}
	return m.send(core.PointerMove(x))
}

// send feeds input events to the game. When they bring a stopped game back
// to running, a new tick chain is started.
func (m GameModel) send(events ...core.InputEvent) (tea.Model, tea.Cmd) {
	wasRunning := m.game.Phase().IsRunning()

	for _, ev := range events {
		if m.game.HandleInput(ev).Kind == breakout.IntentRestart {
			m.recorded = false
			m.opts.Logger.Info("game restarted", "session", m.game.SessionID())
		}
	}

	if !wasRunning && m.game.Phase().IsRunning() {
		m.gen = nextChain()
		return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	now := msg.Time
	if now.IsZero() {
		now = m.now()
	}
	for _, ev := range m.hold.Expire(now) {
		m.game.HandleInput(ev)
	}

	result := m.game.Tick()
	for _, ev := range result.Events {
		if ev.Kind == breakout.EventNewHighScore {
			m.opts.Logger.Debug("new high score", "score", ev.Score)
		}
	}
	if result.Phase.IsEnded() {
		m.recordSession(result.Phase)
	}

	// Continue ticking only while running
	if m.game.Phase().IsRunning() {
		return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
	}
	return m, nil
}

// recordSession stores the ended session once.
func (m *GameModel) recordSession(phase breakout.PhaseState) {
	if m.recorded {
		return
	}
	m.recorded = true

	m.opts.Logger.Info("game over",
		"session", m.game.SessionID(),
		"outcome", phase.Outcome.String(),
		"score", phase.FinalScore,
	)

	if m.opts.Store == nil || phase.FinalScore <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		SessionID: m.game.SessionID(),
		Score:     phase.FinalScore,
		Outcome:   phase.Outcome.String(),
	})
	if err != nil {
		m.opts.Logger.Warn("cannot record session", "err", err)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".brickbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// draw renders HUD, border and arena into the screen buffer.
func (m *GameModel) draw() {
	m.screen.Clear()

	left := fmt.Sprintf(" Score: %d", m.game.Score())
	m.screen.DrawStyledText(0, 0, left, core.ColorWhite, true)

	right := fmt.Sprintf("High Score: %d ", m.game.HighScore())
	m.screen.DrawStyledText(m.width-len(right), 0, right, core.ColorYellow, true)

	bricks := fmt.Sprintf("Bricks: %d", m.game.BricksLeft())
	m.screen.DrawStyledText((m.width-len(bricks))/2, 0, bricks, core.ColorGray, false)

	m.screen.DrawBox(0, 1, m.width, m.height-2, core.ColorGray)
	m.game.Render(m.surface)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minWidth, minHeight, m.width, m.height)
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m GameModel) Game() *breakout.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame starts a standalone game in the terminal.
func RunGame(opts Options) error {
	model := NewGameModel(opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer control of the paddle
	)

	_, err := p.Run()
	return err
}
