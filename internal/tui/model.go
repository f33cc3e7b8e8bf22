// Package tui provides the Bubble Tea whack-a-mole interface.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuimole/internal/confetti"
	"github.com/verte-zerg/tuimole/internal/engine"
	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/sched"
	"github.com/verte-zerg/tuimole/internal/store"
)

// frameInterval is the real-time pump cadence for the game scheduler.
const frameInterval = 20 * time.Millisecond

// frameMsg is sent on every animation frame to advance the game clock.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type cellState struct {
	phase model.Phase
	frame int
}

// Model implements the Bubble Tea play UI. It is a thin adapter: every
// game decision lives in the engine, which runs against a virtual clock
// that this model advances to wall-clock time each frame.
type Model struct {
	cfg        model.GameConfig
	mode       model.Mode
	difficulty model.Difficulty

	session *engine.Session
	clock   *sched.Scheduler
	store   *store.Store
	rng     *rand.Rand

	lastFrame time.Time

	board    [][]cellState
	score    int
	timeLeft int
	level    int
	status   model.Status
	best     int

	lastResult *engine.Result

	sim       *confetti.Sim
	simBudget time.Duration

	width  int
	height int
}

// NewModel constructs a play model for one mode.
func NewModel(cfg model.GameConfig, mode model.Mode, difficulty model.Difficulty, st *store.Store) *Model {
	m := &Model{
		cfg:        cfg,
		mode:       mode,
		difficulty: difficulty,
		store:      st,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		lastFrame:  time.Now(),
		timeLeft:   int(cfg.Duration / time.Second),
		level:      1,
	}
	m.clock = sched.New(time.Now())
	registry := store.NewRegistry(st)
	m.session = engine.NewSession(cfg, mode, difficulty, m.clock, m.rng, engine.Deps{
		Listener:  m,
		Registry:  registry,
		Celebrant: m,
	})
	m.resetBoard()
	if best, err := registry.Best(m.session.Key()); err == nil {
		m.best = best
	} else {
		logErrf("failed to load high score: %v\n", err)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		m.advanceToWallClock(time.Time(msg))
		return m, frameCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

// advanceToWallClock runs the game scheduler up to real time and steps any
// live confetti simulation at its own cadence.
func (m *Model) advanceToWallClock(now time.Time) {
	elapsed := now.Sub(m.lastFrame)
	if elapsed < 0 {
		elapsed = 0
	}
	m.lastFrame = now
	m.clock.Advance(elapsed)

	if m.sim != nil {
		m.simBudget += elapsed
		for m.simBudget >= m.cfg.ConfettiFrameDelay && m.sim != nil {
			m.simBudget -= m.cfg.ConfettiFrameDelay
			if !m.sim.Step() {
				m.sim = nil
			}
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case " ", "s":
		m.session.Start()
		return m, nil
	case "p":
		switch m.session.Status() {
		case model.StatusRunning:
			m.session.Pause()
		case model.StatusPaused:
			m.session.Resume()
		}
		return m, nil
	case "r":
		m.sim = nil
		m.session.Reset()
		return m, nil
	}
	if cell, ok := m.cellForKey(msg.String()); ok {
		m.session.AttemptHit(cell)
	}
	return m, nil
}

// cellForKey maps digits 1-9 onto the grid in reading order.
func (m *Model) cellForKey(key string) (model.Cell, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return model.Cell{}, false
	}
	n := int(key[0] - '1')
	cell := model.Cell{Row: n / m.cfg.Cols, Col: n % m.cfg.Cols}
	if cell.Row >= m.cfg.Rows {
		return model.Cell{}, false
	}
	return cell, true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if cell, ok := m.cellAt(msg.X, msg.Y); ok {
		m.session.AttemptHit(cell)
	}
}

func (m *Model) resetBoard() {
	m.board = make([][]cellState, m.cfg.Rows)
	for r := range m.board {
		m.board[r] = make([]cellState, m.cfg.Cols)
	}
}

// TargetChanged implements engine.Listener.
func (m *Model) TargetChanged(t engine.Target) {
	m.resetBoard()
	if t.Cell.Row < len(m.board) && t.Cell.Col < len(m.board[t.Cell.Row]) {
		m.board[t.Cell.Row][t.Cell.Col] = cellState{phase: t.Phase, frame: t.Frame}
	}
}

// BoardCleared implements engine.Listener.
func (m *Model) BoardCleared() {
	m.resetBoard()
}

// ScoreChanged implements engine.Listener.
func (m *Model) ScoreChanged(score int) {
	m.score = score
}

// TimeChanged implements engine.Listener.
func (m *Model) TimeChanged(secs int) {
	m.timeLeft = secs
}

// LevelChanged implements engine.Listener.
func (m *Model) LevelChanged(level int) {
	m.level = level
}

// StatusChanged implements engine.Listener.
func (m *Model) StatusChanged(status model.Status) {
	m.status = status
	if status == model.StatusRunning || status == model.StatusIdle {
		m.lastResult = nil
		m.sim = nil
	}
}

// RoundEnded implements engine.Listener.
func (m *Model) RoundEnded(result engine.Result) {
	m.lastResult = &result
	if result.Best > m.best {
		m.best = result.Best
	}
	_, err := m.store.InsertRound(context.Background(), model.RoundRecord{
		PlayedAt: time.Now(),
		Mode:     result.Mode,
		Key:      result.Key,
		Score:    result.Score,
		Duration: m.cfg.Duration,
		Level:    result.Level,
	})
	if err != nil {
		logErrf("failed to save round: %v\n", err)
	}
}

// Celebrate implements engine.Celebrant by launching the confetti
// simulation rendered over the end screen.
func (m *Model) Celebrate(int) {
	m.sim = confetti.NewSim(confetti.Config{
		Count:  m.cfg.ConfettiCount,
		Frames: m.cfg.ConfettiFrames,
		Width:  m.cfg.ViewportWidth,
		Height: m.cfg.ViewportHeight,
	}, m.rng)
	m.simBudget = 0
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
