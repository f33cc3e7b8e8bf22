// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode identifies a game mode.
type Mode string

// Game modes.
const (
	ModeClassic Mode = "classic"
	ModeSilver  Mode = "silver"
)

// Difficulty identifies a Classic-mode difficulty tier.
type Difficulty string

// Classic difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (easy, medium, hard)", s)
}

// Status is the session lifecycle state.
type Status int

// Session states.
const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusEnded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	}
	return "unknown"
}

// Phase is the target lifecycle phase.
type Phase int

// Target phases.
const (
	PhaseHidden Phase = iota
	PhaseAppearing
	PhaseActive
	PhaseDisappearing
)

// Cell addresses one grid position.
type Cell struct {
	Row int
	Col int
}

// GameConfig carries the tunable parameters consumed by the core.
type GameConfig struct {
	Duration time.Duration // round length
	Rows     int
	Cols     int

	// Classic lifetimes per difficulty.
	Lifetimes map[Difficulty]time.Duration

	// Silver level scaling.
	SilverBaseLifetime time.Duration
	SilverStep         time.Duration
	SilverFloor        time.Duration
	SilverLevelEvery   int // points per level-up

	// Target animation.
	AppearFrames    int
	DisappearFrames int
	FrameDelay      map[Mode]time.Duration

	// Confetti.
	ConfettiCount      int
	ConfettiFrames     int
	ConfettiFrameDelay time.Duration
	ViewportWidth      float64
	ViewportHeight     float64
}

// DefaultGameConfig returns the built-in parameters.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Duration: 30 * time.Second,
		Rows:     3,
		Cols:     3,
		Lifetimes: map[Difficulty]time.Duration{
			DifficultyEasy:   1500 * time.Millisecond,
			DifficultyMedium: 1000 * time.Millisecond,
			DifficultyHard:   750 * time.Millisecond,
		},
		SilverBaseLifetime: 1500 * time.Millisecond,
		SilverStep:         100 * time.Millisecond,
		SilverFloor:        500 * time.Millisecond,
		SilverLevelEvery:   10,
		AppearFrames:       3,
		DisappearFrames:    3,
		FrameDelay: map[Mode]time.Duration{
			ModeClassic: 100 * time.Millisecond,
			ModeSilver:  50 * time.Millisecond,
		},
		ConfettiCount:      200,
		ConfettiFrames:     200,
		ConfettiFrameDelay: 20 * time.Millisecond,
		ViewportWidth:      800,
		ViewportHeight:     600,
	}
}

// ScoreKey is the registry key for a mode/difficulty combination.
func ScoreKey(mode Mode, difficulty Difficulty) string {
	if mode == ModeSilver {
		return string(ModeSilver)
	}
	return string(difficulty)
}

// RoundRecord captures one completed round.
type RoundRecord struct {
	ID       int64
	PlayedAt time.Time
	Mode     Mode
	Key      string
	Score    int
	Duration time.Duration
	Level    int
}

// BestEntry is a persisted high score for one key.
type BestEntry struct {
	Key        string
	Score      int
	AchievedAt time.Time
}

// RoundFilter narrows round history queries.
type RoundFilter struct {
	Mode  Mode
	Key   string
	Since *time.Time
	Last  int
}
