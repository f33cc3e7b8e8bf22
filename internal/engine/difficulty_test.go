package engine

import (
	"testing"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
)

func TestClassicLifetimes(t *testing.T) {
	cfg := model.DefaultGameConfig()
	cases := []struct {
		difficulty model.Difficulty
		want       time.Duration
	}{
		{model.DifficultyEasy, 1500 * time.Millisecond},
		{model.DifficultyMedium, 1000 * time.Millisecond},
		{model.DifficultyHard, 750 * time.Millisecond},
		{"bogus", 1000 * time.Millisecond}, // falls back to medium
	}
	for _, tc := range cases {
		if got := classicLifetime(cfg, tc.difficulty); got != tc.want {
			t.Fatalf("classicLifetime(%s) = %v, want %v", tc.difficulty, got, tc.want)
		}
	}
}

func TestSilverLifetimeScalesAndFloors(t *testing.T) {
	cfg := model.DefaultGameConfig()
	cases := []struct {
		level int
		want  time.Duration
	}{
		{0, 1500 * time.Millisecond}, // clamped to level 1
		{1, 1500 * time.Millisecond},
		{2, 1400 * time.Millisecond},
		{11, 500 * time.Millisecond},
		{100, 500 * time.Millisecond}, // floor never sinks further
	}
	for _, tc := range cases {
		if got := silverLifetime(cfg, tc.level); got != tc.want {
			t.Fatalf("silverLifetime(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
