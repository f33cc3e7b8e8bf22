package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config treated as error: %v", err)
	}
	game := cfg.GameConfig()
	defaults := model.DefaultGameConfig()
	if game.Duration != defaults.Duration || game.Rows != defaults.Rows {
		t.Fatalf("missing config did not yield defaults: %+v", game)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("empty path accepted")
	}
}

func TestGameConfigMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[game]
duration = 45
rows = 4

[difficulty]
hard = 600

[animation]
silver-frame = 40

[silver]
floor = 400

[confetti]
count = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	game := cfg.GameConfig()

	if game.Duration != 45*time.Second {
		t.Fatalf("duration = %v, want 45s", game.Duration)
	}
	if game.Rows != 4 || game.Cols != 3 {
		t.Fatalf("grid = %dx%d, want 4x3", game.Rows, game.Cols)
	}
	if game.Lifetimes[model.DifficultyHard] != 600*time.Millisecond {
		t.Fatalf("hard lifetime = %v, want 600ms", game.Lifetimes[model.DifficultyHard])
	}
	if game.Lifetimes[model.DifficultyEasy] != 1500*time.Millisecond {
		t.Fatalf("easy lifetime lost its default: %v", game.Lifetimes[model.DifficultyEasy])
	}
	if game.FrameDelay[model.ModeSilver] != 40*time.Millisecond {
		t.Fatalf("silver frame delay = %v, want 40ms", game.FrameDelay[model.ModeSilver])
	}
	if game.SilverFloor != 400*time.Millisecond {
		t.Fatalf("silver floor = %v, want 400ms", game.SilverFloor)
	}
	if game.ConfettiCount != 50 {
		t.Fatalf("confetti count = %d, want 50", game.ConfettiCount)
	}
	if game.ConfettiFrames != 200 {
		t.Fatalf("confetti frames lost default: %d", game.ConfettiFrames)
	}
}
