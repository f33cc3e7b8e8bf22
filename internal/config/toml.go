// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuimole/internal/model"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "absent" from "zero"; absent keys keep the built-in defaults.
type FileConfig struct {
	Game       GameSection       `toml:"game"`
	Difficulty DifficultySection `toml:"difficulty"`
	Animation  AnimationSection  `toml:"animation"`
	Silver     SilverSection     `toml:"silver"`
	Confetti   ConfettiSection   `toml:"confetti"`
}

// GameSection maps round-level settings.
type GameSection struct {
	DurationSeconds *int `toml:"duration"`
	Rows            *int `toml:"rows"`
	Cols            *int `toml:"cols"`
}

// DifficultySection maps Classic target lifetimes in milliseconds.
type DifficultySection struct {
	EasyMs   *int `toml:"easy"`
	MediumMs *int `toml:"medium"`
	HardMs   *int `toml:"hard"`
}

// AnimationSection maps target animation settings.
type AnimationSection struct {
	AppearFrames    *int `toml:"appear-frames"`
	DisappearFrames *int `toml:"disappear-frames"`
	ClassicFrameMs  *int `toml:"classic-frame"`
	SilverFrameMs   *int `toml:"silver-frame"`
}

// SilverSection maps Silver-mode level scaling.
type SilverSection struct {
	BaseMs     *int `toml:"base"`
	StepMs     *int `toml:"step"`
	FloorMs    *int `toml:"floor"`
	LevelEvery *int `toml:"level-every"`
}

// ConfettiSection maps celebration settings.
type ConfettiSection struct {
	Count    *int     `toml:"count"`
	Frames   *int     `toml:"frames"`
	FrameMs  *int     `toml:"frame"`
	Width    *float64 `toml:"width"`
	Height   *float64 `toml:"height"`
}

// LoadConfig reads a TOML config from the given path. A missing file is not
// an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// GameConfig merges the file config onto the built-in defaults.
func (c FileConfig) GameConfig() model.GameConfig {
	cfg := model.DefaultGameConfig()
	applySeconds(&cfg.Duration, c.Game.DurationSeconds)
	applyInt(&cfg.Rows, c.Game.Rows)
	applyInt(&cfg.Cols, c.Game.Cols)

	applyLifetime(cfg.Lifetimes, model.DifficultyEasy, c.Difficulty.EasyMs)
	applyLifetime(cfg.Lifetimes, model.DifficultyMedium, c.Difficulty.MediumMs)
	applyLifetime(cfg.Lifetimes, model.DifficultyHard, c.Difficulty.HardMs)

	applyInt(&cfg.AppearFrames, c.Animation.AppearFrames)
	applyInt(&cfg.DisappearFrames, c.Animation.DisappearFrames)
	applyFrameDelay(cfg.FrameDelay, model.ModeClassic, c.Animation.ClassicFrameMs)
	applyFrameDelay(cfg.FrameDelay, model.ModeSilver, c.Animation.SilverFrameMs)

	applyMillis(&cfg.SilverBaseLifetime, c.Silver.BaseMs)
	applyMillis(&cfg.SilverStep, c.Silver.StepMs)
	applyMillis(&cfg.SilverFloor, c.Silver.FloorMs)
	applyInt(&cfg.SilverLevelEvery, c.Silver.LevelEvery)

	applyInt(&cfg.ConfettiCount, c.Confetti.Count)
	applyInt(&cfg.ConfettiFrames, c.Confetti.Frames)
	applyMillis(&cfg.ConfettiFrameDelay, c.Confetti.FrameMs)
	applyFloat(&cfg.ViewportWidth, c.Confetti.Width)
	applyFloat(&cfg.ViewportHeight, c.Confetti.Height)
	return cfg
}

func applyInt(target *int, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func applyFloat(target *float64, value *float64) {
	if value == nil {
		return
	}
	*target = *value
}

func applySeconds(target *time.Duration, value *int) {
	if value == nil {
		return
	}
	*target = time.Duration(*value) * time.Second
}

func applyMillis(target *time.Duration, value *int) {
	if value == nil {
		return
	}
	*target = time.Duration(*value) * time.Millisecond
}

func applyLifetime(lifetimes map[model.Difficulty]time.Duration, d model.Difficulty, value *int) {
	if value == nil {
		return
	}
	lifetimes[d] = time.Duration(*value) * time.Millisecond
}

func applyFrameDelay(delays map[model.Mode]time.Duration, m model.Mode, value *int) {
	if value == nil {
		return
	}
	delays[m] = time.Duration(*value) * time.Millisecond
}
