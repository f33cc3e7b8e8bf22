package engine

import (
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
)

// classicLifetime returns the Classic-mode active lifetime for a difficulty.
func classicLifetime(cfg model.GameConfig, d model.Difficulty) time.Duration {
	if lt, ok := cfg.Lifetimes[d]; ok {
		return lt
	}
	return cfg.Lifetimes[model.DifficultyMedium]
}

// silverLifetime derives the active lifetime from the Silver level:
// base − step·(level−1), floored.
func silverLifetime(cfg model.GameConfig, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	lt := cfg.SilverBaseLifetime - time.Duration(level-1)*cfg.SilverStep
	if lt < cfg.SilverFloor {
		return cfg.SilverFloor
	}
	return lt
}
