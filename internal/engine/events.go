package engine

import "github.com/verte-zerg/tuimole/internal/model"

// EffectKind names a fire-and-forget sound effect.
type EffectKind string

// Sound effects emitted by the session.
const (
	EffectStart       EffectKind = "start"
	EffectPause       EffectKind = "pause"
	EffectHit         EffectKind = "hit"
	EffectEnd         EffectKind = "end"
	EffectCelebration EffectKind = "celebration"
)

// Result summarizes a finished round.
type Result struct {
	Mode      model.Mode
	Key       string
	Score     int
	Level     int
	Best      int
	NewRecord bool
}

// Listener receives intent events from the session. Implementations must
// not call back into the session synchronously.
type Listener interface {
	// TargetChanged reports the target's cell, phase and animation frame.
	TargetChanged(target Target)
	// BoardCleared signals that no target is visible anywhere.
	BoardCleared()
	ScoreChanged(score int)
	TimeChanged(secondsLeft int)
	LevelChanged(level int)
	StatusChanged(status model.Status)
	RoundEnded(result Result)
}

// Audio plays sound effects. Failures are the implementation's concern and
// never surface into game logic.
type Audio interface {
	PlayEffect(kind EffectKind)
}

// ScoreRegistry is the persisted best-score mapping. Keys come from
// model.ScoreKey.
type ScoreRegistry interface {
	Best(key string) (int, error)
	SetBest(key string, score int) error
	Persist() error
}

// Celebrant runs the high-score celebration. Purely cosmetic; invoked after
// the session state has settled.
type Celebrant interface {
	Celebrate(score int)
}

// NopListener ignores all events.
type NopListener struct{}

func (NopListener) TargetChanged(Target)       {}
func (NopListener) BoardCleared()              {}
func (NopListener) ScoreChanged(int)           {}
func (NopListener) TimeChanged(int)            {}
func (NopListener) LevelChanged(int)           {}
func (NopListener) StatusChanged(model.Status) {}
func (NopListener) RoundEnded(Result)          {}

// NopAudio swallows all effects.
type NopAudio struct{}

// PlayEffect implements Audio.
func (NopAudio) PlayEffect(EffectKind) {}

// NopRegistry never records anything.
type NopRegistry struct{}

// Best implements ScoreRegistry.
func (NopRegistry) Best(string) (int, error) { return 0, nil }

// SetBest implements ScoreRegistry.
func (NopRegistry) SetBest(string, int) error { return nil }

// Persist implements ScoreRegistry.
func (NopRegistry) Persist() error { return nil }

// NopCelebrant skips the celebration.
type NopCelebrant struct{}

// Celebrate implements Celebrant.
func (NopCelebrant) Celebrate(int) {}
