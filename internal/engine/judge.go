package engine

import "github.com/verte-zerg/tuimole/internal/model"

// Hit adjudication. The judge works off s.active, a non-owning reference
// that exists from spawn until the target is hit or expires, so a mole is
// fair game while it is still animating in. The reference is cleared the
// instant a hit registers, before any other effect, so a second click on
// the same cell can never score twice.

// AttemptHit processes a click on a cell. Silently ignored while not
// Running or when the cell does not hold the current target.
func (s *Session) AttemptHit(cell model.Cell) {
	if s.status != model.StatusRunning {
		return
	}
	t := s.active
	if t == nil || t.Cell != cell {
		return
	}
	s.active = nil

	s.score++
	s.listener.ScoreChanged(s.score)
	s.audio.PlayEffect(EffectHit)

	// The hit supersedes the natural expiry and any in-flight appear
	// animation; beginDisappear re-arms the anim slot for the way out.
	s.spawnSlot.Cancel()

	if s.mode == model.ModeSilver && s.cfg.SilverLevelEvery > 0 && s.score%s.cfg.SilverLevelEvery == 0 {
		s.level++
		s.listener.LevelChanged(s.level)
	}

	s.beginDisappear(t)
}
