package engine

import "github.com/verte-zerg/tuimole/internal/model"

// Spawn cycle: Hidden -> Appearing -> Active -> Disappearing -> Hidden,
// then immediately again. spawnSlot holds the one pending "next spawn or
// active self-timeout" task, animSlot the one pending frame step.

// spawnNext clears the board and starts a fresh target at a uniformly
// random cell. The target is hittable from this moment, while it is still
// animating in. No-op while not Running or once the countdown is
// exhausted; in both cases it leaves nothing scheduled behind.
func (s *Session) spawnNext() {
	if s.status != model.StatusRunning || s.timeLeft <= 0 {
		return
	}
	s.spawnSlot.Cancel()
	s.active = nil
	s.target = nil
	s.listener.BoardCleared()

	cell := model.Cell{
		Row: s.rng.Intn(s.cfg.Rows),
		Col: s.rng.Intn(s.cfg.Cols),
	}
	s.target = &Target{Cell: cell, Phase: model.PhaseAppearing}
	s.active = s.target
	s.listener.TargetChanged(*s.target)
	s.arm(&s.animSlot, s.frameDelay(), s.stepAppear)
}

// stepAppear advances the appear animation; on completion the target
// becomes Active and its self-timeout is armed.
func (s *Session) stepAppear() {
	t := s.target
	if t == nil || t.Phase != model.PhaseAppearing {
		return
	}
	t.Frame++
	if t.Frame < s.cfg.AppearFrames {
		s.listener.TargetChanged(*t)
		s.arm(&s.animSlot, s.frameDelay(), s.stepAppear)
		return
	}
	t.Phase = model.PhaseActive
	t.Frame = 0
	s.listener.TargetChanged(*t)
	s.armTimeout()
}

// armTimeout schedules the Active target's natural expiry.
func (s *Session) armTimeout() {
	s.arm(&s.spawnSlot, s.lifetime(), s.expire)
}

// expire starts the disappear animation for a target that was never hit.
func (s *Session) expire() {
	t := s.target
	if t == nil || t.Phase != model.PhaseActive {
		return
	}
	s.active = nil
	s.beginDisappear(t)
}

func (s *Session) beginDisappear(t *Target) {
	t.Phase = model.PhaseDisappearing
	t.Frame = 0
	s.listener.TargetChanged(*t)
	s.arm(&s.animSlot, s.frameDelay(), s.stepDisappear)
}

// stepDisappear advances the disappear animation; on completion the board
// clears and the cycle restarts.
func (s *Session) stepDisappear() {
	t := s.target
	if t == nil || t.Phase != model.PhaseDisappearing {
		return
	}
	t.Frame++
	if t.Frame < s.cfg.DisappearFrames {
		s.listener.TargetChanged(*t)
		s.arm(&s.animSlot, s.frameDelay(), s.stepDisappear)
		return
	}
	s.target = nil
	s.listener.BoardCleared()
	s.spawnNext()
}
