package engine

import (
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
)

// Round clock: one pending tick at most, held in tickSlot.

// startClock resets the countdown to the configured duration and arms the
// first tick.
func (s *Session) startClock() {
	s.timeLeft = int(s.cfg.Duration / time.Second)
	s.listener.TimeChanged(s.timeLeft)
	s.armTick()
}

func (s *Session) armTick() {
	s.arm(&s.tickSlot, time.Second, s.tick)
}

// tick decrements the countdown and either re-arms itself or ends the
// round. Only meaningful while Running; the epoch guard plus slot
// cancellation make any other invocation impossible, the status check is
// the final line.
func (s *Session) tick() {
	if s.status != model.StatusRunning {
		return
	}
	s.timeLeft--
	s.listener.TimeChanged(s.timeLeft)
	if s.timeLeft <= 0 {
		s.end()
		return
	}
	s.armTick()
}
