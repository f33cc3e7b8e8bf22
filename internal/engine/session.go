// Package engine implements the whack-a-mole session state machine.
//
// The engine is pure: it never touches the terminal, wall-clock time, or
// storage. All timing flows through a sched.Scheduler, randomness through an
// injected *rand.Rand, and side effects through the collaborator interfaces
// in events.go. Invalid transitions are silent no-ops; the engine has no
// error conditions of its own.
package engine

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/sched"
)

// Target is the single clickable mole. At most one exists per session.
type Target struct {
	Cell  model.Cell
	Phase model.Phase
	Frame int
}

// Deps are the session's collaborators. Nil fields default to no-ops.
type Deps struct {
	Listener  Listener
	Audio     Audio
	Registry  ScoreRegistry
	Celebrant Celebrant
}

// Session owns all mutable round state. It must only be used from the
// scheduler's thread; callbacks get exclusive access for their duration.
type Session struct {
	cfg        model.GameConfig
	mode       model.Mode
	difficulty model.Difficulty

	status   model.Status
	score    int
	timeLeft int // seconds
	level    int // Silver only, >= 1

	// epoch increments on every status transition. Scheduled closures
	// capture it and refuse to run once it moves on, so a stale callback
	// can never mutate post-transition state even if a slot were
	// mishandled.
	epoch uint64

	target *Target // owned by the spawn cycle
	active *Target // hit-judge reference, non-nil only while hittable

	tickSlot  sched.Slot // round clock
	spawnSlot sched.Slot // next spawn / active self-timeout
	animSlot  sched.Slot // appear/disappear frame stepping

	clock *sched.Scheduler
	rng   *rand.Rand

	listener  Listener
	audio     Audio
	registry  ScoreRegistry
	celebrant Celebrant
}

// NewSession builds an idle session. The scheduler and rng must not be nil.
func NewSession(cfg model.GameConfig, mode model.Mode, difficulty model.Difficulty, clock *sched.Scheduler, rng *rand.Rand, deps Deps) *Session {
	if deps.Listener == nil {
		deps.Listener = NopListener{}
	}
	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}
	if deps.Registry == nil {
		deps.Registry = NopRegistry{}
	}
	if deps.Celebrant == nil {
		deps.Celebrant = NopCelebrant{}
	}
	return &Session{
		cfg:        cfg,
		mode:       mode,
		difficulty: difficulty,
		status:     model.StatusIdle,
		timeLeft:   int(cfg.Duration / time.Second),
		level:      1,
		tickSlot:   sched.NewSlot(clock),
		spawnSlot:  sched.NewSlot(clock),
		animSlot:   sched.NewSlot(clock),
		clock:      clock,
		rng:        rng,
		listener:   deps.Listener,
		audio:      deps.Audio,
		registry:   deps.Registry,
		celebrant:  deps.Celebrant,
	}
}

// Mode returns the session's game mode.
func (s *Session) Mode() model.Mode { return s.mode }

// Difficulty returns the Classic difficulty tier.
func (s *Session) Difficulty() model.Difficulty { return s.difficulty }

// Key returns the score-registry key for this session.
func (s *Session) Key() string { return model.ScoreKey(s.mode, s.difficulty) }

// Status returns the current lifecycle state.
func (s *Session) Status() model.Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeLeft returns the remaining round seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Level returns the Silver level (always 1 in Classic).
func (s *Session) Level() int { return s.level }

// Target returns a copy of the current target, if one exists.
func (s *Session) Target() (Target, bool) {
	if s.target == nil {
		return Target{}, false
	}
	return *s.target, true
}

// Start begins a round. Valid from Idle or Ended; otherwise a no-op.
func (s *Session) Start() {
	if s.status != model.StatusIdle && s.status != model.StatusEnded {
		return
	}
	s.transition(model.StatusRunning)
	s.cancelAll()
	s.score = 0
	s.level = 1
	s.target = nil
	s.active = nil
	s.listener.ScoreChanged(s.score)
	if s.mode == model.ModeSilver {
		s.listener.LevelChanged(s.level)
	}
	s.listener.BoardCleared()
	s.audio.PlayEffect(EffectStart)
	// The clock resets first: spawnNext refuses to run on an exhausted
	// countdown, which is exactly the state a restart from Ended begins in.
	s.startClock()
	s.spawnNext()
}

// Pause freezes the round. Valid only while Running. In-flight target
// animations keep their current frame; all pending work is cancelled.
func (s *Session) Pause() {
	if s.status != model.StatusRunning {
		return
	}
	s.transition(model.StatusPaused)
	s.cancelAll()
	s.audio.PlayEffect(EffectPause)
}

// Resume continues a paused round. Valid only while Paused. An Active
// target gets a fresh full lifetime; a target caught mid-animation is
// restarted via a new spawn, discarding frame progress.
func (s *Session) Resume() {
	if s.status != model.StatusPaused {
		return
	}
	s.transition(model.StatusRunning)
	s.armTick()
	if s.target != nil && s.target.Phase == model.PhaseActive {
		s.armTimeout()
	} else {
		s.spawnNext()
	}
}

// Reset returns the session to Idle from any state, restoring the
// configured duration and clearing everything pending.
func (s *Session) Reset() {
	s.transition(model.StatusIdle)
	s.cancelAll()
	s.score = 0
	s.timeLeft = int(s.cfg.Duration / time.Second)
	s.level = 1
	s.target = nil
	s.active = nil
	s.listener.ScoreChanged(s.score)
	s.listener.TimeChanged(s.timeLeft)
	if s.mode == model.ModeSilver {
		s.listener.LevelChanged(s.level)
	}
	s.listener.BoardCleared()
}

// end finishes the round: invoked by the clock reaching zero.
func (s *Session) end() {
	if s.status != model.StatusRunning && s.status != model.StatusPaused {
		return
	}
	s.transition(model.StatusEnded)
	s.cancelAll()
	s.target = nil
	s.active = nil
	s.listener.BoardCleared()
	s.audio.PlayEffect(EffectEnd)

	result := Result{
		Mode:  s.mode,
		Key:   s.Key(),
		Score: s.score,
		Level: s.level,
	}
	best, err := s.registry.Best(result.Key)
	if err == nil {
		result.Best = best
		if s.score > best {
			result.Best = s.score
			result.NewRecord = true
			if err := s.registry.SetBest(result.Key, s.score); err == nil {
				// Best-effort persistence; a failed flush keeps the
				// in-memory record.
				_ = s.registry.Persist()
			}
			s.audio.PlayEffect(EffectCelebration)
			s.celebrant.Celebrate(s.score)
		}
	}
	s.listener.RoundEnded(result)
}

// transition switches status, invalidating every outstanding scheduled
// closure via the epoch counter.
func (s *Session) transition(status model.Status) {
	s.epoch++
	s.status = status
	s.listener.StatusChanged(status)
}

func (s *Session) cancelAll() {
	s.tickSlot.Cancel()
	s.spawnSlot.Cancel()
	s.animSlot.Cancel()
}

// arm schedules fn into a slot with the current epoch captured; the closure
// is a no-op once any transition has happened.
func (s *Session) arm(slot *sched.Slot, d time.Duration, fn func()) {
	epoch := s.epoch
	slot.Arm(d, func() {
		if s.epoch != epoch {
			return
		}
		fn()
	})
}

// lifetime returns the current Active-phase duration.
func (s *Session) lifetime() time.Duration {
	if s.mode == model.ModeSilver {
		return silverLifetime(s.cfg, s.level)
	}
	return classicLifetime(s.cfg, s.difficulty)
}

func (s *Session) frameDelay() time.Duration {
	return s.cfg.FrameDelay[s.mode]
}
