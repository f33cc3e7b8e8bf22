// Package confetti simulates the high-score celebration particles.
//
// The simulation is display-free: it works in abstract viewport pixels and
// leaves rendering to the caller. It is purely cosmetic and never feeds back
// into game state.
package confetti

import (
	"math"
	"math/rand"
)

// Palette holds the fixed confetti colors (hex, lipgloss-compatible).
var Palette = []string{
	"#FF4D4F", // red
	"#FFA940", // orange
	"#FFEC3D", // yellow
	"#73D13D", // green
	"#40A9FF", // blue
	"#9254DE", // purple
	"#F759AB", // pink
}

// Particle is one piece of confetti.
type Particle struct {
	X, Y  float64 // viewport position, y grows downward
	Angle float64 // launch angle, radians in [-pi/2, pi/2]
	Speed float64
	Age   int // frames advanced so far
	Color int // Palette index
	Size  float64
}

// Config sizes the simulation.
type Config struct {
	Count  int
	Frames int // per-particle frame ceiling
	Width  float64
	Height float64
}

// Sim is a bounded-lifetime particle simulation.
type Sim struct {
	cfg       Config
	particles []Particle
}

// NewSim launches cfg.Count particles from random points along the bottom
// edge of the viewport.
func NewSim(cfg Config, rng *rand.Rand) *Sim {
	particles := make([]Particle, cfg.Count)
	for i := range particles {
		particles[i] = Particle{
			X:     rng.Float64() * cfg.Width,
			Y:     cfg.Height,
			Angle: (rng.Float64() - 0.5) * math.Pi,
			Speed: 10 + rng.Float64()*10,
			Color: rng.Intn(len(Palette)),
			Size:  5 + rng.Float64()*10,
		}
	}
	return &Sim{cfg: cfg, particles: particles}
}

// Step advances every particle by one frame, dropping those that fall out
// of the viewport or exhaust their frame budget. It reports whether any
// particles remain.
func (s *Sim) Step() bool {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Age++
		f := float64(p.Age)
		// Horizontal oscillation wrapped around the viewport; upward launch
		// decaying into an accelerating fall.
		p.X = wrap(p.X+p.Speed*math.Cos(p.Angle)*math.Sin(f*0.1), s.cfg.Width)
		p.Y = p.Y - p.Speed*math.Sin(p.Angle)*f + 0.5*math.Pow(f, 1.5)
		if p.Y > s.cfg.Height || p.Age >= s.cfg.Frames {
			continue
		}
		alive = append(alive, p)
	}
	s.particles = alive
	return len(s.particles) > 0
}

// Done reports whether the simulation has no live particles left.
func (s *Sim) Done() bool {
	return len(s.particles) == 0
}

// Particles exposes the live particles for rendering. The slice is only
// valid until the next Step.
func (s *Sim) Particles() []Particle {
	return s.particles
}

func wrap(x, width float64) float64 {
	if width <= 0 {
		return x
	}
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	return x
}
