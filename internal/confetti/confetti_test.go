package confetti

import (
	"math"
	"math/rand"
	"testing"
)

func testConfig() Config {
	return Config{Count: 200, Frames: 200, Width: 800, Height: 600}
}

func TestNewSimSpawnsAlongBottomEdge(t *testing.T) {
	sim := NewSim(testConfig(), rand.New(rand.NewSource(1)))
	particles := sim.Particles()
	if len(particles) != 200 {
		t.Fatalf("spawned %d particles, want 200", len(particles))
	}
	for i, p := range particles {
		if p.Y != 600 {
			t.Fatalf("particle %d spawned off the bottom edge: y=%v", i, p.Y)
		}
		if p.X < 0 || p.X >= 800 {
			t.Fatalf("particle %d x out of viewport: %v", i, p.X)
		}
		if p.Angle < -math.Pi/2 || p.Angle > math.Pi/2 {
			t.Fatalf("particle %d angle out of range: %v", i, p.Angle)
		}
		if p.Speed < 10 || p.Speed >= 20 {
			t.Fatalf("particle %d speed out of range: %v", i, p.Speed)
		}
		if p.Size < 5 || p.Size >= 15 {
			t.Fatalf("particle %d size out of range: %v", i, p.Size)
		}
		if p.Color < 0 || p.Color >= len(Palette) {
			t.Fatalf("particle %d color out of palette: %d", i, p.Color)
		}
	}
}

func TestStepFollowsTrajectory(t *testing.T) {
	sim := &Sim{
		cfg: testConfig(),
		particles: []Particle{
			{X: 100, Y: 600, Angle: math.Pi / 4, Speed: 15},
		},
	}
	sim.Step()
	p := sim.Particles()[0]

	wantX := 100 + 15*math.Cos(math.Pi/4)*math.Sin(0.1)
	wantY := 600 - 15*math.Sin(math.Pi/4)*1 + 0.5
	if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
		t.Fatalf("after one frame got (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}
	if p.Age != 1 {
		t.Fatalf("age = %d, want 1", p.Age)
	}
}

func TestUpwardLaunchRisesThenFalls(t *testing.T) {
	sim := &Sim{
		cfg: testConfig(),
		particles: []Particle{
			{X: 400, Y: 600, Angle: math.Pi / 3, Speed: 18},
		},
	}
	sim.Step()
	first := sim.Particles()[0].Y
	if first >= 600 {
		t.Fatalf("upward-launched particle did not rise: y=%v", first)
	}
	// The 0.5*f^1.5 term eventually dominates and the particle drops out.
	for i := 0; i < 200 && !sim.Done(); i++ {
		sim.Step()
	}
	if !sim.Done() {
		t.Fatalf("particle never left the viewport or aged out")
	}
}

func TestFallingParticleDiesBelowViewport(t *testing.T) {
	sim := &Sim{
		cfg: testConfig(),
		particles: []Particle{
			// Negative angle: launched downward, gone immediately.
			{X: 400, Y: 600, Angle: -math.Pi / 3, Speed: 18},
		},
	}
	sim.Step()
	if !sim.Done() {
		t.Fatalf("downward particle survived below the viewport")
	}
}

func TestSimEndsWithinFrameBudget(t *testing.T) {
	cfg := testConfig()
	sim := NewSim(cfg, rand.New(rand.NewSource(2)))
	for i := 0; i < cfg.Frames; i++ {
		sim.Step()
	}
	if !sim.Done() {
		t.Fatalf("%d particles alive past the frame ceiling", len(sim.Particles()))
	}
}

func TestHorizontalWrap(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{810, 10},
		{-10, 790},
		{0, 0},
		{799.5, 799.5},
	}
	for _, tc := range cases {
		if got := wrap(tc.x, 800); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("wrap(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}
