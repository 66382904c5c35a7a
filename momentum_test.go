package meander

import (
	"math"
	"testing"
)

// newTestEngine builds an engine from DefaultConfig with any overrides
// applied before construction.
func newTestEngine(t *testing.T, override func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if override != nil {
		override(&cfg)
	}
	eng, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}

// step advances the engine by n nominal frames.
func step(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Update(nominalFrame)
	}
}

func TestPositionNeverNegative(t *testing.T) {
	eng := newTestEngine(t, nil)

	// Hammer the engine backward from the start of the path.
	for i := 0; i < 120; i++ {
		eng.SubmitImpulse(-1.5)
		eng.Update(nominalFrame)
		if eng.CurrentPosition() < 0 {
			t.Fatalf("position went negative: %f", eng.CurrentPosition())
		}
	}
}

func TestFrictionDecayMonotonicAndBounded(t *testing.T) {
	eng := newTestEngine(t, func(c *Config) {
		c.MagnetStrength = 0      // isolate friction
		c.AutoSnapMagnetism = 101 // no section qualifies; free decay only
	})
	eng.position = 500
	eng.motion.velocity = 2.5

	prev := math.Abs(eng.motion.velocity)
	steps := 0
	for eng.motion.velocity != 0 {
		eng.Update(nominalFrame)
		v := math.Abs(eng.motion.velocity)
		if v > prev {
			t.Fatalf("|velocity| increased from %f to %f", prev, v)
		}
		prev = v
		steps++
		if steps > 2000 {
			t.Fatal("velocity never reached exactly 0")
		}
	}
}

func TestVelocityClampedToMax(t *testing.T) {
	eng := newTestEngine(t, nil)

	for i := 0; i < 300; i++ {
		eng.SubmitImpulse(1.5)
		eng.Update(nominalFrame)
		if v := math.Abs(eng.motion.velocity); v > eng.cfg.MaxVelocity {
			t.Fatalf("|velocity| = %f exceeds MaxVelocity %f", v, eng.cfg.MaxVelocity)
		}
	}
}

func TestMagnetismOnlyNearRest(t *testing.T) {
	// Fast: friction only, no magnetic contribution.
	fast := newTestEngine(t, nil)
	fast.position = 61 // next to the strong agent at 60
	fast.motion.velocity = 3.0
	fast.integrate(nominalFrame)
	wantFast := 3.0 * fast.cfg.Friction
	if diff := math.Abs(fast.motion.velocity - wantFast); diff > 1e-9 {
		t.Errorf("fast velocity = %f, want friction-only %f", fast.motion.velocity, wantFast)
	}

	// Nearly stopped: the agent at 60 pulls backward from 61. The dead band
	// is lowered so the tiny magnetic force survives the clamp.
	slow := newTestEngine(t, func(c *Config) { c.MinVelocity = 0 })
	slow.position = 61
	slow.motion.velocity = 0
	slow.motion.continuousInput = true // hold off auto-snap
	slow.quietDeadline = math.Inf(1)
	slow.integrate(nominalFrame)
	if slow.position >= 61 {
		t.Errorf("magnetism should pull position backward toward 60, got %f", slow.position)
	}
}

func TestMagnetismAccumulatesAllNeighbors(t *testing.T) {
	eng := newTestEngine(t, func(c *Config) { c.MinVelocity = 0 })

	// At 4.5 the micro sections at 3 and 6 cancel exactly; the agent at 0
	// and the decorative at 8 remain, and the agent outpulls. If only the
	// nearest section contributed, the pull would be zero here.
	eng.position = 4.5
	eng.motion.velocity = 0
	eng.motion.continuousInput = true
	eng.quietDeadline = math.Inf(1)
	eng.integrate(nominalFrame)

	if eng.motion.velocity >= 0 {
		t.Errorf("expected net backward pull at 4.5, velocity = %f", eng.motion.velocity)
	}
}

func TestAutoSnapGatedByContinuousInput(t *testing.T) {
	eng := newTestEngine(t, nil)
	eng.position = 10

	// Velocity in the capture band but input still active: no snap.
	eng.markActive()
	eng.motion.velocity = 0.5
	eng.Update(nominalFrame)
	if eng.IsSnapping() {
		t.Fatal("auto-snap must not fire while continuous input is active")
	}

	// Let the quiet period elapse; the probe may now fire.
	for i := 0; i < 30 && !eng.IsSnapping(); i++ {
		eng.motion.velocity = 0.5 // hold inside the capture band
		eng.Update(nominalFrame)
	}
	if !eng.IsSnapping() {
		t.Fatal("auto-snap should fire once input has gone quiet")
	}
}

func TestAutoSnapSkipsOutsideCaptureBand(t *testing.T) {
	eng := newTestEngine(t, nil)
	eng.position = 10

	eng.motion.velocity = 3.0 // above CaptureMax
	eng.maybeAutoSnap()
	if eng.IsSnapping() {
		t.Error("auto-snap fired above the capture band")
	}

	eng.motion.velocity = 0.05 // below CaptureMin
	eng.maybeAutoSnap()
	if eng.IsSnapping() {
		t.Error("auto-snap fired below the capture band")
	}
}

func TestAutoSnapPrefersStrongMagnetism(t *testing.T) {
	eng := newTestEngine(t, nil)
	eng.position = 55
	eng.motion.velocity = 0.5

	eng.maybeAutoSnap()
	if !eng.IsSnapping() {
		t.Fatal("expected auto-snap near the agent at 60")
	}
	if eng.snapTarget.Magnetism < eng.cfg.AutoSnapMagnetism {
		t.Errorf("snapped to magnetism %f, below threshold %f",
			eng.snapTarget.Magnetism, eng.cfg.AutoSnapMagnetism)
	}
	if eng.snapTarget.Position != 60 {
		t.Errorf("snap target = %d, want the agent at 60", eng.snapTarget.Position)
	}
}

func TestWheelImpulseScenario(t *testing.T) {
	eng := newTestEngine(t, nil)

	// A single wheel notch, deltaY = 120, no modifiers.
	if !eng.Wheel(120, 0) {
		t.Fatal("wheel event without modifiers must be consumed")
	}

	sawPositive := false
	for i := 0; i < 600; i++ {
		eng.Update(nominalFrame)
		v := eng.motion.velocity
		if v > 0 {
			sawPositive = true
		}
		if math.Abs(v) > eng.cfg.MaxVelocity {
			t.Fatalf("velocity %f exceeds MaxVelocity", v)
		}
		if eng.IsSnapping() {
			break
		}
	}
	if !sawPositive {
		t.Fatal("wheel impulse should produce positive velocity")
	}
	if !eng.IsSnapping() {
		t.Fatal("engine should auto-snap after the input-quiet timeout")
	}
	if eng.snapTarget.Magnetism < 55 {
		t.Errorf("auto-snap target magnetism = %f, want >= 55", eng.snapTarget.Magnetism)
	}

	// Run the transition out; position must land exactly on the target.
	step(eng, 600)
	if eng.CurrentPosition() != float64(eng.snapTarget.Position) {
		t.Errorf("settled at %f, want %d", eng.CurrentPosition(), eng.snapTarget.Position)
	}
}
