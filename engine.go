package meander

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
)

// Engine owns the path position and resolves input into motion. It is
// single-threaded and cooperative: all physics and rebuild work runs inside
// Update, which the host calls once per animation frame. Exactly one of
// free integration or the snap transition mutates the position in a given
// frame.
type Engine struct {
	cfg      Config
	sections sectionMap
	window   *windowBuilder
	notifier agentNotifier
	workload WorkloadSink
	audio    AudioSink

	position float64
	motion   motionState

	// clock is the engine's own monotonic time in seconds, advanced by
	// Update. Input-quiet detection polls deadlines against it, keeping the
	// whole engine deterministic under synthetic input.
	clock         float64
	quietDeadline float64

	snapTween  *gween.Tween
	snapTarget Section

	// spring smooths the camera-facing position behind the raw physics
	// position. Its coefficients are baked for a fixed timestep, so it is
	// rebuilt whenever dt changes; springDt tracks the baked value.
	spring    harmonica.Spring
	springDt  float64
	smoothPos float64
	smoothVel float64

	inject   []syntheticEvent
	disposed bool
	touch    touchState
}

// NewEngine validates the config and builds the section map, scene window
// builder, and collaborator wiring. Misconfiguration (zero or negative
// radii, spacings, out-of-range decay factors) is fatal and returns an
// error; absent collaborators are not errors and fall back to no-ops.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.withDefaults()

	e := &Engine{
		cfg:      cfg,
		sections: buildSectionMap(cfg.Horizon),
		notifier: newAgentNotifier(cfg.Background),
		workload: cfg.Workload,
		audio:    cfg.Audio,
	}
	e.window = newWindowBuilder(&e.cfg)

	// Populate the initial window and fire the agent-zero background
	// notification before the first frame.
	e.onPositionChanged()
	return e, nil
}

// Update advances the engine by dt seconds. Call once per frame. Exactly
// one of the free integrator or the snap transition runs; the quiet-period
// check and the smoothed-position spring run every frame.
func (e *Engine) Update(dt float64) {
	if e.disposed || dt <= 0 {
		return
	}
	e.clock += dt
	e.drainInjected()
	e.checkQuiet()

	if e.motion.snapping {
		e.snapTick(dt)
	} else {
		e.integrate(dt)
	}

	e.smoothTick(dt)
}

// smoothTick advances the smoothed-position spring by dt seconds. The spring
// step is derived from dt, so convergence is frame-rate independent like the
// rest of the physics; rebuilding is skipped while dt is stable, the common
// case under a fixed-TPS host.
func (e *Engine) smoothTick(dt float64) {
	if dt != e.springDt {
		e.spring = harmonica.NewSpring(dt, e.cfg.SpringFrequency, e.cfg.SpringDamping)
		e.springDt = dt
	}
	e.smoothPos, e.smoothVel = e.spring.Update(e.smoothPos, e.smoothVel, e.position)
}

// onPositionChanged rebuilds the scene window and runs the agent-transition
// check. Collaborator failures are logged and contained; they never corrupt
// motion state or halt the frame loop.
func (e *Engine) onPositionChanged() {
	guard("window rebuild", func() { e.window.rebuild(e.position) })
	e.notifier.check(e.position)
}

// CurrentPosition returns the raw path position.
func (e *Engine) CurrentPosition() float64 {
	return e.position
}

// SmoothedPosition returns the spring-smoothed path position intended for
// the camera, which trails the raw position for a softer glide.
func (e *Engine) SmoothedPosition() float64 {
	return e.smoothPos
}

// IsSnapping reports whether an eased snap transition is in flight.
func (e *Engine) IsSnapping() bool {
	return e.motion.snapping
}

// GetMotionState returns a snapshot of the engine's motion for UI use.
func (e *Engine) GetMotionState() MotionState {
	state := MotionState{
		IsActive: e.motion.continuousInput || e.motion.snapping || e.motion.velocity != 0,
		Velocity: e.motion.velocity,
	}
	if s, ok := e.sections.nearest(e.position); ok {
		state.NearestSectionLabel = e.sectionLabel(s)
	}
	return state
}

// sectionLabel names a section for display: agents by persona name, other
// types by kind and position.
func (e *Engine) sectionLabel(s Section) string {
	if s.Type == SectionAgent {
		if name := agentLabel(e.cfg.Agents, s.Position/agentSpacing); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%s %d", s.Type, s.Position)
}

// Dispose tears the engine down: the in-flight transition is cancelled, all
// pending input and timers are cleared, and every later call on the engine
// is a no-op. Hosts that wired global device listeners must detach them
// alongside this call to avoid leaking across scene remounts.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	if e.motion.snapping {
		e.CancelSnap()
	}
	e.motion = motionState{}
	e.touch = touchState{}
	e.inject = nil
	e.quietDeadline = 0
	e.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (e *Engine) IsDisposed() bool {
	return e.disposed
}
