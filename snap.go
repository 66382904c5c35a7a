package meander

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// snapDistanceRef is the travel distance at which the snap duration reaches
// twice its base value. Durations are capped there so far jumps never turn
// into excessively long glides.
const snapDistanceRef = 60.0

// startSnap kills any in-flight transition and begins an eased glide to the
// target section. Velocity and the pending impulse are zeroed; free
// integration is suspended until the transition completes or is cancelled.
func (e *Engine) startSnap(target Section) {
	wasSnapping := e.motion.snapping
	e.snapTween = nil

	e.motion.velocity = 0
	e.motion.pendingImpulse = 0
	e.motion.snapping = true
	e.snapTarget = target

	if !wasSnapping {
		guard("workload sink", func() { e.workload.SetReducedWorkMode(true) })
	}

	distance := math.Abs(float64(target.Position) - e.position)
	duration := target.SnapDuration * (1 + distance/snapDistanceRef)
	duration = math.Min(duration, 2*target.SnapDuration)

	if distance == 0 || duration <= 0 {
		// Degenerate transition: assign instantly rather than failing.
		e.position = float64(target.Position)
		e.onPositionChanged()
		e.finishSnap()
		return
	}

	e.snapTween = gween.New(float32(e.position), float32(target.Position), float32(duration), ease.OutCubic)
}

// snapTick advances the eased transition by dt seconds. The final tick
// assigns the target position exactly, so completion is never subject to
// float32 interpolation error.
func (e *Engine) snapTick(dt float64) {
	if e.snapTween == nil {
		// Lost the tween backend mid-flight; degrade to instant assignment.
		e.position = float64(e.snapTarget.Position)
		e.onPositionChanged()
		e.finishSnap()
		return
	}
	value, done := e.snapTween.Update(float32(dt))
	e.position = float64(value)
	if done {
		e.position = float64(e.snapTarget.Position)
	}
	e.onPositionChanged()
	if done {
		e.finishSnap()
	}
}

// finishSnap returns the engine to free motion and fires the arrival side
// effects: the workload hint is lifted, and arriving at an agent section
// plays the transition cue exactly once.
func (e *Engine) finishSnap() {
	e.snapTween = nil
	e.motion.snapping = false
	guard("workload sink", func() { e.workload.SetReducedWorkMode(false) })
	if e.snapTarget.Type == SectionAgent {
		guard("audio sink", func() { e.audio.PlayTransitionCue() })
	}
}

// CancelSnap kills an in-flight snap transition, leaving the engine idle
// with zero velocity at whatever position the glide had reached. No-op when
// not snapping.
func (e *Engine) CancelSnap() {
	if !e.motion.snapping {
		return
	}
	e.snapTween = nil
	e.motion.snapping = false
	e.motion.velocity = 0
	guard("workload sink", func() { e.workload.SetReducedWorkMode(false) })
}

// SnapToSection requests an eased snap to the section at the given integer
// position, e.g. from an agent panel click. Positions without a section
// resolve to the nearest one. Reports false when the map is empty.
func (e *Engine) SnapToSection(position int) bool {
	if e.disposed {
		return false
	}
	target, ok := e.sections.nearest(float64(position))
	if !ok {
		return false
	}
	e.startSnap(target)
	return true
}
