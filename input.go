package meander

import "math"

// touchState tracks the active touch drag so that residual momentum can be
// transferred on release.
type touchState struct {
	active   bool
	lastY    float64
	velocity float64 // smoothed impulse of the most recent move events
}

// touchVelocitySmoothing is the EMA factor for the tracked drag velocity.
const touchVelocitySmoothing = 0.6

// SubmitImpulse adds a continuous impulse to the pending impulse, clamped to
// ±MaxImpulse per call, and marks continuous input active. This is the raw
// input port; Wheel, TouchMove and the synthetic Inject* helpers all funnel
// through it.
func (e *Engine) SubmitImpulse(amount float64) {
	if e.disposed {
		return
	}
	amount = clamp(amount, -e.cfg.MaxImpulse, e.cfg.MaxImpulse)
	e.motion.pendingImpulse += amount
	e.markActive()
}

// SubmitJump requests an eased snap to the next (dir > 0) or previous
// (dir < 0) agent section. While a snap is in flight the jump resolves
// relative to the in-flight target rather than the interpolated position, so
// repeated presses advance one agent each. Out-of-range requests, such as a
// backward jump at the start of the path, are a no-op and report false.
func (e *Engine) SubmitJump(dir int) bool {
	if e.disposed {
		return false
	}
	from := e.position
	if e.motion.snapping {
		from = float64(e.snapTarget.Position)
	}
	target, ok := e.sections.next(from, dir, sectionFilter{agentsOnly: true})
	if !ok {
		return false
	}
	e.startSnap(target)
	return true
}

// Wheel feeds a wheel event into the engine. deltaY follows browser
// convention: positive scrolls forward along the path. Events with Ctrl or
// Meta held are ignored and report false, letting the host pass them
// through to its own zoom handling.
func (e *Engine) Wheel(deltaY float64, mods KeyModifiers) bool {
	if e.disposed || mods&(ModCtrl|ModMeta) != 0 {
		return false
	}
	e.SubmitImpulse(deltaY * e.cfg.WheelScale)
	return true
}

// KeyDown feeds a navigation key press into the engine. Reports whether the
// key was consumed.
func (e *Engine) KeyDown(key Key) bool {
	if e.disposed {
		return false
	}
	switch key {
	case KeyArrowDown, KeyArrowRight, KeyPageDown, KeySpace:
		return e.SubmitJump(1)
	case KeyArrowUp, KeyArrowLeft, KeyPageUp:
		return e.SubmitJump(-1)
	case KeyHome:
		if start, ok := e.sections.nearest(0); ok {
			e.startSnap(start)
			return true
		}
	}
	return false
}

// TouchStart begins tracking a touch drag at screen y.
func (e *Engine) TouchStart(y float64) {
	if e.disposed {
		return
	}
	e.touch = touchState{active: true, lastY: y}
	e.markActive()
}

// TouchMove advances the tracked drag. Dragging upward (decreasing y) moves
// forward along the path, matching natural touch scrolling.
func (e *Engine) TouchMove(y float64) {
	if e.disposed || !e.touch.active {
		return
	}
	delta := e.touch.lastY - y
	e.touch.lastY = y
	impulse := clamp(delta*e.cfg.TouchScale, -e.cfg.MaxImpulse, e.cfg.MaxImpulse)
	e.touch.velocity = e.touch.velocity*(1-touchVelocitySmoothing) + impulse*touchVelocitySmoothing
	e.SubmitImpulse(impulse)
}

// TouchEnd releases the drag and transfers scaled residual velocity into
// free motion, so a flick keeps coasting.
func (e *Engine) TouchEnd() {
	if e.disposed || !e.touch.active {
		return
	}
	e.motion.velocity = clamp(
		e.motion.velocity+e.touch.velocity*e.cfg.TouchMomentum,
		-e.cfg.MaxVelocity, e.cfg.MaxVelocity)
	e.touch = touchState{}
	// Re-arm the quiet deadline instead of ending input immediately, so the
	// release itself cannot double-trigger a snap.
	e.markActive()
}

// Click interprets a click at screen position (x, y) in a width×height
// viewport. Clicks inside a reserved zone are ignored. Clicks in the left
// edge band jump to the nearest preceding agent section, the right edge band
// to the next one. Reports whether the click was consumed.
func (e *Engine) Click(x, y, width, height float64) bool {
	if e.disposed || width <= 0 || height <= 0 {
		return false
	}
	for _, zone := range e.cfg.ReservedZones {
		if zone.Contains(x, y) {
			return false
		}
	}
	edge := width * e.cfg.EdgeClickFraction
	switch {
	case x <= edge:
		return e.SubmitJump(-1)
	case x >= width-edge:
		return e.SubmitJump(1)
	}
	return false
}

// markActive flags continuous input and re-arms the quiet deadline. The
// deadline is frame-polled by Update; re-arming replaces any pending expiry,
// so overlapping input bursts cannot fire duplicate input-ended signals.
func (e *Engine) markActive() {
	e.motion.continuousInput = true
	e.quietDeadline = e.clock + e.cfg.QuietPeriod.Seconds()
}

// checkQuiet fires the input-ended signal once the quiet period has elapsed
// with no new continuous input.
func (e *Engine) checkQuiet() {
	if e.motion.continuousInput && e.clock >= e.quietDeadline {
		e.motion.continuousInput = false
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
