package meander

import "math"

// Auto-snap candidate scoring weights. Magnetism attracts; distance from the
// current and predicted positions penalizes. Predicted proximity outweighs
// current proximity so the engine settles where the motion is heading, not
// where it happens to be mid-glide.
const (
	autoSnapMagnetWeight     = 1.0
	autoSnapProximityWeight  = 3.0
	autoSnapPredictionWeight = 5.0
)

// impulseEpsilon is the pending-impulse magnitude below which the impulse is
// considered fully decayed.
const impulseEpsilon = 1e-4

// integrate runs one free-motion physics step. Active only while no snap
// transition holds the position. dt is in seconds; all constants are tuned
// per nominal frame, so exponents and increments scale by dt/nominalFrame.
func (e *Engine) integrate(dt float64) {
	frames := dt / nominalFrame
	m := &e.motion

	// 1. Frame-rate-independent exponential friction.
	m.velocity *= math.Pow(e.cfg.Friction, frames)

	// 2. Fold in the pending impulse; decay it rather than consuming it, so
	// sustained input builds up springily.
	if m.pendingImpulse != 0 {
		m.velocity += m.pendingImpulse * e.cfg.FoldFactor * frames
		m.pendingImpulse *= math.Pow(e.cfg.ImpulseDecay, frames)
		if math.Abs(m.pendingImpulse) < impulseEpsilon {
			m.pendingImpulse = 0
		}
	}

	// 3. Magnetic pull, only when nearly stopped so it never fights a
	// strong scroll. Every section within SnapRadius contributes.
	if math.Abs(m.velocity) <= e.cfg.MagnetThreshold {
		for _, s := range e.sections.withinRadius(e.position, e.cfg.SnapRadius) {
			d := float64(s.Position) - e.position
			if d == 0 {
				continue
			}
			pull := (s.Magnetism / 100) * (1 - math.Abs(d)/e.cfg.SnapRadius) * e.cfg.MagnetStrength
			if d < 0 {
				pull = -pull
			}
			m.velocity += pull * frames
		}
	}

	// 4. Dead band and clamp.
	if math.Abs(m.velocity) < e.cfg.MinVelocity {
		m.velocity = 0
	} else {
		m.velocity = clamp(m.velocity, -e.cfg.MaxVelocity, e.cfg.MaxVelocity)
	}

	// 5. Position update, the sole position mutation in free mode. The
	// path has a start but no defined end.
	if m.velocity != 0 {
		prev := e.position
		e.position = math.Max(0, e.position+m.velocity*frames)
		if e.position != prev {
			e.onPositionChanged()
		}
	}

	e.maybeAutoSnap()
}

// maybeAutoSnap probes the section map once input has gone quiet and
// velocity has settled into the capture band, and hands off to the snap
// transition when a good candidate lies within the extended radius.
func (e *Engine) maybeAutoSnap() {
	m := &e.motion
	if m.continuousInput || m.snapping {
		return
	}
	speed := math.Abs(m.velocity)
	if speed <= e.cfg.CaptureMin || speed >= e.cfg.CaptureMax {
		return
	}

	lookAhead := math.Min(speed*e.cfg.LookAhead, e.cfg.LookAheadCap)
	predicted := e.position
	if m.velocity > 0 {
		predicted += lookAhead
	} else {
		predicted -= lookAhead
	}

	lo := math.Min(e.position, predicted) - e.cfg.ExtendedRadius
	hi := math.Max(e.position, predicted) + e.cfg.ExtendedRadius

	var best Section
	bestScore := math.Inf(-1)
	found := false
	for _, s := range e.sections.between(lo, hi) {
		if s.Magnetism < e.cfg.AutoSnapMagnetism {
			continue
		}
		proximity := math.Abs(float64(s.Position) - e.position)
		if proximity > e.cfg.ExtendedRadius {
			continue
		}
		prediction := math.Abs(float64(s.Position) - predicted)
		score := s.Magnetism*autoSnapMagnetWeight -
			proximity*autoSnapProximityWeight -
			prediction*autoSnapPredictionWeight
		if score > bestScore {
			bestScore = score
			best = s
			found = true
		}
	}
	if found {
		e.startSnap(best)
	}
}
