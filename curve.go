package meander

import "math"

// Curve shape constants. The trail is a loose helix: a primary cosine/sine
// pair at a fixed angular speed, with two higher-frequency harmonics layered
// in for organic variation.
const (
	curveAngularSpeed = 0.055 // radians per row

	lateralAmplitude  = 14.0
	lateralHarmonic2  = 0.35 // weight of the second lateral harmonic
	lateralHarmonic3  = 0.15 // weight of the third lateral harmonic
	lateralFrequency2 = 2.3
	lateralFrequency3 = 4.1

	elevationAmplitude  = 6.0
	elevationFrequency  = 0.8
	elevationHarmonic   = 0.25
	elevationFrequency2 = 3.7
)

// smootherstep is the quintic easing 6t⁵−15t⁴+10t³, clamped to [0, 1].
// Both endpoints have zero first and second derivatives, so the curve ramp
// blends into the flat intro without a visible kink.
func smootherstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * t * (t*(t*6-15) + 10)
}

// pathCurve computes the deterministic lateral offset and elevation of a
// trail row. Rows before startRow are held flat; the helix then eases in
// over rampRows rows.
type pathCurve struct {
	startRow int
	rampRows int
}

// ramp returns the curve amplitude factor in [0, 1] for a row.
func (c pathCurve) ramp(row int) float64 {
	if c.rampRows <= 0 {
		if row < c.startRow {
			return 0
		}
		return 1
	}
	return smootherstep(float64(row-c.startRow) / float64(c.rampRows))
}

// at returns the lateral offset and elevation of a row. Pure function of
// the row index: two calls with the same row always agree.
func (c pathCurve) at(row int) (lateral, elevation float64) {
	theta := float64(row) * curveAngularSpeed
	lateral = lateralAmplitude * (math.Cos(theta) +
		lateralHarmonic2*math.Sin(theta*lateralFrequency2) +
		lateralHarmonic3*math.Cos(theta*lateralFrequency3))
	elevation = elevationAmplitude * (math.Sin(theta*elevationFrequency) +
		elevationHarmonic*math.Sin(theta*elevationFrequency2))

	r := c.ramp(row)
	return lateral * r, elevation * r
}
