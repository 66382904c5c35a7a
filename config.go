package meander

import (
	"fmt"
	"time"
)

// nominalFrame is the reference frame duration the physics constants are
// tuned against. Integration scales exponents and increments by
// dt/nominalFrame so behavior is consistent under variable frame timing.
const nominalFrame = 1.0 / 60.0

// Config holds every tunable of the engine. Zero is not a usable value for
// most fields; start from DefaultConfig and override. NewEngine rejects
// invalid configurations with an error.
type Config struct {
	// Friction is the per-nominal-frame exponential velocity decay factor,
	// in (0, 1). Higher values coast longer.
	Friction float64
	// FoldFactor scales how much of the pending impulse folds into velocity
	// each nominal frame. The impulse itself decays by ImpulseDecay rather
	// than being consumed instantly, giving a springy buildup under
	// sustained input.
	FoldFactor float64
	// ImpulseDecay is the per-nominal-frame decay of the pending impulse,
	// in (0, 1).
	ImpulseDecay float64
	// MaxImpulse clamps a single input event's contribution to the pending
	// impulse, so one large wheel delta cannot cause a discontinuous jump.
	MaxImpulse float64
	// WheelScale converts a wheel deltaY (pixel-ish device units) into an
	// impulse.
	WheelScale float64
	// TouchScale converts a touch-drag delta in pixels into an impulse.
	TouchScale float64
	// TouchMomentum scales the residual drag velocity transferred into free
	// velocity when a touch is released.
	TouchMomentum float64
	// QuietPeriod is how long after the last continuous input event the
	// input is considered ended, un-gating auto-snap.
	QuietPeriod time.Duration

	// MinVelocity is the dead band: free velocities below it snap to
	// exactly zero.
	MinVelocity float64
	// MaxVelocity bounds free velocity in both directions.
	MaxVelocity float64
	// MagnetThreshold gates magnetic attraction: sections pull on the
	// position only while |velocity| is at or below it, so magnetism never
	// fights a strong scroll.
	MagnetThreshold float64
	// MagnetStrength scales the accumulated magnetic force.
	MagnetStrength float64
	// SnapRadius is the distance within which sections exert magnetic pull.
	SnapRadius float64

	// CaptureMin and CaptureMax delimit the velocity band in which the
	// auto-snap probe runs once continuous input has ended.
	CaptureMin float64
	CaptureMax float64
	// LookAhead multiplies current velocity to predict where the position
	// is heading when scoring auto-snap candidates.
	LookAhead float64
	// LookAheadCap bounds the look-ahead prediction distance.
	LookAheadCap float64
	// ExtendedRadius is the maximum distance at which an auto-snap
	// candidate may be captured.
	ExtendedRadius float64
	// AutoSnapMagnetism is the minimum section magnetism considered by the
	// auto-snap probe.
	AutoSnapMagnetism float64

	// Horizon is the highest integer path position the section map covers.
	Horizon int
	// WindowRadius is the half-width, in rows, of the rebuilt scene window.
	WindowRadius int
	// DotsPerRow is the number of lateral dot markers emitted per row.
	DotsPerRow int
	// RowDepth is the world-space Z distance between consecutive rows.
	RowDepth float64
	// CurveStartRow is the row before which the trail is held flat.
	CurveStartRow int
	// CurveRampRows is the number of rows over which the helical curve
	// eases in past CurveStartRow.
	CurveRampRows int

	// EdgeClickFraction is the fraction of the screen width on each side
	// that acts as a previous/next agent click zone.
	EdgeClickFraction float64
	// ReservedZones are screen rectangles the click interpreter ignores
	// (e.g. an overlay control cluster).
	ReservedZones []Rect

	// SpringFrequency and SpringDamping tune the harmonica spring that
	// produces SmoothedPosition, the camera-facing glide behind the raw
	// physics position.
	SpringFrequency float64
	SpringDamping   float64

	// Agents is the persona roster. Agent panels cycle through it; its
	// length bounds forward agent jumps. Defaults to DefaultAgents.
	Agents []string

	// Camera answers field-of-view queries used to convert an angular
	// spread into a lateral world-space width. Defaults to a FixedCamera.
	Camera CameraQuery

	// Dots, Decor and Labels receive the rebuilt scene window via
	// clear-and-repopulate. Each defaults to a private SliceGroup.
	Dots   SceneGroup
	Decor  SceneGroup
	Labels SceneGroup

	// Background, Workload and Audio are optional capability sinks.
	// Each defaults to a no-op.
	Background BackgroundSink
	Workload   WorkloadSink
	Audio      AudioSink
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		Friction:      0.94,
		FoldFactor:    0.12,
		ImpulseDecay:  0.82,
		MaxImpulse:    1.5,
		WheelScale:    0.01,
		TouchScale:    0.02,
		TouchMomentum: 0.9,
		QuietPeriod:   180 * time.Millisecond,

		MinVelocity:     0.02,
		MaxVelocity:     3.5,
		MagnetThreshold: 0.8,
		MagnetStrength:  0.02,
		SnapRadius:      6,

		CaptureMin:        0.1,
		CaptureMax:        2.0,
		LookAhead:         2.0,
		LookAheadCap:      25,
		ExtendedRadius:    20,
		AutoSnapMagnetism: 55,

		Horizon:       2400,
		WindowRadius:  30,
		DotsPerRow:    6,
		RowDepth:      2.0,
		CurveStartRow: 12,
		CurveRampRows: 10,

		EdgeClickFraction: 0.15,

		SpringFrequency: 4.5,
		SpringDamping:   0.9,
	}
}

// validate rejects fatal misconfiguration at construction time.
func (c *Config) validate() error {
	switch {
	case c.Friction <= 0 || c.Friction >= 1:
		return fmt.Errorf("meander: Friction must be in (0, 1), got %v", c.Friction)
	case c.ImpulseDecay <= 0 || c.ImpulseDecay >= 1:
		return fmt.Errorf("meander: ImpulseDecay must be in (0, 1), got %v", c.ImpulseDecay)
	case c.MaxImpulse <= 0:
		return fmt.Errorf("meander: MaxImpulse must be positive, got %v", c.MaxImpulse)
	case c.MaxVelocity <= 0:
		return fmt.Errorf("meander: MaxVelocity must be positive, got %v", c.MaxVelocity)
	case c.MinVelocity < 0 || c.MinVelocity >= c.MaxVelocity:
		return fmt.Errorf("meander: MinVelocity must be in [0, MaxVelocity), got %v", c.MinVelocity)
	case c.SnapRadius <= 0:
		return fmt.Errorf("meander: SnapRadius must be positive, got %v", c.SnapRadius)
	case c.ExtendedRadius <= 0:
		return fmt.Errorf("meander: ExtendedRadius must be positive, got %v", c.ExtendedRadius)
	case c.CaptureMin < 0 || c.CaptureMax <= c.CaptureMin:
		return fmt.Errorf("meander: capture band [%v, %v] is empty", c.CaptureMin, c.CaptureMax)
	case c.QuietPeriod <= 0:
		return fmt.Errorf("meander: QuietPeriod must be positive, got %v", c.QuietPeriod)
	case c.Horizon <= 0:
		return fmt.Errorf("meander: Horizon must be positive, got %d", c.Horizon)
	case c.WindowRadius <= 0:
		return fmt.Errorf("meander: WindowRadius must be positive, got %d", c.WindowRadius)
	case c.DotsPerRow < 2:
		return fmt.Errorf("meander: DotsPerRow must be at least 2, got %d", c.DotsPerRow)
	case c.RowDepth <= 0:
		return fmt.Errorf("meander: RowDepth must be positive, got %v", c.RowDepth)
	case c.EdgeClickFraction <= 0 || c.EdgeClickFraction >= 0.5:
		return fmt.Errorf("meander: EdgeClickFraction must be in (0, 0.5), got %v", c.EdgeClickFraction)
	}
	return nil
}

// withDefaults fills nil collaborator fields with their fallbacks.
func (c *Config) withDefaults() {
	if c.Agents == nil {
		c.Agents = DefaultAgents
	}
	if c.Camera == nil {
		c.Camera = FixedCamera{FOV: 60, AspectRatio: 16.0 / 9.0, Distance: 50}
	}
	if c.Dots == nil {
		c.Dots = &SliceGroup{}
	}
	if c.Decor == nil {
		c.Decor = &SliceGroup{}
	}
	if c.Labels == nil {
		c.Labels = &SliceGroup{}
	}
	if c.Background == nil {
		c.Background = NoopBackground{}
	}
	if c.Workload == nil {
		c.Workload = NoopWorkload{}
	}
	if c.Audio == nil {
		c.Audio = NoopAudio{}
	}
}
