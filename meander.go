package meander

// Vec3 is a 3D vector used for trail geometry positions. The path advances
// along +Z; X is lateral offset and Y is elevation.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle in screen space. The coordinate system
// has its origin at the top-left, with Y increasing downward. Used for
// reserved click zones.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a navigation key understood by the engine's keyboard port.
type Key uint8

const (
	KeyArrowUp    Key = iota // jump to previous agent section
	KeyArrowDown             // jump to next agent section
	KeyArrowLeft             // jump to previous agent section
	KeyArrowRight            // jump to next agent section
	KeyPageUp                // jump to previous agent section
	KeyPageDown              // jump to next agent section
	KeySpace                 // jump to next agent section
	KeyHome                  // snap back to the start of the path
)

// MotionState is a read-only snapshot of the engine's motion, suitable for
// driving UI indicators (scroll hints, section labels).
type MotionState struct {
	// IsActive is true while the position is being driven: continuous input
	// is held, free velocity is nonzero, or a snap transition is running.
	IsActive bool
	// Velocity is the current free-mode velocity in path units per nominal
	// frame. Zero while snapping.
	Velocity float64
	// NearestSectionLabel names the section closest to the current position,
	// e.g. an agent persona name or "milestone 40". Empty if the map is empty.
	NearestSectionLabel string
}

// motionState is the engine's internal motion bookkeeping. isSnapping and
// free-running integration are mutually exclusive: while snapping, velocity
// is pinned to zero and magnetism is not applied.
type motionState struct {
	velocity        float64
	pendingImpulse  float64
	continuousInput bool
	snapping        bool
}
