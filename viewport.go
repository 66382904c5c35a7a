package meander

import "math"

// CameraQuery answers the viewport questions the window builder needs to
// convert an angular spread into a lateral world-space width, so dot spread
// is resolution-independent. Injected as a reference; the engine never
// mutates the camera.
type CameraQuery interface {
	// FOVDegrees is the vertical field of view in degrees.
	FOVDegrees() float64
	// Aspect is the viewport width/height ratio.
	Aspect() float64
	// ViewDistance is the assumed distance from the camera to the path, in
	// world units.
	ViewDistance() float64
}

// FixedCamera is a CameraQuery with constant answers. It is the default
// camera when none is injected.
type FixedCamera struct {
	FOV         float64 // vertical field of view in degrees
	AspectRatio float64
	Distance    float64
}

// FOVDegrees returns the fixed vertical field of view.
func (c FixedCamera) FOVDegrees() float64 { return c.FOV }

// Aspect returns the fixed aspect ratio.
func (c FixedCamera) Aspect() float64 { return c.AspectRatio }

// ViewDistance returns the fixed viewing distance.
func (c FixedCamera) ViewDistance() float64 { return c.Distance }

// lateralWidth returns the visible world-space width at the camera's viewing
// distance: 2·d·tan(fov/2)·aspect. Degenerate camera answers fall back to a
// fixed width so a broken collaborator cannot zero out the trail.
func lateralWidth(cam CameraQuery) float64 {
	fov := cam.FOVDegrees()
	aspect := cam.Aspect()
	dist := cam.ViewDistance()
	if fov <= 0 || fov >= 180 || aspect <= 0 || dist <= 0 {
		return 40
	}
	return 2 * dist * math.Tan(fov*math.Pi/360) * aspect
}
