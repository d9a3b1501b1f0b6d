package transformblend

import "github.com/solarlune/transformblend/math32"

// OrbitCamera is a perspective camera that circles a target point, always looking at it. It's used to project
// Lines onto a 2D screen so blends can be looked at from any side.
type OrbitCamera struct {
	Target      Vector3 // The point the camera circles and looks at
	Distance    float32 // Distance from the target
	Yaw         float32 // Rotation around the target's Y axis, in radians
	Pitch       float32 // Tilt above (positive) or below (negative) the target, in radians
	FieldOfView float32 // Vertical field of view, in degrees
	Near, Far   float32 // Clipping planes
}

// NewOrbitCamera returns an OrbitCamera looking at the origin from slightly above and to the side.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:    4,
		Yaw:         0.6,
		Pitch:       0.4,
		FieldOfView: 60,
		Near:        0.1,
		Far:         100,
	}
}

// Orbit rotates the camera around its target by the yaw and pitch given (in radians). Pitch is clamped to just short
// of straight up or down.
func (camera *OrbitCamera) Orbit(yaw, pitch float32) {
	camera.Yaw += yaw
	camera.Pitch = math32.Clamp(camera.Pitch+pitch, -math32.Pi/2+0.1, math32.Pi/2-0.1)
}

// Position returns the camera's position in world space.
func (camera *OrbitCamera) Position() Vector3 {
	tilt := NewMatrix4Rotate(1, 0, 0, -camera.Pitch)
	rotate := NewMatrix4Rotate(0, 1, 0, camera.Yaw)
	offset := rotate.Mult(tilt).MultVec(Vector3{Z: camera.Distance})
	return camera.Target.Add(offset)
}

// ViewMatrix returns the Matrix4 that transforms world space into the camera's view space.
func (camera *OrbitCamera) ViewMatrix() Matrix4 {
	return NewViewMatrix(camera.Position(), camera.Target, WorldUp)
}

// Projection returns the camera's perspective projection for a view of the given size.
func (camera *OrbitCamera) Projection(width, height float32) Matrix4 {
	return NewProjectionPerspective(camera.FieldOfView, camera.Near, camera.Far, width, height)
}

// WorldToScreen transforms a 3D position in the world to a position onscreen, with X and Y in pixels from the top-left of a
// view of the given size, and Z being the depth after projection. The boolean is false if the point lies behind the near
// clipping plane, in which case it can't be drawn.
func (camera *OrbitCamera) WorldToScreen(point Vector3, width, height float32) (Vector3, bool) {

	clip := camera.Projection(width, height).Mult(camera.ViewMatrix()).MultVecW(point)

	if clip.W < camera.Near {
		return Vector3{}, false
	}

	return Vector3{
		X: (clip.X/clip.W + 1) * width / 2,
		Y: (1 - clip.Y/clip.W) * height / 2,
		Z: clip.Z / clip.W,
	}, true

}
