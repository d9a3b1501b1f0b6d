package transformblend

import (
	"strconv"

	"github.com/solarlune/transformblend/math32"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system (right).
var WorldRight = Vector3{X: 1}

// WorldUp represents a unit vector in the global direction of +Y on the right-handed coordinate system (upwards).
var WorldUp = Vector3{Y: 1}

// WorldBackward represents a unit vector in the global direction of +Z on the right-handed coordinate system (backwards, towards the viewer).
var WorldBackward = Vector3{Z: 1}

// Vector3 represents a 3D Vector, used for positions, per-axis scale, and directions.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3 with each component multiplied by the scalar given.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Dot returns the dot product of the two Vector3s.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length (or nearly zero-length) Vector3 is returned as a zero Vector3.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return Vector3{}
	}
	vec.X /= l
	vec.Y /= l
	vec.Z /= l
	return vec
}

// Lerp returns a copy of the Vector3 linearly interpolated towards the other Vector3 by the percentage given.
// The percentage is not clamped.
func (vec Vector3) Lerp(other Vector3, percent float32) Vector3 {
	return Vector3{
		X: math32.Lerp(vec.X, other.X, percent),
		Y: math32.Lerp(vec.Y, other.Y, percent),
		Z: math32.Lerp(vec.Z, other.Z, percent),
	}
}

// Equals returns true if the two Vector3s are close enough in all values (within 0.0001).
func (vec Vector3) Equals(other Vector3) bool {
	eps := float32(0.0001)
	return math32.Abs(vec.X-other.X) <= eps &&
		math32.Abs(vec.Y-other.Y) <= eps &&
		math32.Abs(vec.Z-other.Z) <= eps
}

func (vec Vector3) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + "}"
}

// Vector4 represents a 4D Vector; it's mainly used for reading and writing individual rows and columns of a Matrix4.
type Vector4 struct {
	X, Y, Z, W float32
}

// Magnitude returns the length of the Vector4, including the W component.
func (vec Vector4) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z + vec.W*vec.W)
}

// Unit returns a copy of the Vector4, normalized. A zero-length Vector4 is returned as a zero Vector4.
func (vec Vector4) Unit() Vector4 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return Vector4{}
	}
	vec.X /= l
	vec.Y /= l
	vec.Z /= l
	vec.W /= l
	return vec
}

// Vector3 returns the first three components of the Vector4.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
