package transformblend

import (
	"errors"
	"strings"

	"github.com/solarlune/transformblend/math32"
)

// Quaternion represents a rotation as a 4D value. Only unit-length Quaternions represent valid rotations.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns a new Quaternion with the components given.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns a Quaternion that represents no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionAxisAngle returns a Quaternion that rotates counter-clockwise around the provided axis by the angle given (in radians).
// A zero-length axis gives an identity Quaternion.
func NewQuaternionAxisAngle(axis Vector3, angle float32) Quaternion {
	axis = axis.Unit()
	if axis == (Vector3{}) {
		return NewQuaternionIdentity()
	}
	s := math32.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(angle / 2),
	}
}

func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Negated returns the Quaternion with all four components negated. This represents the same rotation, but
// lies on the opposite side of the 4D hypersphere.
func (quat Quaternion) Negated() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, -quat.W}
}

// Scaled returns the Quaternion with every component multiplied by the scalar given.
func (quat Quaternion) Scaled(scalar float32) Quaternion {
	return Quaternion{quat.X * scalar, quat.Y * scalar, quat.Z * scalar, quat.W * scalar}
}

// Add adds the other Quaternion component-wise.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{quat.X + other.X, quat.Y + other.Y, quat.Z + other.Z, quat.W + other.W}
}

func (quat Quaternion) Magnitude() float32 {
	return math32.Sqrt(quat.Dot(quat))
}

// Unit returns the Quaternion normalized to a length of 1. A zero-length Quaternion returns an identity Quaternion.
func (quat Quaternion) Unit() Quaternion {
	m := quat.Magnitude()
	if m < 1e-8 {
		return NewQuaternionIdentity()
	}
	return quat.Scaled(1 / m)
}

// Conjugate returns the Quaternion with its vector part negated; for a unit Quaternion, this is the inverse rotation.
func (quat Quaternion) Conjugate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Mult returns the Hamilton product of the two Quaternions; the result rotates by other first, and then by quat.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Angle returns the angular distance (in radians, from 0 to Pi) between the rotations represented by the two Quaternions.
// Since q and -q are the same rotation, the shorter of the two possible arcs is always measured.
func (quat Quaternion) Angle(other Quaternion) float32 {
	diff := quat.Unit().Conjugate().Mult(other.Unit())
	// atan2 stays accurate for tiny angles, where acos of the dot product does not.
	v := math32.Sqrt(diff.X*diff.X + diff.Y*diff.Y + diff.Z*diff.Z)
	return 2 * math32.Atan2(v, math32.Abs(diff.W))
}

// Equals returns true if the two Quaternions' components are within 0.0001 of each other. Note that q and -q are the same rotation, but
// are not considered equal here.
func (quat Quaternion) Equals(other Quaternion) bool {
	eps := float32(0.0001)
	return math32.Abs(quat.X-other.X) <= eps &&
		math32.Abs(quat.Y-other.Y) <= eps &&
		math32.Abs(quat.Z-other.Z) <= eps &&
		math32.Abs(quat.W-other.W) <= eps
}

func (quat Quaternion) String() string {
	return "{" + formatFloat(quat.X) + ", " + formatFloat(quat.Y) + ", " + formatFloat(quat.Z) + ", " + formatFloat(quat.W) + "}"
}

// quaternionBranch indicates which Quaternion component had the largest trace term when extracting a Quaternion
// from a rotation matrix; that component is solved for directly and the other three are derived from it.
type quaternionBranch int

const (
	branchW quaternionBranch = iota
	branchX
	branchY
	branchZ
)

func (b quaternionBranch) String() string {
	switch b {
	case branchX:
		return "X"
	case branchY:
		return "Y"
	case branchZ:
		return "Z"
	}
	return "W"
}

// selectBranch returns the branch with the largest trace term. Ties go to the earliest branch in W, X, Y, Z order.
func selectBranch(m Matrix4) (quaternionBranch, float32) {

	traces := [4]float32{
		m[0][0] + m[1][1] + m[2][2], // W
		m[0][0] - m[1][1] - m[2][2], // X
		m[1][1] - m[0][0] - m[2][2], // Y
		m[2][2] - m[0][0] - m[1][1], // Z
	}

	biggest := branchW
	for b := branchX; b <= branchZ; b++ {
		if traces[b] > traces[biggest] {
			biggest = b
		}
	}

	return biggest, traces[biggest]

}

// branchFormulas solves the three remaining components for each branch, given the solved component s and the scaling factor (0.25 / s).
var branchFormulas = [4]func(m Matrix4, s, factor float32) Quaternion{
	branchW: func(m Matrix4, s, factor float32) Quaternion {
		return Quaternion{
			X: (m[2][1] - m[1][2]) * factor,
			Y: (m[0][2] - m[2][0]) * factor,
			Z: (m[1][0] - m[0][1]) * factor,
			W: s,
		}
	},
	branchX: func(m Matrix4, s, factor float32) Quaternion {
		return Quaternion{
			X: s,
			Y: (m[1][0] + m[0][1]) * factor,
			Z: (m[0][2] + m[2][0]) * factor,
			W: (m[2][1] - m[1][2]) * factor,
		}
	},
	branchY: func(m Matrix4, s, factor float32) Quaternion {
		return Quaternion{
			X: (m[1][0] + m[0][1]) * factor,
			Y: s,
			Z: (m[2][1] + m[1][2]) * factor,
			W: (m[0][2] - m[2][0]) * factor,
		}
	},
	branchZ: func(m Matrix4, s, factor float32) Quaternion {
		return Quaternion{
			X: (m[0][2] + m[2][0]) * factor,
			Y: (m[2][1] + m[1][2]) * factor,
			Z: s,
			W: (m[1][0] - m[0][1]) * factor,
		}
	},
}

// QuaternionFromMatrix returns a Quaternion representing the rotation of the Matrix4's basis. The first three columns are normalized
// first, so scale is discarded; shear is not corrected for, so the result is only meaningful when the basis is orthogonal.
// A zero-length column is left as a zero vector rather than producing NaNs.
// The returned Quaternion is not re-normalized.
func QuaternionFromMatrix(m Matrix4) Quaternion {

	for i := 0; i < 3; i++ {
		m.SetColumn(i, m.Column(i).Unit())
	}

	branch, trace := selectBranch(m)

	s := math32.Sqrt(math32.Max(trace+1, 0)) * 0.5

	var factor float32
	if s > 0 {
		factor = 0.25 / s
	}

	return branchFormulas[branch](m, s, factor)

}

// ToMatrix4 returns a rotation Matrix4 representative of the Quaternion. The Quaternion should be of unit length.
func (quat Quaternion) ToMatrix4() Matrix4 {

	x2, y2, z2 := quat.X*2, quat.Y*2, quat.Z*2
	xx, yy, zz := quat.X*x2, quat.Y*y2, quat.Z*z2
	xy, xz, yz := quat.X*y2, quat.X*z2, quat.Y*z2
	wx, wy, wz := quat.W*x2, quat.W*y2, quat.W*z2

	// This is the row-vector expansion; transposing it gives the column-vector rotation matrix used everywhere else.
	m := Matrix4{
		{1 - (yy + zz), xy + wz, xz - wy, 0},
		{xy - wz, 1 - (xx + zz), yz + wx, 0},
		{xz + wy, yz - wx, 1 - (xx + yy), 0},
		{0, 0, 0, 1},
	}

	return m.Transposed()

}

// SlerpMode selects how Slerp treats two Quaternions that lie on opposite halves of the hypersphere (having a negative dot product).
type SlerpMode int

const (
	// SlerpShortestPath negates the destination Quaternion when the dot product is negative, so interpolation always
	// follows the shorter arc between the two rotations.
	SlerpShortestPath SlerpMode = iota
	// SlerpLiteral leaves both Quaternions untouched, which takes the long way around for Quaternions with a negative dot product.
	// This reproduces a visualizer that computed the negated Quaternion but never used it.
	SlerpLiteral
)

var ErrUnknownSlerpMode = errors.New("unknown slerp mode")

func (mode SlerpMode) String() string {
	if mode == SlerpLiteral {
		return "literal"
	}
	return "shortest"
}

// ParseSlerpMode parses "shortest" or "literal" (case-insensitive) into a SlerpMode. An empty string gives SlerpShortestPath.
func ParseSlerpMode(s string) (SlerpMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shortest":
		return SlerpShortestPath, nil
	case "literal":
		return SlerpLiteral, nil
	}
	return SlerpShortestPath, ErrUnknownSlerpMode
}

// Slerp spherically interpolates from one Quaternion to another by the percentage given. Nearly parallel Quaternions
// (a dot product over 0.9999) are blended linearly instead to avoid dividing by a vanishing sine.
// The result is not re-normalized.
func Slerp(from, to Quaternion, percent float32, mode SlerpMode) Quaternion {

	cosW := from.Dot(to)

	if cosW < 0 && mode == SlerpShortestPath {
		to = to.Negated()
		cosW = -cosW
	}

	var k0, k1 float32

	if cosW > 0.9999 {
		k0 = 1 - percent
		k1 = percent
	} else {

		sinOmega := math32.Sqrt(math32.Max(1-cosW*cosW, 0))

		if sinOmega < 1e-6 {
			// Only reachable in literal mode, with exactly opposite Quaternions.
			k0 = 1 - percent
			k1 = percent
		} else {
			omega := math32.Atan2(sinOmega, cosW)
			k0 = math32.Sin((1-percent)*omega) / sinOmega
			k1 = math32.Sin(percent*omega) / sinOmega
		}

	}

	return from.Scaled(k0).Add(to.Scaled(k1))

}

