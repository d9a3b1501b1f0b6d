package transformblend

import (
	"github.com/solarlune/transformblend/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is indexed as matrix[row][column] and
// follows the column-vector convention: columns 0, 1, and 2 hold the X, Y, and Z basis vectors (each scaled by that axis's scale),
// column 3 holds the translation in its first three rows, and the bottom row is (0, 0, 0, 1) for affine transforms.
//
// Matrix4 is a value type; functions that "modify" a Matrix4 return altered copies.
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4FromFloats returns a Matrix4 from 16 values laid out row by row (so floats[3] is the X translation).
func NewMatrix4FromFloats(floats [16]float32) Matrix4 {
	mat := Matrix4{}
	for x := 0; x < 16; x++ {
		mat.SetByIndex(x, floats[x])
	}
	return mat
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = x
	mat[1][3] = y
	mat[2][3] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float32) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := Vector3{X: x, Y: y, Z: z}.Unit()
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[1][0] = m*vector.X*vector.Y + vector.Z*s
	mat[2][0] = m*vector.Z*vector.X - vector.Y*s

	mat[0][1] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[2][1] = m*vector.Y*vector.Z + vector.X*s

	mat[0][2] = m*vector.Z*vector.X + vector.Y*s
	mat[1][2] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// Transposed transposes a Matrix4, swapping its rows and columns. For orthonormalized Matrices
// (like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	new := Matrix4{}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Determinant returns the determinant of the Matrix4. A negative determinant indicates a reflection, and a determinant of 0
// indicates a matrix that has collapsed at least one axis.
func (matrix Matrix4) Determinant() float32 {

	A2323 := matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	A1323 := matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	A1223 := matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	A0323 := matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	A0223 := matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	A0123 := matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]

	return matrix[0][0]*(matrix[1][1]*A2323-matrix[1][2]*A1323+matrix[1][3]*A1223) -
		matrix[0][1]*(matrix[1][0]*A2323-matrix[1][2]*A0323+matrix[1][3]*A0223) +
		matrix[0][2]*(matrix[1][0]*A1323-matrix[1][1]*A0323+matrix[1][3]*A0123) -
		matrix[0][3]*(matrix[1][0]*A1223-matrix[1][1]*A0223+matrix[1][2]*A0123)

}

// Inverted returns an inverted version of the Matrix4. A singular Matrix4 (one with a determinant of 0) inverts to
// values of +/-Inf or NaN; no validation is performed.
func (matrix Matrix4) Inverted() Matrix4 {
	// Cofactor expansion; see https://stackoverflow.com/questions/1148309/inverting-a-4x4-matrix.

	var A2323 = matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	var A1323 = matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	var A1223 = matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	var A0323 = matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	var A0223 = matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	var A0123 = matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	var A2313 = matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	var A1313 = matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	var A1213 = matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	var A2312 = matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	var A1312 = matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	var A1212 = matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	var A0313 = matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	var A0213 = matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	var A0312 = matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	var A0212 = matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	var A0113 = matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	var A0112 = matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	det := 1 / matrix.Determinant()

	m := Matrix4{}

	m[0][0] = det * (matrix[1][1]*A2323 - matrix[1][2]*A1323 + matrix[1][3]*A1223)
	m[0][1] = det * -(matrix[0][1]*A2323 - matrix[0][2]*A1323 + matrix[0][3]*A1223)
	m[0][2] = det * (matrix[0][1]*A2313 - matrix[0][2]*A1313 + matrix[0][3]*A1213)
	m[0][3] = det * -(matrix[0][1]*A2312 - matrix[0][2]*A1312 + matrix[0][3]*A1212)
	m[1][0] = det * -(matrix[1][0]*A2323 - matrix[1][2]*A0323 + matrix[1][3]*A0223)
	m[1][1] = det * (matrix[0][0]*A2323 - matrix[0][2]*A0323 + matrix[0][3]*A0223)
	m[1][2] = det * -(matrix[0][0]*A2313 - matrix[0][2]*A0313 + matrix[0][3]*A0213)
	m[1][3] = det * (matrix[0][0]*A2312 - matrix[0][2]*A0312 + matrix[0][3]*A0212)
	m[2][0] = det * (matrix[1][0]*A1323 - matrix[1][1]*A0323 + matrix[1][3]*A0123)
	m[2][1] = det * -(matrix[0][0]*A1323 - matrix[0][1]*A0323 + matrix[0][3]*A0123)
	m[2][2] = det * (matrix[0][0]*A1313 - matrix[0][1]*A0313 + matrix[0][3]*A0113)
	m[2][3] = det * -(matrix[0][0]*A1312 - matrix[0][1]*A0312 + matrix[0][3]*A0112)
	m[3][0] = det * -(matrix[1][0]*A1223 - matrix[1][1]*A0223 + matrix[1][2]*A0123)
	m[3][1] = det * (matrix[0][0]*A1223 - matrix[0][1]*A0223 + matrix[0][2]*A0123)
	m[3][2] = det * -(matrix[0][0]*A1213 - matrix[0][1]*A0213 + matrix[0][2]*A0113)
	m[3][3] = det * (matrix[0][0]*A1212 - matrix[0][1]*A0212 + matrix[0][2]*A0112)

	return m

}

func (matrix *Matrix4) SetByIndex(index int, value float32) {
	matrix[index/4][index%4] = value
}

func (matrix Matrix4) Index(index int) float32 {
	return matrix[index/4][index%4]
}

// ToFloats returns the Matrix4's values row by row.
func (matrix Matrix4) ToFloats() [16]float32 {
	out := [16]float32{}
	for i := 0; i < 16; i++ {
		out[i] = matrix.Index(i)
	}
	return out
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4 (within 0.0001).
func (matrix Matrix4) Equals(other Matrix4) bool {
	return matrix.ApproxEquals(other, 0.0001)
}

// ApproxEquals returns true if every value in the Matrix4 is within epsilon of the same value in the other Matrix4.
func (matrix Matrix4) ApproxEquals(other Matrix4, epsilon float32) bool {
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > epsilon {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// IsZero returns true if the Matrix is zero'd out (all values are 0).
func (matrix Matrix4) IsZero() bool {
	return matrix == Matrix4{}
}

// Column returns the indiced column from the Matrix4 as a Vector4.
func (matrix Matrix4) Column(columnIndex int) Vector4 {
	return Vector4{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
		W: matrix[3][columnIndex],
	}
}

// SetColumn sets the Matrix4 with the column in columnIndex set to the 4D vector passed.
func (matrix *Matrix4) SetColumn(columnIndex int, vec Vector4) {
	matrix[0][columnIndex] = vec.X
	matrix[1][columnIndex] = vec.Y
	matrix[2][columnIndex] = vec.Z
	matrix[3][columnIndex] = vec.W
}

// MultVec multiplies the point provided by the Matrix4, giving a point that has been rotated, scaled, and translated.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[0][1]*vect.Y + matrix[0][2]*vect.Z + matrix[0][3],
		Y: matrix[1][0]*vect.X + matrix[1][1]*vect.Y + matrix[1][2]*vect.Z + matrix[1][3],
		Z: matrix[2][0]*vect.X + matrix[2][1]*vect.Y + matrix[2][2]*vect.Z + matrix[2][3],
	}

}

// MultVecW multiplies the point provided by the Matrix4, including the fourth (W) row; this is used for projection.
func (matrix Matrix4) MultVecW(vect Vector3) Vector4 {

	return Vector4{
		X: matrix[0][0]*vect.X + matrix[0][1]*vect.Y + matrix[0][2]*vect.Z + matrix[0][3],
		Y: matrix[1][0]*vect.X + matrix[1][1]*vect.Y + matrix[1][2]*vect.Z + matrix[1][3],
		Z: matrix[2][0]*vect.X + matrix[2][1]*vect.Y + matrix[2][2]*vect.Z + matrix[2][3],
		W: matrix[3][0]*vect.X + matrix[3][1]*vect.Y + matrix[3][2]*vect.Z + matrix[3][3],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. With the column-vector convention,
// a.Mult(b) applies b first, then a.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] +
				matrix[row][1]*other[1][col] +
				matrix[row][2]*other[2][col] +
				matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, near and far are the near and far clipping plane,
// while viewWidth and viewHeight is the width and height of the view.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float32) Matrix4 {

	aspect := viewWidth / viewHeight

	t := math32.Tan(fovy * math32.Pi / 360)
	b := -t
	r := t * aspect
	l := -r

	return Matrix4{
		{(2 * near) / (r - l), 0, (r + l) / (r - l), 0},
		{0, (2 * near) / (t - b), (t + b) / (t - b), 0},
		{0, 0, -((far + near) / (far - near)), -((2 * far * near) / (far - near))},
		{0, 0, -1, 0},
	}

}

// NewViewMatrix generates a new Matrix4 that transforms world-space points into the view space of an eye at the given position,
// looking towards the target, with up being the general upward direction ( usually +Y, or [0, 1, 0] ).
func NewViewMatrix(eye, target, up Vector3) Matrix4 {

	// If eye and target are the same, then an identity Matrix4 should be a sensible default
	if eye.Equals(target) {
		return NewMatrix4()
	}

	z := eye.Sub(target).Unit()

	up = up.Unit()

	// If z == up, then the matrix will be unusable, so we sub up out with another angle
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(WorldRight) {
			up = WorldRight
		} else {
			up = WorldBackward
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)

	return Matrix4{
		{x.X, x.Y, x.Z, -x.Dot(eye)},
		{y.X, y.Y, y.Z, -y.Dot(eye)},
		{z.X, z.Y, z.Z, -z.Dot(eye)},
		{0, 0, 0, 1},
	}

}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += formatFloat(x) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
