package transformblend

// BlendConfig configures Blend. Each Interpolate option, when false, pins that component of the result to the start
// Matrix4's value instead of interpolating it towards the end Matrix4's value.
type BlendConfig struct {
	Factor                 float32   // How far to blend from the start (0) to the end (1) Matrix4. Not clamped.
	InterpolateRotation    bool      // Whether rotation is slerped towards the end Matrix4
	InterpolateScale       bool      // Whether scale is lerped towards the end Matrix4
	InterpolateTranslation bool      // Whether translation is lerped towards the end Matrix4
	Slerp                  SlerpMode // How rotations on opposite hemispheres are interpolated
}

// NewBlendConfig returns a BlendConfig that interpolates all three components by the factor given.
func NewBlendConfig(factor float32) BlendConfig {
	return BlendConfig{
		Factor:                 factor,
		InterpolateRotation:    true,
		InterpolateScale:       true,
		InterpolateTranslation: true,
	}
}

// Decomposition holds the translation, rotation, and scale making up an affine Matrix4.
type Decomposition struct {
	Translation Vector3
	Rotation    Quaternion
	Scale       Vector3
}

// Translation returns the translation held in the Matrix4's fourth column.
func (matrix Matrix4) Translation() Vector3 {
	return Vector3{X: matrix[0][3], Y: matrix[1][3], Z: matrix[2][3]}
}

// ScaleVector returns the per-axis scale of the Matrix4, which is the length of each of its first three columns.
// Negative scales can't be recovered this way.
func (matrix Matrix4) ScaleVector() Vector3 {
	return Vector3{
		X: matrix.Column(0).Magnitude(),
		Y: matrix.Column(1).Magnitude(),
		Z: matrix.Column(2).Magnitude(),
	}
}

// Decompose breaks the Matrix4 down into its translation, rotation, and scale. As with QuaternionFromMatrix, sheared or
// reflected matrices won't decompose meaningfully.
func (matrix Matrix4) Decompose() Decomposition {
	return Decomposition{
		Translation: matrix.Translation(),
		Rotation:    QuaternionFromMatrix(matrix),
		Scale:       matrix.ScaleVector(),
	}
}

// Recompose builds the Matrix4 that the Decomposition describes.
func (d Decomposition) Recompose() Matrix4 {
	return NewMatrix4TRS(d.Translation, d.Rotation, d.Scale)
}

// NewMatrix4TRS composes a Matrix4 that scales, then rotates, then translates.
func NewMatrix4TRS(translation Vector3, rotation Quaternion, scale Vector3) Matrix4 {
	mat := rotation.ToMatrix4().Mult(NewMatrix4Scale(scale.X, scale.Y, scale.Z))
	mat[0][3] = translation.X
	mat[1][3] = translation.Y
	mat[2][3] = translation.Z
	return mat
}

// Blend decomposes the start and end Matrix4s and recomposes them into a single Matrix4 partway between the two,
// according to the BlendConfig given. Rotation is slerped, scale and translation are lerped; components with
// interpolation disabled are taken from the start Matrix4 as-is. Neither input is modified.
func Blend(start, end Matrix4, config BlendConfig) Matrix4 {

	// Rotation

	rotation := QuaternionFromMatrix(start)

	if config.InterpolateRotation {
		rotation = Slerp(rotation, QuaternionFromMatrix(end), config.Factor, config.Slerp)
	}

	// A collapsed basis extracts a non-unit Quaternion, which would give a rotation matrix that also scales.
	// The rotation is kept inverted here; combining it with the scale below and transposing the product
	// gives back rotation * scale.
	rotationMatrix := rotation.Unit().ToMatrix4().Inverted()

	// Scale

	scale := start.ScaleVector()

	if config.InterpolateScale {
		scale = scale.Lerp(end.ScaleVector(), config.Factor)
	}

	scaleMatrix := NewMatrix4Scale(scale.X, scale.Y, scale.Z)

	change := scaleMatrix.Mult(rotationMatrix).Transposed()

	// Drift in the inverted rotation can leak into the homogeneous row.
	change[3][0] = 0
	change[3][1] = 0
	change[3][2] = 0

	// Translation

	translation := start.Translation()

	if config.InterpolateTranslation {
		translation = translation.Lerp(end.Translation(), config.Factor)
	}

	change[0][3] = translation.X
	change[1][3] = translation.Y
	change[2][3] = translation.Z

	return change

}
