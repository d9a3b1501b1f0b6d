// math32 is a stand-in for the built-in math package, but the functions take float32s instead of float64s.
// Matrices, vectors, and quaternions in transformblend are all single-precision, so this saves a lot of casting.
package math32

import (
	"math"
)

const Pi = float32(math.Pi)

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions use).
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	return number(math.Max(float64(x), float64(y)))
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates from a to b by t, returning (1-t)*a + t*b. t is not clamped, so values
// outside of 0 to 1 extrapolate past either end.
func Lerp[number float32 | float64](a, b, t number) number {
	return (1-t)*a + t*b
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
