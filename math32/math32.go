// Package math32 provides the float32 trig helpers animsample needs to
// spherically interpolate rotation keyframes, without the repeated
// float64-cast boilerplate of calling the stdlib math package directly.
package math32

import "math"

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
