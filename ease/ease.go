// The ease subpackage defines the easing curves used to interpolate
// the face between its ambient and interactive looks.
//
// All the curves map a normalized progress in [0, 1] to an eased
// value in [0, 1], with f(0) = 0 and f(1) = 1. Inputs outside the
// range are clamped, so callers can pass raw elapsed/duration ratios
// without worrying about overshooting frames.
package ease

import "math"

// An easing curve. See the package documentation for the contract.
type Func func(float64) float64

// Identity curve.
func Linear(t float64) float64 { return clamp(t) }

// Cubic ease-in-out. This is the standard curve for the face
// time-scale transitions.
func CubicInOut(t float64) float64 {
	t = clamp(t)
	if t < 0.5 { return 4*t*t*t }
	f := 2*t - 2
	return 1 + f*f*f/2
}

// Circular ease-in-out.
func CircularInOut(t float64) float64 {
	t = clamp(t)
	if t < 0.5 {
		return (1 - math.Sqrt(1 - 4*t*t))/2
	}
	f := -2*t + 2
	return (math.Sqrt(1 - f*f) + 1)/2
}

// Quintic ease-in-out.
func QuinticInOut(t float64) float64 {
	t = clamp(t)
	if t < 0.5 { return 16*t*t*t*t*t }
	f := -2*t + 2
	return 1 - f*f*f*f*f/2
}

// Cubic ease-in. Used for accelerating reveals.
func CubicIn(t float64) float64 {
	t = clamp(t)
	return t*t*t
}

// Returns a keyframed version of the given curve that completes at
// the given fraction of the progress range and holds at 1 afterwards.
// For example, HoldFrom(CubicInOut, 0.9) finishes its motion at 90%
// of the duration. The fraction must be in (0, 1]; invalid values
// panic, as they can only come from a programming mistake.
func HoldFrom(fn Func, at float64) Func {
	if fn == nil { panic("nil easing func") }
	if !(at > 0 && at <= 1) { panic("hold fraction must be in (0, 1]") }
	return func(t float64) float64 {
		t = clamp(t)
		if t >= at { return 1 }
		return fn(t/at)
	}
}

// Linear interpolation between a and b at the given (unclamped) t.
// Exact at t == 0 and t == 1.
func Lerp(a, b, t float64) float64 { return a*(1 - t) + b*t }

func clamp(t float64) float64 {
	if t <= 0 || t != t { return 0 } // NaN progress is treated as no progress
	if t >= 1 { return 1 }
	return t
}
