package state

import "math"

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// EaseLinear applies no easing.
func EaseLinear(t float64) float64 { return t }

// EaseCubicInOut accelerates then decelerates.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// EaseCubicOut decelerates towards the end.
func EaseCubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
