package tween

import "math"

// Ease maps linear progress in [0,1] to eased progress
type Ease func(p float64) float64

// Linear is constant speed
func Linear(p float64) float64 { return p }

// Power1InOut is quadratic acceleration then deceleration
func Power1InOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// SineInOut follows half a cosine period
func SineInOut(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

// Power2Out is cubic deceleration
func Power2Out(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// TraversalEases are the gentle curves shapes cross the screen with
var TraversalEases = []Ease{Linear, Power1InOut, SineInOut}
