package editor

import "math"

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Contains is half-open on the far edges.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func abs(a float64) float64 {
	return math.Abs(a)
}
