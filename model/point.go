package model

import "fmt"

// Point is a playfield coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Distance is the Chebyshev distance: the number of 8-directional steps
// between p and q on an empty field.
func (p Point) Distance(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
