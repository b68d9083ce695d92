package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a cell coordinate or a unit direction vector.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsUnit reports whether p is one of the four orthogonal unit vectors.
func (p Point) IsUnit() bool {
	return abs(p.X)+abs(p.Y) == 1
}

// Directions
var (
	None  = Point{X: 0, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Game constants
const (
	StartLength     = 3                      // Body length after a reset
	TickInterval    = 150 * time.Millisecond // Simulated time between moves
	MaxCatchUpTicks = 5                      // Ticks run per update before dropping time
)

// StartBody returns a fresh copy of the canonical starting body, head first.
func StartBody() []Point {
	return []Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
