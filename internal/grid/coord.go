// Package grid provides the toroidal coordinate space the game is played on.
package grid

import (
	"fmt"
	"math"
)

// DefaultSize is the default edge length of the square grid.
const DefaultSize = 20

// Coord is a cell position on the grid.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy). The result is not wrapped.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the axis-wise difference c - other.
func (c Coord) Sub(other Coord) (dx, dy int) {
	return c.X - other.X, c.Y - other.Y
}

// String returns a human-readable representation.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ID returns the canonical string key for the coordinate.
func (c Coord) ID() string {
	return fmt.Sprintf("xy_%d-%d", c.X, c.Y)
}

// FromID parses a key produced by Coord.ID.
func FromID(id string) (Coord, error) {
	var c Coord
	n, err := fmt.Sscanf(id, "xy_%d-%d", &c.X, &c.Y)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate id %q: %w", id, err)
	}
	if n != 2 || c.ID() != id {
		return Coord{}, fmt.Errorf("invalid coordinate id %q", id)
	}
	return c, nil
}

// Distance returns the Euclidean distance between two coordinates on a flat plane.
// Wraparound is ignored: cells on opposite edges are far apart.
func Distance(a, b Coord) float64 {
	dx, dy := a.Sub(b)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Wrap returns n modulo size, always in [0, size).
func Wrap(n, size int) int {
	return ((n % size) + size) % size
}
