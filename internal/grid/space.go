package grid

// Direction is one of the four unit steps a player can take.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// String returns the direction name as it appears in binding data.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Space is a square toroidal grid. Every coordinate it hands out lies in [0, Size).
type Space struct {
	Size int
}

// NewSpace creates a space with the given edge length.
func NewSpace(size int) Space {
	return Space{Size: size}
}

// Wrap folds a coordinate back onto the grid.
func (s Space) Wrap(c Coord) Coord {
	return Coord{X: Wrap(c.X, s.Size), Y: Wrap(c.Y, s.Size)}
}

// Contains returns true if the coordinate is inside the grid without wrapping.
func (s Space) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.Size && c.Y >= 0 && c.Y < s.Size
}

// Step moves one cell in the given direction, wrapping around the edges.
func (s Space) Step(c Coord, d Direction) Coord {
	dx, dy := d.Delta()
	return s.Wrap(c.Add(dx, dy))
}

// CellCount returns the number of cells in the grid.
func (s Space) CellCount() int {
	return s.Size * s.Size
}

// Cells returns every coordinate in row-major order.
func (s Space) Cells() []Coord {
	cells := make([]Coord, 0, s.CellCount())
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}
