package game

import (
	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// GridRenderer draws the occupant of each cell. It knows nothing about layout.
type GridRenderer interface {
	// GridCreated resets the renderer to an empty grid of size x size cells.
	GridCreated(size int)
	// SetCellOccupant shows role at c. entity.RoleNone clears the cell.
	SetCellOccupant(c grid.Coord, role entity.Role)
}

// ScoreSink receives every score change.
type ScoreSink interface {
	DisplayScore(value int)
}

// Display is everything the session needs from its front end.
type Display interface {
	GridRenderer
	ScoreSink
	// Flush presents everything drawn since the last flush.
	Flush()
	// ShowError surfaces a failed reconfiguration. The previous grid stays on screen.
	ShowError(err error)
}

// renderDiff sends only the cells whose top role changed between prev and next.
func renderDiff(r GridRenderer, prev, next map[grid.Coord]entity.Role) {
	for pos := range prev {
		if _, ok := next[pos]; !ok {
			r.SetCellOccupant(pos, entity.RoleNone)
		}
	}
	for pos, role := range next {
		if prev[pos] != role {
			r.SetCellOccupant(pos, role)
		}
	}
}
