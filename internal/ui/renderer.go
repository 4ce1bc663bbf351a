package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/game"
	"github.com/devhausleipzig/cell-dodger-game/internal/gamedata"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// cellWidth is the number of terminal columns per grid cell, so cells look square.
const cellWidth = 2

const helpText = "arrows/wasd move  p players  e/E enemies  ,/. delay  r restart  q quit"

// GridView draws the game grid, score and errors. It implements game.Display.
type GridView struct {
	screen  *Screen
	palette gamedata.Palette
	size    int
}

// NewGridView creates a grid view on the given screen.
func NewGridView(screen *Screen, palette gamedata.Palette) *GridView {
	return &GridView{screen: screen, palette: palette}
}

// GridCreated clears the screen and draws an empty grid.
func (v *GridView) GridCreated(size int) {
	v.size = size
	v.screen.Clear()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v.SetCellOccupant(grid.C(x, y), entity.RoleNone)
		}
	}
	v.drawText(0, v.helpRow(), helpText, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// SetCellOccupant draws a single cell in the color of its role.
func (v *GridView) SetCellOccupant(c grid.Coord, role entity.Role) {
	style := v.roleStyle(role)
	x, y := c.X*cellWidth, c.Y+1
	v.screen.SetContent(x, y, role.Symbol(), style)
	for i := 1; i < cellWidth; i++ {
		v.screen.SetContent(x+i, y, ' ', style)
	}
}

// DisplayScore redraws the score line.
func (v *GridView) DisplayScore(value int) {
	v.drawText(0, 0, fmt.Sprintf("Score: %d", value), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

// ShowError shows a configuration error below the help line.
func (v *GridView) ShowError(err error) {
	v.drawText(0, v.helpRow()+1, "Error: "+err.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
}

// Flush presents the frame.
func (v *GridView) Flush() {
	v.screen.Show()
}

func (v *GridView) helpRow() int {
	return v.size + 1
}

// roleStyle returns the cell style for a role.
func (v *GridView) roleStyle(role entity.Role) tcell.Style {
	base := tcell.StyleDefault.Foreground(v.palette.Text)
	switch role {
	case entity.RolePlayer:
		return base.Background(v.palette.Player)
	case entity.RoleEnemy:
		return base.Background(v.palette.Enemy)
	case entity.RoleCoin:
		return base.Background(v.palette.Coin)
	default:
		return base.Background(v.palette.Background)
	}
}

// drawText writes msg at (x, y) and blanks the rest of the grid width.
func (v *GridView) drawText(x, y int, msg string, style tcell.Style) {
	width := max(v.size*cellWidth, len(helpText))
	col := x
	for _, ch := range msg {
		v.screen.SetContent(col, y, ch, style)
		col++
	}
	for ; col < width; col++ {
		v.screen.SetContent(col, y, ' ', tcell.StyleDefault)
	}
}

// Ensure GridView implements game.Display
var _ game.Display = (*GridView)(nil)
