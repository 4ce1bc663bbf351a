package entity

import (
	"github.com/devhausleipzig/cell-dodger-game/internal/gamedata"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// Player is a keyboard-controlled token.
type Player struct {
	Name    string
	Pos     grid.Coord
	Binding gamedata.BindingDef

	directions map[string]grid.Direction
	pending    string // Last bound key pressed since the previous tick, "" if none
}

// NewPlayer creates a player at pos controlled by the given binding.
// The key to direction table is built once here.
func NewPlayer(pos grid.Coord, binding gamedata.BindingDef) *Player {
	keys := binding.Keys()
	directions := make(map[string]grid.Direction, len(keys))
	for i, k := range keys {
		directions[k] = grid.Direction(i)
	}

	return &Player{
		Name:       binding.Name,
		Pos:        pos,
		Binding:    binding,
		directions: directions,
	}
}

// Keys returns the keys this player responds to.
func (p *Player) Keys() [4]string {
	return p.Binding.Keys()
}

// Press buffers a key. Only the most recent press survives until the next tick.
// Returns false if the key is not bound to this player.
func (p *Player) Press(key string) bool {
	if _, ok := p.directions[key]; !ok {
		return false
	}
	p.pending = key
	return true
}

// Pending returns the buffered key, or "" if none.
func (p *Player) Pending() string {
	return p.pending
}

// TakeDirection consumes the buffered key and returns its direction.
// ok is false if nothing was buffered.
func (p *Player) TakeDirection() (dir grid.Direction, ok bool) {
	if p.pending == "" {
		return 0, false
	}
	dir, ok = p.directions[p.pending]
	p.pending = ""
	return dir, ok
}
