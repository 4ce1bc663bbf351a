package entity

import "github.com/devhausleipzig/cell-dodger-game/internal/grid"

// Registry holds the live players, enemies and coins in their creation order.
type Registry struct {
	Players []*Player
	Enemies []*Enemy
	Coins   []*Coin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		Players: make([]*Player, 0),
		Enemies: make([]*Enemy, 0),
		Coins:   make([]*Coin, 0),
	}
}

// Occupied returns the positions of every entity: players, then enemies, then coins.
// Positions repeat when entities overlap.
func (r *Registry) Occupied() []grid.Coord {
	occupied := make([]grid.Coord, 0, len(r.Players)+len(r.Enemies)+len(r.Coins))
	for _, p := range r.Players {
		occupied = append(occupied, p.Pos)
	}
	for _, e := range r.Enemies {
		occupied = append(occupied, e.Pos)
	}
	for _, c := range r.Coins {
		occupied = append(occupied, c.Pos)
	}
	return occupied
}

// AddCoins appends coins at the given positions.
func (r *Registry) AddCoins(positions ...grid.Coord) {
	for _, pos := range positions {
		r.Coins = append(r.Coins, NewCoin(pos))
	}
}

// RemoveCoin removes the coin at index i, keeping the order of the rest.
func (r *Registry) RemoveCoin(i int) {
	if i < 0 || i >= len(r.Coins) {
		return
	}
	r.Coins = append(r.Coins[:i], r.Coins[i+1:]...)
}

// Frame returns the highest priority role for every occupied cell.
func (r *Registry) Frame() map[grid.Coord]Role {
	frame := make(map[grid.Coord]Role, len(r.Players)+len(r.Enemies)+len(r.Coins))
	mark := func(pos grid.Coord, role Role) {
		if role.Priority() > frame[pos].Priority() {
			frame[pos] = role
		}
	}
	for _, c := range r.Coins {
		mark(c.Pos, RoleCoin)
	}
	for _, e := range r.Enemies {
		mark(e.Pos, RoleEnemy)
	}
	for _, p := range r.Players {
		mark(p.Pos, RolePlayer)
	}
	return frame
}
