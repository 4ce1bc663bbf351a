// Package entity provides the tokens that live on the grid: players, enemies and coins.
package entity

import "github.com/devhausleipzig/cell-dodger-game/internal/grid"

// Role tags what an entity is. Identity on the grid is positional, so role is
// the only thing distinguishing one token from another on the same cell.
type Role int

const (
	RoleNone Role = iota
	RolePlayer
	RoleEnemy
	RoleCoin
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RoleCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Symbol returns the display rune for the role.
func (r Role) Symbol() rune {
	switch r {
	case RolePlayer:
		return '@'
	case RoleEnemy:
		return 'E'
	case RoleCoin:
		return '$'
	default:
		return ' '
	}
}

// Priority orders roles when several share a cell. Higher wins.
func (r Role) Priority() int {
	switch r {
	case RolePlayer:
		return 3
	case RoleEnemy:
		return 2
	case RoleCoin:
		return 1
	default:
		return 0
	}
}

// Enemy is a pursuing token. It keeps no state beyond its position.
type Enemy struct {
	Pos grid.Coord
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(pos grid.Coord) *Enemy {
	return &Enemy{Pos: pos}
}

// Coin is a collectible token.
type Coin struct {
	Pos grid.Coord
}

// NewCoin creates a coin at the given position.
func NewCoin(pos grid.Coord) *Coin {
	return &Coin{Pos: pos}
}
