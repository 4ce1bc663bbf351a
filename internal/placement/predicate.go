package placement

import "github.com/devhausleipzig/cell-dodger-game/internal/grid"

// Predicate reports whether a candidate position is acceptable next to one existing position.
type Predicate func(candidate, existing grid.Coord) bool

// Exclusion rejects a candidate that shares a cell with an existing entity.
func Exclusion(candidate, existing grid.Coord) bool {
	return candidate != existing
}

// MinDistance rejects a candidate closer than d (flat Euclidean) to an existing entity.
func MinDistance(d float64) Predicate {
	return func(candidate, existing grid.Coord) bool {
		return grid.Distance(candidate, existing) >= d
	}
}

// satisfies is the AND over every predicate and every occupied position.
func satisfies(candidate grid.Coord, predicates []Predicate, occupied []grid.Coord) bool {
	for _, pred := range predicates {
		for _, existing := range occupied {
			if !pred(candidate, existing) {
				return false
			}
		}
	}
	return true
}
