package game

import (
	"math/rand"

	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// movePlayers applies each player's buffered key as a single wrapped step.
// Returns how many players moved.
func (st *state) movePlayers() int {
	moved := 0
	for _, p := range st.registry.Players {
		dir, ok := p.TakeDirection()
		if !ok {
			continue
		}
		p.Pos = st.space.Step(p.Pos, dir)
		moved++
	}
	return moved
}

// moveEnemies steps every enemy toward its nearest player along the axis with the
// larger gap, Y on ties. Each step is taken with probability one half.
// Distance is flat, so an enemy never chases across the wrap edge.
func (st *state) moveEnemies(rng *rand.Rand) {
	for _, e := range st.registry.Enemies {
		target := nearestPlayer(e.Pos, st.registry.Players)
		if target == nil {
			continue
		}

		dx, dy := e.Pos.Sub(target.Pos)
		if dx == 0 && dy == 0 {
			continue
		}

		step := rng.Intn(2)
		if abs(dy) >= abs(dx) {
			e.Pos = st.space.Wrap(e.Pos.Add(0, -sign(dy)*step))
		} else {
			e.Pos = st.space.Wrap(e.Pos.Add(-sign(dx)*step, 0))
		}
	}
}

// nearestPlayer returns the closest player by flat distance. Ties go to the earlier player.
func nearestPlayer(from grid.Coord, players []*entity.Player) *entity.Player {
	var nearest *entity.Player
	best := 0.0
	for _, p := range players {
		d := grid.Distance(from, p.Pos)
		if nearest == nil || d < best {
			nearest, best = p, d
		}
	}
	return nearest
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
