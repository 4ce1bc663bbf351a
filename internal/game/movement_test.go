package game

import (
	"math/rand"
	"testing"

	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/gamedata"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// newChaseState builds a bare state with the given players and a single enemy.
func newChaseState(enemy grid.Coord, players ...grid.Coord) *state {
	bindings := gamedata.MustLoadBindings()
	r := entity.NewRegistry()
	for i, pos := range players {
		r.Players = append(r.Players, entity.NewPlayer(pos, bindings[i%len(bindings)]))
	}
	r.Enemies = append(r.Enemies, entity.NewEnemy(enemy))
	return &state{
		space:    grid.NewSpace(grid.DefaultSize),
		registry: r,
	}
}

func TestEnemyPursuitChoosesLargerAxis(t *testing.T) {
	// Enemy at delta (3,1) from the player: X is the candidate axis.
	start := grid.C(8, 6)
	st := newChaseState(start, grid.C(5, 5))
	rng := rand.New(rand.NewSource(1))

	const trials = 4000
	moved := 0
	for i := 0; i < trials; i++ {
		st.registry.Enemies[0].Pos = start
		st.moveEnemies(rng)

		switch got := st.registry.Enemies[0].Pos; got {
		case grid.C(7, 6):
			moved++
		case start:
		default:
			t.Fatalf("enemy moved to %v, want (7,6) or no move", got)
		}
	}

	ratio := float64(moved) / trials
	if ratio < 0.45 || ratio > 0.55 {
		t.Errorf("enemy stepped in %.3f of ticks, want about 0.5", ratio)
	}
}

func TestEnemyPursuitTieFavorsY(t *testing.T) {
	start := grid.C(8, 8)
	st := newChaseState(start, grid.C(5, 5))
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		st.registry.Enemies[0].Pos = start
		st.moveEnemies(rng)
		if got := st.registry.Enemies[0].Pos; got != start && got != grid.C(8, 7) {
			t.Fatalf("enemy moved to %v, want (8,7) or no move", got)
		}
	}
}

func TestEnemyOnTargetStays(t *testing.T) {
	st := newChaseState(grid.C(5, 5), grid.C(5, 5))
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		st.moveEnemies(rng)
		if got := st.registry.Enemies[0].Pos; got != grid.C(5, 5) {
			t.Fatalf("enemy on its target moved to %v", got)
		}
	}
}

func TestEnemyPursuitIgnoresWrap(t *testing.T) {
	// The player is one cell away across the edge but 19 cells away on the flat grid.
	start := grid.C(0, 5)
	st := newChaseState(start, grid.C(19, 5))
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 200; i++ {
		st.registry.Enemies[0].Pos = start
		st.moveEnemies(rng)
		if got := st.registry.Enemies[0].Pos; got != start && got != grid.C(1, 5) {
			t.Fatalf("enemy moved to %v, want (1,5) or no move", got)
		}
	}
}

func TestNearestPlayer(t *testing.T) {
	bindings := gamedata.MustLoadBindings()
	p1 := entity.NewPlayer(grid.C(0, 0), bindings[0])
	p2 := entity.NewPlayer(grid.C(10, 0), bindings[1])
	players := []*entity.Player{p1, p2}

	tests := []struct {
		from     grid.Coord
		expected *entity.Player
	}{
		{grid.C(1, 0), p1},
		{grid.C(9, 0), p2},
		{grid.C(5, 0), p1}, // Tie goes to the first player
		{grid.C(19, 0), p2},
	}

	for _, tt := range tests {
		if got := nearestPlayer(tt.from, players); got != tt.expected {
			t.Errorf("nearestPlayer(%v) = %v, want %v", tt.from, got.Name, tt.expected.Name)
		}
	}

	if got := nearestPlayer(grid.C(0, 0), nil); got != nil {
		t.Error("nearestPlayer with no players should return nil")
	}
}

func TestMovePlayersConsumesBuffers(t *testing.T) {
	st := newChaseState(grid.C(15, 15), grid.C(5, 5), grid.C(10, 10))
	p1, p2 := st.registry.Players[0], st.registry.Players[1]
	p1.Press("ArrowLeft")

	if got := st.movePlayers(); got != 1 {
		t.Errorf("movePlayers() = %d, want 1", got)
	}
	if p1.Pos != grid.C(4, 5) {
		t.Errorf("player 1 at %v, want (4,5)", p1.Pos)
	}
	if p2.Pos != grid.C(10, 10) {
		t.Errorf("player 2 with empty buffer moved to %v", p2.Pos)
	}
	if p1.Pending() != "" {
		t.Error("player 1 buffer not cleared")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		n, expected int
	}{
		{-7, -1},
		{0, 0},
		{3, 1},
	}
	for _, tt := range tests {
		if got := sign(tt.n); got != tt.expected {
			t.Errorf("sign(%d) = %d, want %d", tt.n, got, tt.expected)
		}
	}
}
