// Package placement finds random grid positions for new entities under placement constraints.
package placement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
	"github.com/devhausleipzig/cell-dodger-game/internal/telemetry"
)

// attemptsPerCell scales the random sampling budget with the grid area.
const attemptsPerCell = 64

// ErrPlacementExhausted is returned when no cell satisfies the placement predicates.
var ErrPlacementExhausted = errors.New("placement exhausted")

// Generator samples positions uniformly from a grid.
type Generator struct {
	space grid.Space
	rng   *rand.Rand

	// MaxAttempts bounds random sampling per entity before falling back to a full scan.
	MaxAttempts int
}

// NewGenerator creates a generator for the given space.
func NewGenerator(space grid.Space, rng *rand.Rand) *Generator {
	return &Generator{
		space:       space,
		rng:         rng,
		MaxAttempts: attemptsPerCell * space.CellCount(),
	}
}

// Generate returns quantity new positions, each satisfying every predicate against
// every occupied position and every position accepted earlier in the same call.
func (g *Generator) Generate(ctx context.Context, quantity int, predicates []Predicate, occupied []grid.Coord) ([]grid.Coord, error) {
	tracer := telemetry.Tracer("placement")
	_, span := tracer.Start(ctx, "placement.generate")
	defer span.End()

	pool := make([]grid.Coord, len(occupied), len(occupied)+quantity)
	copy(pool, occupied)

	accepted := make([]grid.Coord, 0, quantity)
	samples, scans := 0, 0
	for len(accepted) < quantity {
		pos, n, ok := g.sample(predicates, pool)
		samples += n
		if !ok {
			scans++
			pos, ok = g.scan(predicates, pool)
		}
		if !ok {
			span.SetAttributes(
				attribute.Int("placement.requested", quantity),
				attribute.Int("placement.accepted", len(accepted)),
				attribute.Bool("placement.exhausted", true),
			)
			return nil, fmt.Errorf("placed %d of %d entities on a %dx%d grid: %w",
				len(accepted), quantity, g.space.Size, g.space.Size, ErrPlacementExhausted)
		}
		accepted = append(accepted, pos)
		pool = append(pool, pos)
	}

	span.SetAttributes(
		attribute.Int("placement.requested", quantity),
		attribute.Int("placement.occupied", len(occupied)),
		attribute.Int("placement.samples", samples),
		attribute.Int("placement.scans", scans),
	)
	return accepted, nil
}

// sample draws random cells until one fits or the attempt budget runs out.
func (g *Generator) sample(predicates []Predicate, pool []grid.Coord) (grid.Coord, int, bool) {
	for i := 1; i <= g.MaxAttempts; i++ {
		pos := grid.C(g.rng.Intn(g.space.Size), g.rng.Intn(g.space.Size))
		if satisfies(pos, predicates, pool) {
			return pos, i, true
		}
	}
	return grid.Coord{}, g.MaxAttempts, false
}

// scan checks every cell once and picks uniformly among those that fit.
func (g *Generator) scan(predicates []Predicate, pool []grid.Coord) (grid.Coord, bool) {
	var candidates []grid.Coord
	for _, pos := range g.space.Cells() {
		if satisfies(pos, predicates, pool) {
			candidates = append(candidates, pos)
		}
	}
	if len(candidates) == 0 {
		return grid.Coord{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}
