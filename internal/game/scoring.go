package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/placement"
)

// collectCoins resolves every player/coin overlap in player then coin order.
// Each collected coin is replaced immediately and scores one point.
// Returns the number of coins collected.
func (s *Session) collectCoins(ctx context.Context) int {
	st := s.st
	span := trace.SpanFromContext(ctx)
	collected := 0

	for pi, p := range st.registry.Players {
		coins := append([]*entity.Coin(nil), st.registry.Coins...)
		for _, coin := range coins {
			if coin.Pos != p.Pos {
				continue
			}
			st.removeCoin(coin)

			replacement, err := st.placer.Generate(ctx, 1,
				[]placement.Predicate{placement.Exclusion}, st.registry.Occupied())
			if err != nil {
				// Validation leaves a free cell for every coin, so this means a broken invariant.
				span.RecordError(err)
			} else {
				st.registry.AddCoins(replacement...)
			}

			st.score++
			collected++
			s.display.DisplayScore(st.score)

			span.AddEvent("coin.collected", trace.WithAttributes(
				attribute.Int("player", pi),
				attribute.String("coin.position", coin.Pos.String()),
				attribute.Int("score", st.score),
			))
		}
	}
	return collected
}

// removeCoin drops the given coin from the registry by identity.
func (st *state) removeCoin(coin *entity.Coin) {
	for i, c := range st.registry.Coins {
		if c == coin {
			st.registry.RemoveCoin(i)
			return
		}
	}
}
