package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/devhausleipzig/cell-dodger-game/internal/entity"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
	"github.com/devhausleipzig/cell-dodger-game/internal/placement"
	"github.com/devhausleipzig/cell-dodger-game/internal/telemetry"
)

// state is one complete game: it is built whole and replaced whole.
type state struct {
	id       string
	cfg      Config
	space    grid.Space
	registry *entity.Registry
	placer   *placement.Generator
	keyOwner map[string]int // Raw key -> index into registry.Players
	score    int
	phase    Phase
	frame    map[grid.Coord]entity.Role // Last frame sent to the display
}

// Session owns the single live game state and everything that mutates it.
// It is not safe for concurrent use; Loop serializes access.
type Session struct {
	display Display
	rng     *rand.Rand
	st      *state
}

// NewSession validates cfg, places every entity and draws the initial grid.
func NewSession(ctx context.Context, cfg Config, display Display) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	s := &Session{
		display: display,
		rng:     newRand(cfg.Seed),
	}

	st, err := build(ctx, cfg, s.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.st = st
	s.redraw()

	span.SetAttributes(stateAttributes(st)...)
	return s, nil
}

// Reconfigure replaces the running game with a fresh one built from cfg.
// On failure the current game, its grid and its score are left untouched.
func (s *Session) Reconfigure(ctx context.Context, cfg Config) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.reconfigure")
	defer span.End()

	span.SetAttributes(attribute.String("session.previous_id", s.st.id))

	rng := s.rng
	if cfg.Seed != 0 {
		rng = newRand(cfg.Seed)
	}

	st, err := build(ctx, cfg, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.display.ShowError(err)
		s.display.Flush()
		return err
	}
	s.st = st
	s.rng = rng
	s.redraw()

	span.SetAttributes(stateAttributes(st)...)
	return nil
}

// HandleInput routes a raw key to the player bound to it. The first bound key starts the game.
// Unbound keys are ignored and reported as false.
func (s *Session) HandleInput(key string) bool {
	idx, ok := s.st.keyOwner[key]
	if !ok {
		return false
	}
	s.st.registry.Players[idx].Press(key)
	s.st.phase = PhaseRunning
	return true
}

// Step advances the game by one tick. While idle it does nothing.
func (s *Session) Step(ctx context.Context) {
	st := s.st
	if st.phase != PhaseRunning {
		return
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.step")
	defer span.End()

	moved := st.movePlayers()
	st.moveEnemies(s.rng)
	collected := s.collectCoins(ctx)

	next := st.registry.Frame()
	renderDiff(s.display, st.frame, next)
	st.frame = next
	s.display.Flush()

	span.SetAttributes(
		attribute.String("session.id", st.id),
		attribute.Int("step.players_moved", moved),
		attribute.Int("step.coins_collected", collected),
		attribute.Int("score", st.score),
	)
}

// build creates a complete new state: players, then coins, then enemies.
func build(ctx context.Context, cfg Config, rng *rand.Rand) (*state, error) {
	cfg, err := cfg.withDefaultBindings()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	space := grid.NewSpace(cfg.GridSize)
	placer := placement.NewGenerator(space, rng)
	registry := entity.NewRegistry()
	exclusion := []placement.Predicate{placement.Exclusion}

	playerPos, err := placer.Generate(ctx, cfg.Players, exclusion, registry.Occupied())
	if err != nil {
		return nil, err
	}
	keyOwner := make(map[string]int)
	for i, pos := range playerPos {
		p := entity.NewPlayer(pos, cfg.Bindings[i])
		for _, k := range p.Keys() {
			keyOwner[k] = i
		}
		registry.Players = append(registry.Players, p)
	}

	coinPos, err := placer.Generate(ctx, cfg.Coins, exclusion, registry.Occupied())
	if err != nil {
		return nil, err
	}
	registry.AddCoins(coinPos...)

	enemyPos, err := placer.Generate(ctx, cfg.Enemies,
		[]placement.Predicate{placement.Exclusion, placement.MinDistance(cfg.MinEnemyDist)},
		registry.Occupied())
	if err != nil {
		return nil, err
	}
	for _, pos := range enemyPos {
		registry.Enemies = append(registry.Enemies, entity.NewEnemy(pos))
	}

	return &state{
		id:       uuid.New().String(),
		cfg:      cfg,
		space:    space,
		registry: registry,
		placer:   placer,
		keyOwner: keyOwner,
		phase:    PhaseIdle,
		frame:    make(map[grid.Coord]entity.Role),
	}, nil
}

// redraw paints the current state from scratch.
func (s *Session) redraw() {
	st := s.st
	s.display.GridCreated(st.space.Size)
	st.frame = st.registry.Frame()
	for pos, role := range st.frame {
		s.display.SetCellOccupant(pos, role)
	}
	s.display.DisplayScore(st.score)
	s.display.Flush()
}

// ID returns the id of the current game state.
func (s *Session) ID() string { return s.st.id }

// Score returns the current score.
func (s *Session) Score() int { return s.st.score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.st.phase }

// Config returns the configuration the current state was built from.
func (s *Session) Config() Config { return s.st.cfg }

// Players returns the player positions in order.
func (s *Session) Players() []grid.Coord {
	out := make([]grid.Coord, len(s.st.registry.Players))
	for i, p := range s.st.registry.Players {
		out[i] = p.Pos
	}
	return out
}

// Enemies returns the enemy positions in order.
func (s *Session) Enemies() []grid.Coord {
	out := make([]grid.Coord, len(s.st.registry.Enemies))
	for i, e := range s.st.registry.Enemies {
		out[i] = e.Pos
	}
	return out
}

// Coins returns the coin positions in order.
func (s *Session) Coins() []grid.Coord {
	out := make([]grid.Coord, len(s.st.registry.Coins))
	for i, c := range s.st.registry.Coins {
		out[i] = c.Pos
	}
	return out
}

func stateAttributes(st *state) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("session.id", st.id),
		attribute.Int("config.players", st.cfg.Players),
		attribute.Int("config.enemies", st.cfg.Enemies),
		attribute.Int("config.coins", st.cfg.Coins),
		attribute.Int64("config.delay_ms", st.cfg.Delay.Milliseconds()),
		attribute.Int("config.grid_size", st.cfg.GridSize),
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
