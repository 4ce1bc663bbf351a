package game

import (
	"context"
	"time"
)

// Input is one event delivered to the loop by the front end.
type Input struct {
	// Key is a raw key name routed to the players, e.g. "ArrowLeft" or "a".
	Key string
	// Adjust, when set, derives a new config from the current one and re-initializes.
	Adjust func(Config) Config
	// Quit stops the loop.
	Quit bool
}

// KeyInput wraps a raw key press.
func KeyInput(key string) Input {
	return Input{Key: key}
}

// AdjustInput requests a re-initialization with a config derived from the current one.
func AdjustInput(adjust func(Config) Config) Input {
	return Input{Adjust: adjust}
}

// QuitInput asks the loop to return.
func QuitInput() Input {
	return Input{Quit: true}
}

// Loop drives a session at a fixed delay and is the only goroutine that touches it.
type Loop struct {
	session *Session

	// OnStep, if set, runs on the loop goroutine after every tick.
	OnStep func(s *Session)
	// OnError, if set, receives reconfiguration failures.
	OnError func(err error)
}

// NewLoop creates a loop for the given session.
func NewLoop(session *Session) *Loop {
	return &Loop{session: session}
}

// Run ticks the session until ctx is cancelled, a quit input arrives or inputs is closed.
// The next tick is armed before the current one runs; a new delay takes effect from the
// tick after a re-initialization.
func (l *Loop) Run(ctx context.Context, inputs <-chan Input) error {
	timer := time.NewTimer(l.session.Config().Delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-inputs:
			if !ok || in.Quit {
				return nil
			}
			l.handle(ctx, in)

		case <-timer.C:
			timer.Reset(l.session.Config().Delay)
			l.session.Step(ctx)
			if l.OnStep != nil {
				l.OnStep(l.session)
			}
		}
	}
}

// handle applies a non-quit input.
func (l *Loop) handle(ctx context.Context, in Input) {
	if in.Adjust != nil {
		if err := l.session.Reconfigure(ctx, in.Adjust(l.session.Config())); err != nil && l.OnError != nil {
			l.OnError(err)
		}
		return
	}
	if in.Key != "" {
		l.session.HandleInput(in.Key)
	}
}
