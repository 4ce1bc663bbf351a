// Package game owns the chase session: state, movement, scoring and the tick loop.
package game

// Phase represents where the session is in its lifecycle.
type Phase int

const (
	// PhaseIdle - ticks are scheduled but nothing moves until a bound key is pressed
	PhaseIdle Phase = iota
	// PhaseRunning - every tick moves players and enemies and resolves coins
	PhaseRunning
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}
